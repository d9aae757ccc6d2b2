package domain

import (
	"context"
	"io"
)

// Dependent is a task-like entity: it exposes the entities it depends on.
// Implementations must tolerate IsDeleted being called on a nil receiver.
type Dependent interface {
	// Key returns an identifier unique within one top-level graph.
	Key() string

	// Label returns a human readable name.
	Label() string

	// IsDeleted reports whether the entity is deleted or absent.
	IsDeleted() bool

	// Dependencies returns the entities this one depends on, in declared order.
	// Entries may be nil for unresolved references.
	Dependencies() []Dependent
}

// Grouping is a project-like entity: it exposes a collection of tasks.
type Grouping interface {
	// Key returns an identifier unique within one top-level graph.
	Key() string

	// Label returns a human readable name.
	Label() string

	// Members returns the tasks of the group in declared order.
	Members() []Dependent
}

// Attributes holds rendering properties such as label, color or shape.
type Attributes map[string]string

// Clone returns a copy of the attributes.
func (a Attributes) Clone() Attributes {
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// GraphEngine creates graphs for an external layout and rendering engine.
type GraphEngine interface {
	// NewGraph constructs an empty graph.
	NewGraph(name string, attrs Attributes) GraphCanvas

	// Formats returns the output formats the engine supports.
	Formats() []string
}

// GraphCanvas is a graph handle owned by a GraphEngine.
type GraphCanvas interface {
	// Name returns the name the graph was constructed with.
	Name() string

	// AddNode adds a node with the given id and attributes.
	AddNode(id string, attrs Attributes) GraphNode

	// GetNode returns the node with the given id, if present.
	GetNode(id string) (GraphNode, bool)

	// AddEdge adds a directed edge from one node to another.
	AddEdge(from, to GraphNode, attrs Attributes)

	// AddGraph nests a child graph as a subgraph.
	AddGraph(child GraphCanvas)

	// Output renders the graph in the given format.
	Output(ctx context.Context, format string) ([]byte, error)
}

// GraphNode is a node handle owned by a GraphCanvas.
type GraphNode interface {
	// ID returns the node id.
	ID() string

	// Attr returns the value of a node attribute, or "" if unset.
	Attr(name string) string
}

// TaskSource decodes tasks from an export.
type TaskSource interface {
	// Load reads all tasks from r in the given input format.
	Load(ctx context.Context, r io.Reader, format InputFormat) ([]*Task, error)
}

// CommandExecutor executes external commands.
type CommandExecutor interface {
	// Execute runs the command with the given stdin and returns its stdout.
	Execute(ctx context.Context, cmd *ExecCommand, stdin io.Reader) ([]byte, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (global <- local).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration with options to ignore sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions controls which configuration sources are loaded.
type LoadConfigOptions struct {
	IgnoreGlobal bool // Skip the global config file
	IgnoreLocal  bool // Skip the local config file
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitLocalConfig creates a local config file with the default template.
	InitLocalConfig(cfg *Config) error

	// InitGlobalConfig creates a global config file with the default template.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string // File path
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}
