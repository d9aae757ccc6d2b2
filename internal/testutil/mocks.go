// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/runoshun/depgraph/internal/domain"
)

// MockGraphEngine is a test double for domain.GraphEngine.
// It records every graph it creates.
type MockGraphEngine struct {
	Graphs     []*MockGraph
	FormatList []string
}

// Ensure MockGraphEngine implements domain.GraphEngine.
var _ domain.GraphEngine = (*MockGraphEngine)(nil)

// NewMockGraphEngine creates a MockGraphEngine supporting "dot" and "svg".
func NewMockGraphEngine() *MockGraphEngine {
	return &MockGraphEngine{FormatList: []string{"dot", "svg"}}
}

// NewGraph creates and records a MockGraph.
func (e *MockGraphEngine) NewGraph(name string, attrs domain.Attributes) domain.GraphCanvas {
	g := &MockGraph{
		GraphName: name,
		Attrs:     attrs,
		engine:    e,
		index:     make(map[string]*MockNode),
	}
	e.Graphs = append(e.Graphs, g)
	return g
}

// Formats returns the configured formats.
func (e *MockGraphEngine) Formats() []string {
	return e.FormatList
}

// Root returns the first graph created by the engine.
func (e *MockGraphEngine) Root() *MockGraph {
	if len(e.Graphs) == 0 {
		return nil
	}
	return e.Graphs[0]
}

// MockNode is a test double for domain.GraphNode.
type MockNode struct {
	Attrs  domain.Attributes
	NodeID string
}

// ID returns the node id.
func (n *MockNode) ID() string {
	return n.NodeID
}

// Attr returns a node attribute.
func (n *MockNode) Attr(name string) string {
	return n.Attrs[name]
}

// MockEdge is an edge recorded by MockGraph.
type MockEdge struct {
	Attrs domain.Attributes
	From  string
	To    string
}

// MockGraph is a test double for domain.GraphCanvas.
// Fields are ordered to minimize memory padding.
type MockGraph struct {
	Attrs     domain.Attributes
	OutputErr error
	engine    *MockGraphEngine
	index     map[string]*MockNode
	GraphName string
	Nodes     []*MockNode
	Edges     []MockEdge
	Children  []*MockGraph
	GetCalls  int
}

// Name returns the graph name.
func (g *MockGraph) Name() string {
	return g.GraphName
}

// AddNode records a node. Adding an existing id panics to catch duplicates.
func (g *MockGraph) AddNode(id string, attrs domain.Attributes) domain.GraphNode {
	if _, ok := g.index[id]; ok {
		panic(fmt.Sprintf("duplicate node %q in graph %q", id, g.GraphName))
	}
	n := &MockNode{NodeID: id, Attrs: attrs}
	g.index[id] = n
	g.Nodes = append(g.Nodes, n)
	return n
}

// GetNode returns a recorded node.
func (g *MockGraph) GetNode(id string) (domain.GraphNode, bool) {
	g.GetCalls++
	n, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// AddEdge records an edge.
func (g *MockGraph) AddEdge(from, to domain.GraphNode, attrs domain.Attributes) {
	g.Edges = append(g.Edges, MockEdge{From: from.ID(), To: to.ID(), Attrs: attrs})
}

// AddGraph records a child graph.
func (g *MockGraph) AddGraph(child domain.GraphCanvas) {
	mg, ok := child.(*MockGraph)
	if !ok {
		panic(fmt.Sprintf("unexpected child graph %T", child))
	}
	g.Children = append(g.Children, mg)
}

// Output returns a deterministic text dump of the graph, or OutputErr.
func (g *MockGraph) Output(_ context.Context, format string) ([]byte, error) {
	if g.OutputErr != nil {
		return nil, g.OutputErr
	}
	supported := false
	for _, f := range g.engine.FormatList {
		if f == format {
			supported = true
		}
	}
	if !supported {
		return nil, &domain.RenderError{Format: format, Err: domain.ErrUnsupportedFormat}
	}
	var b strings.Builder
	g.dump(&b, "")
	return []byte(b.String()), nil
}

func (g *MockGraph) dump(b *strings.Builder, indent string) {
	fmt.Fprintf(b, "%sgraph %s\n", indent, g.GraphName)
	for _, n := range g.Nodes {
		fmt.Fprintf(b, "%s  node %s\n", indent, n.NodeID)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(b, "%s  edge %s -> %s\n", indent, e.From, e.To)
	}
	for _, c := range g.Children {
		c.dump(b, indent+"  ")
	}
}

// NodeIDs returns the ids of the nodes of this graph (not of children), sorted.
func (g *MockGraph) NodeIDs() []string {
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.NodeID)
	}
	sort.Strings(ids)
	return ids
}

// EdgePairs returns the edges of this graph as "from->to" strings, sorted.
func (g *MockGraph) EdgePairs() []string {
	pairs := make([]string, 0, len(g.Edges))
	for _, e := range g.Edges {
		pairs = append(pairs, e.From+"->"+e.To)
	}
	sort.Strings(pairs)
	return pairs
}

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	ExecuteErr  error
	ExecutedCmd *domain.ExecCommand
	Output      []byte
	Stdin       []byte
	Called      bool
}

// Ensure MockCommandExecutor implements domain.CommandExecutor.
var _ domain.CommandExecutor = (*MockCommandExecutor)(nil)

// Execute records the command and stdin.
func (m *MockCommandExecutor) Execute(_ context.Context, cmd *domain.ExecCommand, stdin io.Reader) ([]byte, error) {
	m.Called = true
	m.ExecutedCmd = cmd
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		m.Stdin = data
	}
	if m.ExecuteErr != nil {
		return nil, m.ExecuteErr
	}
	return m.Output, nil
}

// MockTaskSource is a test double for domain.TaskSource.
type MockTaskSource struct {
	LoadErr    error
	Tasks      []*domain.Task
	LastFormat domain.InputFormat
}

// Ensure MockTaskSource implements domain.TaskSource.
var _ domain.TaskSource = (*MockTaskSource)(nil)

// Load returns the configured tasks.
func (m *MockTaskSource) Load(_ context.Context, _ io.Reader, format domain.InputFormat) ([]*domain.Task, error) {
	m.LastFormat = format
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Tasks, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Ensure MockConfigLoader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config, or the default config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadWithOptions ignores the options.
func (m *MockConfigLoader) LoadWithOptions(_ domain.LoadConfigOptions) (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(_ *domain.Config) error {
	m.InitLocalCalled = true
	return m.InitLocalErr
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// ErrMock is a generic error for failure injection.
var ErrMock = errors.New("mock error")

// NewTask creates a pending task with the given uuid, description and dependencies.
func NewTask(uuid, description string, depends ...string) *domain.Task {
	return &domain.Task{
		UUID:        uuid,
		Description: description,
		Status:      domain.StatusPending,
		Depends:     depends,
	}
}

// MustTaskList links tasks into a TaskList and panics on error.
func MustTaskList(tasks ...*domain.Task) *domain.TaskList {
	l, err := domain.NewTaskList(tasks)
	if err != nil {
		panic(err)
	}
	return l
}
