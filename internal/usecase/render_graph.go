// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/graph"
	"github.com/runoshun/depgraph/internal/presenter"
)

// RenderGraphInput contains the parameters for rendering a dependency graph.
// Fields are ordered to minimize memory padding.
type RenderGraphInput struct {
	Reader      io.Reader          // Task export to read
	Format      string             // Output format (empty = configured default)
	InputFormat domain.InputFormat // Format of the task export
	Projects    []string           // Restrict to these projects (empty = all)
	TaskRefs    []string           // Restrict to these tasks and their dependencies
	NoClusters  bool               // Do not group tasks into project clusters
}

// RenderGraphOutput contains the rendered graph.
type RenderGraphOutput struct {
	Format string      // Output format actually used
	Data   []byte      // Rendered graph
	Stats  graph.Stats // Size of the rendered graph
}

// RenderGraph loads tasks and renders their dependency graph.
type RenderGraph struct {
	source domain.TaskSource
	engine domain.GraphEngine
	config *domain.Config
	logger *slog.Logger
}

// NewRenderGraph creates a new RenderGraph use case.
func NewRenderGraph(source domain.TaskSource, engine domain.GraphEngine, config *domain.Config, logger *slog.Logger) *RenderGraph {
	if config == nil {
		config = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RenderGraph{
		source: source,
		engine: engine,
		config: config,
		logger: logger,
	}
}

// Execute renders the dependency graph of the tasks read from in.Reader.
func (uc *RenderGraph) Execute(ctx context.Context, in RenderGraphInput) (*RenderGraphOutput, error) {
	format := in.Format
	if format == "" {
		format = uc.config.Graph.Format
	}
	if format == "" {
		format = domain.DefaultFormat
	}
	// Fail before reading the input when the format cannot be produced
	if !slices.Contains(graph.Formats(uc.engine), format) {
		return nil, &domain.RenderError{Format: format, Err: domain.ErrUnsupportedFormat}
	}

	tasks, err := uc.source.Load(ctx, in.Reader, in.InputFormat)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	list, err := domain.NewTaskList(tasks)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("tasks loaded", "count", list.Len(), "input", string(in.InputFormat))

	entities, err := selectEntities(list, in.Projects, in.TaskRefs, in.NoClusters)
	if err != nil {
		return nil, err
	}

	g := graph.New(uc.engine, uc.graphName(),
		graph.WithPresenter(presenter.New(uc.config)),
		graph.WithLogger(uc.logger),
		graph.WithAttributes(uc.graphAttributes()),
	)
	for _, e := range entities {
		if err := g.Add(e); err != nil {
			return nil, err
		}
	}

	data, err := g.Render(ctx, format)
	if err != nil {
		return nil, err
	}

	stats := g.Stats()
	uc.logger.Info("graph rendered",
		"format", format,
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"clusters", stats.Clusters,
		"bytes", len(data),
	)

	return &RenderGraphOutput{
		Format: format,
		Data:   data,
		Stats:  stats,
	}, nil
}

func (uc *RenderGraph) graphName() string {
	if uc.config.Graph.Name != "" {
		return uc.config.Graph.Name
	}
	return domain.DefaultGraphName
}

func (uc *RenderGraph) graphAttributes() domain.Attributes {
	attrs := domain.Attributes{}
	if uc.config.Graph.RankDir != "" {
		attrs["rankdir"] = uc.config.Graph.RankDir
	}
	return attrs
}

// selectEntities returns the projects and tasks to accumulate, in order.
//
// Without filters every project becomes a cluster followed by the tasks
// without a project. With noClusters every project is flattened into its
// tasks. Filters select projects by name and tasks by reference; their
// dependencies are pulled in by the graph itself.
func selectEntities(list *domain.TaskList, projects, refs []string, noClusters bool) ([]any, error) {
	var entities []any

	addProject := func(p *domain.Project) {
		if !noClusters {
			entities = append(entities, p)
			return
		}
		for _, t := range p.Tasks {
			entities = append(entities, t)
		}
	}

	if len(projects) == 0 && len(refs) == 0 {
		if noClusters {
			for _, t := range list.Tasks() {
				entities = append(entities, t)
			}
			return entities, nil
		}
		for _, p := range list.Projects() {
			entities = append(entities, p)
		}
		for _, t := range list.Unassigned() {
			entities = append(entities, t)
		}
		return entities, nil
	}

	for _, name := range projects {
		p, err := list.Project(name)
		if err != nil {
			return nil, err
		}
		addProject(p)
	}
	for _, ref := range refs {
		t := list.Find(ref)
		if t == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, ref)
		}
		entities = append(entities, t)
	}
	return entities, nil
}
