// Package graph builds deduplicated dependency graphs of tasks and projects
// and hands them to a rendering engine.
//
// A Graph is built from a root name or presentation, fed entities with Add
// and rendered once with Render. Tasks become nodes, "depends on" relations
// become edges, and every project becomes a nested cluster built by its own
// Graph instance. Deleted and absent tasks never appear in a graph.
package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/runoshun/depgraph/internal/domain"
)

// Graph accumulates nodes and edges for one render request.
// It is not safe for concurrent use.
type Graph struct {
	engine    domain.GraphEngine
	canvas    domain.GraphCanvas
	presenter Presenter
	logger    *slog.Logger
	visited   map[string]struct{}
	edges     map[edgeKey]struct{}
	clusters  []*Graph
	attrs     domain.Attributes
	nodes     int
}

// Option configures a Graph.
type Option func(*Graph)

// WithPresenter sets the presenter used for tasks and projects.
// Nested project graphs inherit it.
func WithPresenter(p Presenter) Option {
	return func(g *Graph) {
		g.presenter = p
	}
}

// WithLogger sets the logger. Nested project graphs inherit it.
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) {
		g.logger = l
	}
}

// WithAttributes sets the graph attributes of the root graph.
func WithAttributes(attrs domain.Attributes) Option {
	return func(g *Graph) {
		g.attrs = attrs
	}
}

// New creates a Graph identified by name.
func New(engine domain.GraphEngine, name string, opts ...Option) *Graph {
	g := &Graph{
		engine:    engine,
		presenter: KeyPresenter{},
		logger:    slog.New(slog.DiscardHandler),
		visited:   make(map[string]struct{}),
		edges:     make(map[edgeKey]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.canvas = engine.NewGraph(name, g.attrs)
	return g
}

// NewFromPresentation creates a Graph identified by a presentation's id
// and carrying its attributes.
func NewFromPresentation(engine domain.GraphEngine, p Presentation, opts ...Option) *Graph {
	opts = append(opts, WithAttributes(p.Attributes))
	return New(engine, p.ID, opts...)
}

// Formats returns the output formats supported by the engine.
func Formats(engine domain.GraphEngine) []string {
	return engine.Formats()
}

// Name returns the name of the graph.
func (g *Graph) Name() string {
	return g.canvas.Name()
}

// Add accumulates a task or a project into the graph.
//
// A task is added with all of its dependencies, resolved recursively.
// A project is added as a cluster containing its tasks and their
// dependencies. Nil, deleted and absent tasks are skipped silently.
// Anything else is rejected with domain.ErrUnknownEntity.
func (g *Graph) Add(thing any) error {
	switch v := thing.(type) {
	case nil:
		return nil
	case domain.Dependent:
		g.addTask(v)
		return nil
	case domain.Grouping:
		return g.addProject(v)
	default:
		return fmt.Errorf("%w: %T", domain.ErrUnknownEntity, thing)
	}
}

// addTask adds t unless it is deleted or absent.
func (g *Graph) addTask(t domain.Dependent) {
	if deletedOrAbsent(t) {
		g.logger.Debug("skip deleted or absent task", "graph", g.Name())
		return
	}
	g.visited[t.Key()] = struct{}{}
	g.expand(t)
}

// expand creates the node of t, the edges to its dependencies and then
// descends into every dependency this graph has not expanded yet.
// Each task is expanded at most once, which terminates cycles and keeps
// diamonds to a single node.
func (g *Graph) expand(t domain.Dependent) {
	node, ok := g.findOrCreateNode(t)
	if !ok {
		return
	}

	deps := t.Dependencies()
	for _, dep := range deps {
		depNode, ok := g.findOrCreateNode(dep)
		if !ok {
			continue
		}
		g.createEdge(depNode, node)
	}

	for _, dep := range deps {
		if deletedOrAbsent(dep) {
			continue
		}
		key := dep.Key()
		if _, seen := g.visited[key]; seen {
			continue
		}
		g.visited[key] = struct{}{}
		g.expand(dep)
	}
}

// addProject builds an independent cluster for p and nests it.
func (g *Graph) addProject(p domain.Grouping) error {
	pres, err := Resolve(g.presenter, p)
	if err != nil {
		return err
	}

	cluster := NewFromPresentation(g.engine, pres,
		WithPresenter(g.presenter),
		WithLogger(g.logger),
	)
	for _, t := range p.Members() {
		cluster.addTask(t)
	}

	g.canvas.AddGraph(cluster.canvas)
	g.clusters = append(g.clusters, cluster)

	g.logger.Debug("add project cluster",
		"graph", g.Name(),
		"cluster", pres.ID,
		"nodes", cluster.nodes,
		"edges", len(cluster.edges),
	)
	return nil
}

// Render renders the graph in the given format.
// Engine failures are returned as *domain.RenderError and never come with
// partial output.
func (g *Graph) Render(ctx context.Context, format string) ([]byte, error) {
	out, err := g.canvas.Output(ctx, format)
	if err != nil {
		var renderErr *domain.RenderError
		if !errors.As(err, &renderErr) {
			err = &domain.RenderError{Format: format, Err: err}
		}
		return nil, err
	}
	return out, nil
}

// Stats summarizes the size of a graph.
type Stats struct {
	Nodes    int // Nodes including nodes of nested clusters
	Edges    int // Edges including edges of nested clusters
	Clusters int // Nested clusters, counted recursively
}

// Stats returns the number of nodes, edges and clusters created so far.
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes: g.nodes,
		Edges: len(g.edges),
	}
	for _, c := range g.clusters {
		cs := c.Stats()
		s.Nodes += cs.Nodes
		s.Edges += cs.Edges
		s.Clusters += cs.Clusters + 1
	}
	return s
}
