package graphviz

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/emicklei/dot"
	"github.com/runoshun/depgraph/internal/domain"
)

// Node is a node of a Graph.
type Node struct {
	graph *Graph
	attrs domain.Attributes
	id    string
}

// ID returns the node id.
func (n *Node) ID() string {
	return n.id
}

// Attr returns the value of a node attribute.
func (n *Node) Attr(name string) string {
	return n.attrs[name]
}

// edge is a directed edge between two node handles.
type edge struct {
	from  domain.GraphNode
	to    domain.GraphNode
	attrs domain.Attributes
}

// Graph is an in-memory Graphviz graph.
// Fields are ordered to minimize memory padding.
type Graph struct {
	engine   *Engine
	attrs    domain.Attributes
	index    map[string]*Node
	name     string
	nodes    []*Node
	edges    []edge
	children []domain.GraphCanvas
}

// Ensure Graph implements domain.GraphCanvas.
var _ domain.GraphCanvas = (*Graph)(nil)

// Name returns the graph name.
func (g *Graph) Name() string {
	return g.name
}

// AddNode adds a node. Adding an existing id returns the existing node unchanged.
func (g *Graph) AddNode(id string, attrs domain.Attributes) domain.GraphNode {
	if n, ok := g.index[id]; ok {
		return n
	}
	n := &Node{graph: g, id: id, attrs: attrs.Clone()}
	g.index[id] = n
	g.nodes = append(g.nodes, n)
	return n
}

// GetNode returns the node with the given id.
func (g *Graph) GetNode(id string) (domain.GraphNode, bool) {
	n, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// AddEdge adds a directed edge. Endpoints are validated by Output.
func (g *Graph) AddEdge(from, to domain.GraphNode, attrs domain.Attributes) {
	g.edges = append(g.edges, edge{from: from, to: to, attrs: attrs.Clone()})
}

// AddGraph nests child as a subgraph. Children whose name starts with
// "cluster" are drawn as boxes by Graphviz.
func (g *Graph) AddGraph(child domain.GraphCanvas) {
	g.children = append(g.children, child)
}

// Output renders the graph. DOT formats are produced in-process;
// other formats require the dot executable.
func (g *Graph) Output(ctx context.Context, format string) ([]byte, error) {
	if !IsSupported(format) {
		return nil, &domain.RenderError{Format: format, Err: domain.ErrUnsupportedFormat}
	}

	text, err := g.DOT()
	if err != nil {
		return nil, &domain.RenderError{Format: format, Err: err}
	}
	if dotFormats[format] {
		return []byte(text), nil
	}

	cmd := domain.NewDotCommand(g.engine.dotPath, format)
	out, err := g.engine.executor.Execute(ctx, cmd, strings.NewReader(text))
	if err != nil {
		return nil, &domain.RenderError{Format: format, Err: err}
	}
	return out, nil
}

// DOT returns the graph in DOT language.
func (g *Graph) DOT() (string, error) {
	root := dot.NewGraph(dot.Directed)
	if g.name != "" {
		root.ID(graphID(g.name))
	}
	b := &builder{}
	if err := b.build(g, root); err != nil {
		return "", err
	}
	return root.String(), nil
}

// builder converts Graphs into emicklei/dot graphs.
type builder struct {
	seq int
}

// nextID returns an id unique within the whole output. Nodes with the same
// id in different clusters must stay separate nodes.
func (b *builder) nextID() string {
	b.seq++
	return "n" + strconv.Itoa(b.seq)
}

func (b *builder) build(g *Graph, dg *dot.Graph) error {
	for _, k := range sortedKeys(g.attrs) {
		dg.Attr(k, g.attrs[k])
	}

	handles := make(map[*Node]dot.Node, len(g.nodes))
	for _, n := range g.nodes {
		dn := dg.Node(b.nextID())
		if _, ok := n.attrs["label"]; !ok {
			dn.Attr("label", n.id)
		}
		for _, k := range sortedKeys(n.attrs) {
			dn.Attr(k, n.attrs[k])
		}
		handles[n] = dn
	}

	for _, e := range g.edges {
		from, err := g.owned(e.from, handles)
		if err != nil {
			return err
		}
		to, err := g.owned(e.to, handles)
		if err != nil {
			return err
		}
		de := dg.Edge(from, to)
		for _, k := range sortedKeys(e.attrs) {
			de.Attr(k, e.attrs[k])
		}
	}

	for _, c := range g.children {
		child, ok := c.(*Graph)
		if !ok || child.engine != g.engine {
			return fmt.Errorf("%w: subgraph %q does not belong to this engine", domain.ErrMalformedGraph, c.Name())
		}
		var opts []dot.GraphOption
		if strings.HasPrefix(child.name, "cluster") {
			opts = append(opts, dot.ClusterOption{})
		}
		sub := dg.Subgraph(subgraphID(child.name), opts...)
		if err := b.build(child, sub); err != nil {
			return err
		}
	}
	return nil
}

// owned resolves an edge endpoint to a node of g.
func (g *Graph) owned(n domain.GraphNode, handles map[*Node]dot.Node) (dot.Node, error) {
	node, ok := n.(*Node)
	if !ok || node.graph != g {
		id := "<nil>"
		if n != nil {
			id = n.ID()
		}
		return dot.Node{}, fmt.Errorf("%w: edge endpoint %q is not a node of graph %q", domain.ErrMalformedGraph, id, g.name)
	}
	return handles[node], nil
}

// unsafeID matches characters that are not valid in an unquoted DOT id.
var unsafeID = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// plainID matches names that can be written as unquoted DOT ids.
var plainID = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// graphID returns name as a DOT id, quoted when necessary.
func graphID(name string) string {
	if plainID.MatchString(name) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `\"`) + `"`
}

// subgraphID returns name as an unquoted DOT identifier.
func subgraphID(name string) string {
	id := unsafeID.ReplaceAllString(name, "_")
	if id == "" {
		return "subgraph"
	}
	return id
}

func sortedKeys(attrs domain.Attributes) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
