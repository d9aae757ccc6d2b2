package graph

import (
	"fmt"

	"github.com/runoshun/depgraph/internal/domain"
)

// edgeKey identifies an edge by the ordered pair of node ids.
type edgeKey struct {
	from string
	to   string
}

// deletedOrAbsent reports whether a task must be left out of the graph.
func deletedOrAbsent(t domain.Dependent) bool {
	return t == nil || t.IsDeleted()
}

// findOrCreateNode returns the node for t, creating it on first use.
// Deleted or absent tasks yield no node.
func (g *Graph) findOrCreateNode(t domain.Dependent) (domain.GraphNode, bool) {
	if deletedOrAbsent(t) {
		return nil, false
	}
	p := g.presenter.PresentTask(t)
	if node, ok := g.canvas.GetNode(p.ID); ok {
		return node, true
	}
	attrs := p.Attributes.Clone()
	if _, ok := attrs["label"]; !ok && p.Label != "" {
		attrs["label"] = p.Label
	}
	g.nodes++
	return g.canvas.AddNode(p.ID, attrs), true
}

// createEdge records that dependent depends on dependency.
// The engine has no edge lookup, so edges created by this graph are tracked here.
// The edge points from the dependency to the dependent and is drawn with a
// back arrow so that it reads dependent -> dependency.
func (g *Graph) createEdge(dependency, dependent domain.GraphNode) {
	key := edgeKey{from: dependency.ID(), to: dependent.ID()}
	if _, ok := g.edges[key]; ok {
		return
	}
	g.edges[key] = struct{}{}

	g.canvas.AddEdge(dependency, dependent, domain.Attributes{
		"dir":     "back",
		"tooltip": fmt.Sprintf("%s depends on %s", dependent.Attr("label"), dependency.Attr("label")),
	})
}
