// Package graphviz implements domain.GraphEngine on top of Graphviz.
//
// Graphs are kept in memory until Output is called. DOT text is produced
// in-process with github.com/emicklei/dot; every other format is rendered
// by piping the DOT text through the dot executable.
package graphviz

import (
	"slices"

	"github.com/runoshun/depgraph/internal/domain"
)

// dotFormats are served without invoking Graphviz.
var dotFormats = map[string]bool{
	"dot": true,
	"gv":  true,
}

// formats lists the Graphviz output formats accepted by Output.
var formats = []string{
	"bmp", "canon", "cmap", "cmapx", "dot", "eps", "fig", "gif", "gv",
	"imap", "ismap", "jpeg", "jpg", "json", "json0", "pdf", "pic", "plain",
	"plain-ext", "png", "ps", "ps2", "svg", "svgz", "tif", "tiff", "tk",
	"vml", "vmlz", "vrml", "wbmp", "webp", "xdot", "xdot_json",
}

// Engine creates Graphviz graphs.
type Engine struct {
	executor domain.CommandExecutor
	dotPath  string
}

// Ensure Engine implements domain.GraphEngine.
var _ domain.GraphEngine = (*Engine)(nil)

// NewEngine creates an Engine that runs dotPath through executor for
// formats other than DOT. An empty dotPath means "dot" from PATH.
func NewEngine(executor domain.CommandExecutor, dotPath string) *Engine {
	return &Engine{
		executor: executor,
		dotPath:  dotPath,
	}
}

// NewGraph constructs an empty graph.
func (e *Engine) NewGraph(name string, attrs domain.Attributes) domain.GraphCanvas {
	return &Graph{
		engine: e,
		name:   name,
		attrs:  attrs.Clone(),
		index:  make(map[string]*Node),
	}
}

// Formats returns the supported output formats, sorted.
func (e *Engine) Formats() []string {
	return Formats()
}

// Formats returns the supported output formats, sorted.
func Formats() []string {
	out := slices.Clone(formats)
	slices.Sort(out)
	return out
}

// IsSupported reports whether format is a supported output format.
func IsSupported(format string) bool {
	return slices.Contains(formats, format)
}
