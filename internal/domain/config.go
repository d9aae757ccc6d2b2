package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Default configuration values.
const (
	DefaultGraphName  = "Dependencies"
	DefaultFormat     = "svg"
	DefaultRankDir    = "BT"
	DefaultLabelWidth = 40
	DefaultDotPath    = "dot"
	DefaultLogLevel   = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Styles   map[string]NodeStyle `toml:"styles"` // Node styles keyed by task status
	Warnings []string             `toml:"-"`
	Graph    GraphConfig          `toml:"graph"`
	Project  NodeStyle            `toml:"project"` // Cluster style for projects
	Render   RenderConfig         `toml:"render"`
	Log      LogConfig            `toml:"log"`
}

// GraphConfig holds settings from the [graph] section.
type GraphConfig struct {
	Name       string `toml:"name,omitempty"`        // Name of the top-level graph
	RankDir    string `toml:"rankdir,omitempty"`     // Graphviz rankdir (TB, BT, LR, RL)
	Format     string `toml:"format,omitempty"`      // Default output format
	LabelWidth int    `toml:"label_width,omitempty"` // Max label length (0 = unlimited)
}

// RenderConfig holds settings from the [render] section.
type RenderConfig struct {
	DotPath string `toml:"dot_path,omitempty"` // Path to the Graphviz dot executable
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Append logs to this file instead of stderr
}

// NodeStyle holds Graphviz attributes for a node or cluster.
type NodeStyle struct {
	Shape     string `toml:"shape,omitempty"`
	Style     string `toml:"style,omitempty"`
	Color     string `toml:"color,omitempty"`
	FillColor string `toml:"fillcolor,omitempty"`
	FontColor string `toml:"fontcolor,omitempty"`
}

// Attributes returns the non-empty style values as rendering attributes.
func (s NodeStyle) Attributes() Attributes {
	attrs := Attributes{}
	set := func(k, v string) {
		if v != "" {
			attrs[k] = v
		}
	}
	set("shape", s.Shape)
	set("style", s.Style)
	set("color", s.Color)
	set("fillcolor", s.FillColor)
	set("fontcolor", s.FontColor)
	return attrs
}

// Merge returns s overlaid with the non-empty values of other.
func (s NodeStyle) Merge(other NodeStyle) NodeStyle {
	if other.Shape != "" {
		s.Shape = other.Shape
	}
	if other.Style != "" {
		s.Style = other.Style
	}
	if other.Color != "" {
		s.Color = other.Color
	}
	if other.FillColor != "" {
		s.FillColor = other.FillColor
	}
	if other.FontColor != "" {
		s.FontColor = other.FontColor
	}
	return s
}

// StyleFor returns the node style for a task status.
func (c *Config) StyleFor(status Status) NodeStyle {
	return c.Styles[string(status)]
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			Name:       DefaultGraphName,
			RankDir:    DefaultRankDir,
			Format:     DefaultFormat,
			LabelWidth: DefaultLabelWidth,
		},
		Render: RenderConfig{
			DotPath: DefaultDotPath,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Project: NodeStyle{
			Style: "rounded",
			Color: "gray50",
		},
		Styles: map[string]NodeStyle{
			string(StatusPending):   {Shape: "box"},
			string(StatusWaiting):   {Shape: "box", Style: "dashed"},
			string(StatusRecurring): {Shape: "box", Style: "rounded"},
			string(StatusCompleted): {Shape: "box", Color: "gray60", FontColor: "gray60"},
		},
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Graph  GraphConfig
	Render RenderConfig
	Log    LogConfig
	Styles []styleTemplateData
}

// styleTemplateData holds a single [styles.<status>] entry for the template.
type styleTemplateData struct {
	Status string
	Style  NodeStyle
}

// RenderConfigTemplate renders a commented config template from the given Config.
func RenderConfigTemplate(cfg *Config) string {
	names := make([]string, 0, len(cfg.Styles))
	for name := range cfg.Styles {
		names = append(names, name)
	}
	sort.Strings(names)

	styles := make([]styleTemplateData, 0, len(names))
	for _, name := range names {
		styles = append(styles, styleTemplateData{Status: name, Style: cfg.Styles[name]})
	}

	data := templateData{
		Graph:  cfg.Graph,
		Render: cfg.Render,
		Log:    cfg.Log,
		Styles: styles,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
