package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/depgraph/internal/domain"
)

// Colors defines the color palette for terminal output.
var Colors = struct {
	Primary   lipgloss.Color
	Muted     lipgloss.Color
	Pending   lipgloss.Color
	Waiting   lipgloss.Color
	Recurring lipgloss.Color
	Completed lipgloss.Color
	Warning   lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Muted:     lipgloss.Color("#636E72"), // Gray
	Pending:   lipgloss.Color("#74B9FF"), // Light blue
	Waiting:   lipgloss.Color("#FDCB6E"), // Yellow
	Recurring: lipgloss.Color("#A29BFE"), // Lavender
	Completed: lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
}

// treeStyles contains the lipgloss styles for the dependency tree.
type treeStyles struct {
	renderer *lipgloss.Renderer
	Branch   lipgloss.Style
	Ref      lipgloss.Style
	Project  lipgloss.Style
	Repeated lipgloss.Style
	Status   map[domain.Status]lipgloss.Style
}

// newTreeStyles returns the tree styles for output written through r.
// Colors are dropped when r does not write to a terminal.
func newTreeStyles(r *lipgloss.Renderer) treeStyles {
	return treeStyles{
		renderer: r,
		Branch:   r.NewStyle().Foreground(Colors.Muted),
		Ref:      r.NewStyle().Foreground(Colors.Primary).Bold(true),
		Project:  r.NewStyle().Foreground(Colors.Muted),
		Repeated: r.NewStyle().Foreground(Colors.Muted).Italic(true),
		Status: map[domain.Status]lipgloss.Style{
			domain.StatusPending:   r.NewStyle().Foreground(Colors.Pending),
			domain.StatusWaiting:   r.NewStyle().Foreground(Colors.Waiting),
			domain.StatusRecurring: r.NewStyle().Foreground(Colors.Recurring),
			domain.StatusCompleted: r.NewStyle().Foreground(Colors.Completed).Strikethrough(true),
		},
	}
}

// statusStyle returns the style for a task status.
func (s treeStyles) statusStyle(status domain.Status) lipgloss.Style {
	if style, ok := s.Status[status]; ok {
		return style
	}
	return s.renderer.NewStyle()
}

// warningStyle returns the style for warnings written through r.
func warningStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Colors.Warning)
}
