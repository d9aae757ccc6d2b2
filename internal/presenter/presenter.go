// Package presenter derives Graphviz presentations for tasks and projects
// from the configured styles.
package presenter

import (
	"fmt"
	"strings"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/graph"
)

// Ensure Presenter implements graph.Presenter.
var _ graph.Presenter = (*Presenter)(nil)

// Presenter styles nodes by task status and clusters by the [project] style.
type Presenter struct {
	cfg *domain.Config
}

// New creates a Presenter. A nil config uses the defaults.
func New(cfg *domain.Config) *Presenter {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return &Presenter{cfg: cfg}
}

// PresentTask returns the node presentation of a task.
// Tasks other than *domain.Task are presented by key and label only.
func (p *Presenter) PresentTask(t domain.Dependent) graph.Presentation {
	label := domain.Truncate(t.Label(), p.cfg.Graph.LabelWidth)
	attrs := domain.Attributes{}

	if task, ok := t.(*domain.Task); ok {
		attrs = p.cfg.StyleFor(task.Status).Attributes()
		attrs["tooltip"] = tooltip(task)
	}
	attrs["label"] = label

	return graph.Presentation{
		ID:         t.Key(),
		Label:      label,
		Attributes: attrs,
	}
}

// PresentProject returns the cluster presentation of a project.
func (p *Presenter) PresentProject(g domain.Grouping) graph.Presentation {
	attrs := p.cfg.Project.Attributes()
	attrs["label"] = g.Label()
	if project, ok := g.(*domain.Project); ok {
		attrs["tooltip"] = fmt.Sprintf("%s\nTasks: %d", project.Name, project.ActiveCount())
	}

	return graph.Presentation{
		ID:         domain.ClusterName(g.Label()),
		Label:      g.Label(),
		Attributes: attrs,
	}
}

// tooltip describes a task in full, since labels may be truncated.
func tooltip(t *domain.Task) string {
	lines := []string{
		t.Description,
		"Status: " + t.Status.Display(),
	}
	if t.ID > 0 {
		lines = append(lines, fmt.Sprintf("ID: %d", t.ID))
	}
	if t.Project != "" {
		lines = append(lines, "Project: "+t.Project)
	}
	if !t.Due.IsZero() {
		lines = append(lines, "Due: "+t.Due.Format("2006-01-02"))
	}
	if t.Urgency != 0 {
		lines = append(lines, fmt.Sprintf("Urgency: %.2f", t.Urgency))
	}
	if len(t.Tags) > 0 {
		lines = append(lines, "Tags: "+strings.Join(t.Tags, ", "))
	}
	return strings.Join(lines, "\n")
}
