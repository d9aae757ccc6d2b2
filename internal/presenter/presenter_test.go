package presenter

import (
	"testing"
	"time"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPresenter_PresentTask(t *testing.T) {
	p := New(nil)
	task := &domain.Task{
		UUID:        "a1b2c3d4-0000-0000-0000-000000000000",
		ID:          3,
		Description: "Paint the fence",
		Status:      domain.StatusCompleted,
		Project:     "home",
		Tags:        []string{"outdoor", "weekend"},
		Due:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	got := p.PresentTask(task)

	assert.Equal(t, task.UUID, got.ID)
	assert.Equal(t, "Paint the fence", got.Label)
	assert.Equal(t, "Paint the fence", got.Attributes["label"])
	assert.Equal(t, "gray60", got.Attributes["fontcolor"])
	assert.Equal(t, "box", got.Attributes["shape"])
	assert.Contains(t, got.Attributes["tooltip"], "Status: Completed")
	assert.Contains(t, got.Attributes["tooltip"], "ID: 3")
	assert.Contains(t, got.Attributes["tooltip"], "Project: home")
	assert.Contains(t, got.Attributes["tooltip"], "Due: 2026-05-01")
	assert.Contains(t, got.Attributes["tooltip"], "Tags: outdoor, weekend")
}

func TestPresenter_PresentTask_TruncatesLabel(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Graph.LabelWidth = 10
	p := New(cfg)

	got := p.PresentTask(&domain.Task{UUID: "u", Description: "A very long description", Status: domain.StatusPending})

	assert.Equal(t, "A very lo…", got.Label)
	assert.Contains(t, got.Attributes["tooltip"], "A very long description")
}

func TestPresenter_PresentTask_CustomStyle(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Styles["waiting"] = domain.NodeStyle{Style: "filled", FillColor: "lightyellow"}
	p := New(cfg)

	got := p.PresentTask(&domain.Task{UUID: "u", Description: "Wait", Status: domain.StatusWaiting})

	assert.Equal(t, "filled", got.Attributes["style"])
	assert.Equal(t, "lightyellow", got.Attributes["fillcolor"])
	_, hasShape := got.Attributes["shape"]
	assert.False(t, hasShape)
}

func TestPresenter_PresentProject(t *testing.T) {
	p := New(nil)

	got := p.PresentProject(&domain.Project{Name: "home.garden"})

	assert.Equal(t, "cluster_home_2e_garden", got.ID)
	assert.Equal(t, "home.garden", got.Label)
	assert.Equal(t, "home.garden", got.Attributes["label"])
	assert.Equal(t, "rounded", got.Attributes["style"])
}

func TestPresenter_PresentProject_Tooltip(t *testing.T) {
	p := New(nil)
	project := &domain.Project{
		Name: "home",
		Tasks: []*domain.Task{
			{UUID: "a", Description: "Paint"},
			{UUID: "b", Description: "Weed", Status: domain.StatusCompleted},
			{UUID: "c", Description: "Gone", Status: domain.StatusDeleted},
		},
	}

	got := p.PresentProject(project)

	assert.Equal(t, "home\nTasks: 2", got.Attributes["tooltip"])
}

func TestPresenter_PresentTask_Urgency(t *testing.T) {
	p := New(nil)

	got := p.PresentTask(&domain.Task{UUID: "u", Description: "Pay rent", Status: domain.StatusPending, Urgency: 8.5})
	assert.Contains(t, got.Attributes["tooltip"], "Urgency: 8.50")

	got = p.PresentTask(&domain.Task{UUID: "u", Description: "Someday", Status: domain.StatusPending})
	assert.NotContains(t, got.Attributes["tooltip"], "Urgency")
}
