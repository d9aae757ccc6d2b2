package graph

import (
	"fmt"

	"github.com/runoshun/depgraph/internal/domain"
)

// Presentation is the derived id, attributes and label used to render an entity.
// The zero value is the null presentation and is never inserted into a graph.
// Fields are ordered to minimize memory padding.
type Presentation struct {
	Attributes domain.Attributes
	ID         string
	Label      string
}

// IsNull returns true for the null presentation.
func (p Presentation) IsNull() bool {
	return p.ID == ""
}

// Presenter derives presentations for tasks and projects.
type Presenter interface {
	// PresentTask returns the presentation of a non-nil task.
	PresentTask(t domain.Dependent) Presentation

	// PresentProject returns the presentation of a non-nil project.
	PresentProject(p domain.Grouping) Presentation
}

// Resolve returns the presentation of thing.
// A nil thing yields the null presentation. Things that are neither
// task-like nor project-like are rejected with domain.ErrUnknownEntity.
// Task-like takes precedence when a thing is both.
func Resolve(p Presenter, thing any) (Presentation, error) {
	switch v := thing.(type) {
	case nil:
		return Presentation{}, nil
	case domain.Dependent:
		return p.PresentTask(v), nil
	case domain.Grouping:
		return p.PresentProject(v), nil
	default:
		return Presentation{}, fmt.Errorf("%w: %T", domain.ErrUnknownEntity, thing)
	}
}

// KeyPresenter presents entities by their key and label only.
type KeyPresenter struct{}

// Ensure KeyPresenter implements Presenter.
var _ Presenter = KeyPresenter{}

// PresentTask implements Presenter.
func (KeyPresenter) PresentTask(t domain.Dependent) Presentation {
	return Presentation{
		ID:         t.Key(),
		Label:      t.Label(),
		Attributes: domain.Attributes{"label": t.Label()},
	}
}

// PresentProject implements Presenter.
func (KeyPresenter) PresentProject(p domain.Grouping) Presentation {
	return Presentation{
		ID:         p.Key(),
		Label:      p.Label(),
		Attributes: domain.Attributes{"label": p.Label()},
	}
}
