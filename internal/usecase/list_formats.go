package usecase

import (
	"context"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/graph"
)

// ListFormatsInput contains the input for the ListFormats use case.
type ListFormatsInput struct{}

// ListFormatsOutput contains the output formats supported by the engine.
type ListFormatsOutput struct {
	Default string   // Configured default format
	Formats []string // Supported formats, sorted
}

// ListFormats lists the output formats of the graph engine.
type ListFormats struct {
	engine domain.GraphEngine
	config *domain.Config
}

// NewListFormats creates a new ListFormats use case.
func NewListFormats(engine domain.GraphEngine, config *domain.Config) *ListFormats {
	if config == nil {
		config = domain.NewDefaultConfig()
	}
	return &ListFormats{
		engine: engine,
		config: config,
	}
}

// Execute returns the supported formats.
func (uc *ListFormats) Execute(_ context.Context, _ ListFormatsInput) (*ListFormatsOutput, error) {
	return &ListFormatsOutput{
		Default: uc.config.Graph.Format,
		Formats: graph.Formats(uc.engine),
	}, nil
}
