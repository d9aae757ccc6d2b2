package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrUnknownEntity      = errors.New("entity is neither a task nor a project")
	ErrUnsupportedFormat  = errors.New("unsupported output format")
	ErrMalformedGraph     = errors.New("malformed graph")
	ErrUnknownInputFormat = errors.New("unknown input format")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrDuplicateTask      = errors.New("duplicate task")
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrCommandNotFound    = errors.New("command not found")
	ErrConfigExists       = errors.New("config file already exists")
)

// RenderError is returned when the graph engine cannot produce output.
type RenderError struct {
	Err    error
	Format string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Err
}
