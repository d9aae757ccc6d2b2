// Package taskfile decodes task exports into domain tasks.
//
// Supported inputs are TaskWarrior `task export` JSON (array or one object
// per line), YAML task lists and HCL task blocks.
package taskfile

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/runoshun/depgraph/internal/domain"
)

// Source implements domain.TaskSource.
type Source struct {
	// filename is reported in HCL diagnostics.
	filename string
}

// Ensure Source implements domain.TaskSource.
var _ domain.TaskSource = (*Source)(nil)

// New creates a Source.
func New() *Source {
	return &Source{filename: "tasks.hcl"}
}

// NewWithFilename creates a Source reporting filename in diagnostics.
func NewWithFilename(filename string) *Source {
	return &Source{filename: filename}
}

// Load reads all tasks from r.
func (s *Source) Load(ctx context.Context, r io.Reader, format domain.InputFormat) ([]*domain.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raws []rawTask
	switch format {
	case domain.InputJSON, "":
		raws, err = decodeJSON(data)
	case domain.InputYAML:
		raws, err = decodeYAML(data)
	case domain.InputHCL:
		raws, err = decodeHCL(data, s.filename)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownInputFormat, format)
	}
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(raws))
	for i, raw := range raws {
		t, err := raw.toDomain()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// rawTask is the decoded form of a task shared by all input formats.
// Fields are ordered to minimize memory padding.
type rawTask struct {
	Entry       twTime      `json:"entry" yaml:"entry"`
	Due         twTime      `json:"due" yaml:"due"`
	UUID        string      `json:"uuid" yaml:"uuid"`
	Description string      `json:"description" yaml:"description"`
	Status      string      `json:"status" yaml:"status"`
	Project     string      `json:"project" yaml:"project"`
	Tags        []string    `json:"tags" yaml:"tags"`
	Depends     dependsList `json:"depends" yaml:"depends"`
	Urgency     float64     `json:"urgency" yaml:"urgency"`
	ID          int         `json:"id" yaml:"id"`
}

func (r rawTask) toDomain() (*domain.Task, error) {
	desc := strings.TrimSpace(r.Description)
	if desc == "" {
		return nil, domain.ErrEmptyDescription
	}

	status := domain.StatusPending
	if r.Status != "" {
		status = domain.Status(strings.ToLower(r.Status))
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, r.Status)
		}
	}

	return &domain.Task{
		ID:          r.ID,
		UUID:        strings.TrimSpace(r.UUID),
		Description: desc,
		Status:      status,
		Project:     strings.TrimSpace(r.Project),
		Tags:        r.Tags,
		Depends:     r.Depends,
		Entry:       time.Time(r.Entry),
		Due:         time.Time(r.Due),
		Urgency:     r.Urgency,
	}, nil
}

// dependsList holds task references. TaskWarrior exports them either as a
// JSON array or, before 2.6, as a single comma-separated string.
type dependsList []string

func splitDepends(s string) dependsList {
	var refs dependsList
	for _, ref := range strings.Split(s, ",") {
		if ref = strings.TrimSpace(ref); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// twTime is a timestamp in TaskWarrior's compact ISO format
// (20060102T150405Z) or RFC 3339.
type twTime time.Time

var timeLayouts = []string{
	"20060102T150405Z",
	time.RFC3339,
	"2006-01-02",
}

func parseTime(s string) (twTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return twTime{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return twTime(t), nil
		}
	}
	return twTime{}, fmt.Errorf("invalid timestamp %q", s)
}
