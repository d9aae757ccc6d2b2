// Package domain contains core business entities and interfaces.
package domain

import (
	"strconv"
	"time"
)

// Task represents a single task from a task export.
// Fields are ordered to minimize memory padding.
type Task struct {
	Entry       time.Time // Creation time
	Due         time.Time // Due date (zero = none)
	list        *TaskList // Owning list, used to resolve dependencies
	UUID        string    // Stable identifier
	Description string    // Description (required)
	Status      Status    // Current status
	Project     string    // Project name (empty = none)
	Tags        []string  // Tags
	Depends     []string  // References (UUID or ID) of tasks this task depends on
	Urgency     float64   // Urgency as computed by TaskWarrior
	ID          int       // Working-set ID (0 for completed/deleted)
}

// Key returns the identifier used for graph nodes.
// UUID is preferred; the working-set ID is used when no UUID is present.
func (t *Task) Key() string {
	if t.UUID != "" {
		return t.UUID
	}
	return strconv.Itoa(t.ID)
}

// Label returns the human readable name of the task.
func (t *Task) Label() string {
	if t.Description != "" {
		return t.Description
	}
	return t.Key()
}

// IsDeleted returns true if the task is deleted or absent.
// It is safe to call on a nil task.
func (t *Task) IsDeleted() bool {
	return t == nil || t.Status == StatusDeleted
}

// HasProject returns true if the task belongs to a project.
func (t *Task) HasProject() bool {
	return t.Project != ""
}

// Dependencies returns the tasks this task depends on, in declared order.
// References that cannot be resolved are returned as nil entries so that
// callers treat them as absent.
func (t *Task) Dependencies() []Dependent {
	if t == nil || len(t.Depends) == 0 {
		return nil
	}
	deps := make([]Dependent, 0, len(t.Depends))
	for _, ref := range t.Depends {
		var dep *Task
		if t.list != nil {
			dep = t.list.Find(ref)
		}
		if dep == nil {
			deps = append(deps, nil)
			continue
		}
		deps = append(deps, dep)
	}
	return deps
}
