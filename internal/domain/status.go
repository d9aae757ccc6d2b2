package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"   // Open and actionable
	StatusWaiting   Status = "waiting"   // Hidden until its wait date
	StatusCompleted Status = "completed" // Done
	StatusDeleted   Status = "deleted"   // Deleted, never shown in graphs
	StatusRecurring Status = "recurring" // Template of a recurring task
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusWaiting,
		StatusCompleted,
		StatusDeleted,
		StatusRecurring,
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusWaiting, StatusCompleted, StatusDeleted, StatusRecurring:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the task will not be worked on anymore.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusDeleted
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusWaiting:
		return "Waiting"
	case StatusCompleted:
		return "Completed"
	case StatusDeleted:
		return "Deleted"
	case StatusRecurring:
		return "Recurring"
	default:
		return string(s)
	}
}
