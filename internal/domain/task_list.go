package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// minUUIDPrefix is the shortest UUID prefix accepted as a task reference.
const minUUIDPrefix = 8

// TaskList is an indexed set of tasks loaded from a single export.
// It resolves dependency references between its tasks.
type TaskList struct {
	byUUID map[string]*Task
	byID   map[int]*Task
	tasks  []*Task
}

// NewTaskList indexes tasks and links them to the list.
// Returns ErrDuplicateTask if two tasks share a UUID.
func NewTaskList(tasks []*Task) (*TaskList, error) {
	l := &TaskList{
		byUUID: make(map[string]*Task, len(tasks)),
		byID:   make(map[int]*Task, len(tasks)),
		tasks:  make([]*Task, 0, len(tasks)),
	}
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if t.UUID != "" {
			if _, ok := l.byUUID[t.UUID]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateTask, t.UUID)
			}
			l.byUUID[t.UUID] = t
		}
		if t.ID > 0 {
			if _, ok := l.byID[t.ID]; ok {
				return nil, fmt.Errorf("%w: #%d", ErrDuplicateTask, t.ID)
			}
			l.byID[t.ID] = t
		}
		t.list = l
		l.tasks = append(l.tasks, t)
	}
	return l, nil
}

// Tasks returns all tasks in export order.
func (l *TaskList) Tasks() []*Task {
	return l.tasks
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Find resolves a task reference. A reference is either a full UUID,
// a working-set ID, or an unambiguous UUID prefix of at least 8 characters.
// Working-set IDs win over all-digit UUID prefixes.
// Returns nil if no task matches.
func (l *TaskList) Find(ref string) *Task {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}
	if t, ok := l.byUUID[ref]; ok {
		return t
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if t, ok := l.byID[id]; ok {
			return t
		}
	}
	if len(ref) < minUUIDPrefix {
		return nil
	}
	var found *Task
	for uuid, t := range l.byUUID {
		if strings.HasPrefix(uuid, ref) {
			if found != nil {
				return nil // ambiguous
			}
			found = t
		}
	}
	return found
}

// Projects returns the projects of the list sorted by name.
// Tasks within a project keep export order.
func (l *TaskList) Projects() []*Project {
	byName := make(map[string]*Project)
	for _, t := range l.tasks {
		if !t.HasProject() {
			continue
		}
		p, ok := byName[t.Project]
		if !ok {
			p = &Project{Name: t.Project}
			byName[t.Project] = p
		}
		p.Tasks = append(p.Tasks, t)
	}

	projects := make([]*Project, 0, len(byName))
	for _, p := range byName {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects
}

// Project returns the project with the given name.
// Subprojects (e.g. "home.garden" for "home") are included.
func (l *TaskList) Project(name string) (*Project, error) {
	p := &Project{Name: name}
	for _, t := range l.tasks {
		if t.Project == name || strings.HasPrefix(t.Project, name+".") {
			p.Tasks = append(p.Tasks, t)
		}
	}
	if len(p.Tasks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, name)
	}
	return p, nil
}

// Unassigned returns the tasks without a project, in export order.
func (l *TaskList) Unassigned() []*Task {
	var tasks []*Task
	for _, t := range l.tasks {
		if !t.HasProject() {
			tasks = append(tasks, t)
		}
	}
	return tasks
}
