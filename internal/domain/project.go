package domain

// Project groups the tasks sharing a project name.
// Fields are ordered to minimize memory padding.
type Project struct {
	Name  string  // Full project name (e.g. "home.garden")
	Tasks []*Task // Tasks in export order
}

// Key returns the identifier used for the project cluster.
func (p *Project) Key() string {
	return "project:" + p.Name
}

// Label returns the project name.
func (p *Project) Label() string {
	return p.Name
}

// Members returns the tasks of the project as graph entities.
func (p *Project) Members() []Dependent {
	members := make([]Dependent, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		members = append(members, t)
	}
	return members
}

// ActiveCount returns the number of tasks that are not deleted.
func (p *Project) ActiveCount() int {
	n := 0
	for _, t := range p.Tasks {
		if !t.IsDeleted() {
			n++
		}
	}
	return n
}
