package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/depgraph/internal/domain"
)

// ShowTreeInput contains the parameters for showing a dependency tree.
type ShowTreeInput struct {
	Reader      io.Reader          // Task export to read
	InputFormat domain.InputFormat // Format of the task export
	Project     string             // Restrict roots to this project (empty = all)
	TaskRefs    []string           // Use these tasks as roots (empty = all top-level tasks)
}

// TreeNode is a task with the tasks it depends on.
// Fields are ordered to minimize memory padding.
type TreeNode struct {
	Task     *domain.Task
	Children []*TreeNode
	Repeated bool // Already shown earlier in the tree; children omitted
}

// ShowTreeOutput contains the dependency trees.
type ShowTreeOutput struct {
	Roots []*TreeNode
}

// ShowTree builds text-friendly dependency trees.
type ShowTree struct {
	source domain.TaskSource
}

// NewShowTree creates a new ShowTree use case.
func NewShowTree(source domain.TaskSource) *ShowTree {
	return &ShowTree{source: source}
}

// Execute loads tasks and builds one tree per root task.
//
// Without explicit roots, every live task that no other live task depends
// on is a root. Tasks only reachable through a cycle become roots in export
// order, so every live task appears at least once.
func (uc *ShowTree) Execute(ctx context.Context, in ShowTreeInput) (*ShowTreeOutput, error) {
	tasks, err := uc.source.Load(ctx, in.Reader, in.InputFormat)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	list, err := domain.NewTaskList(tasks)
	if err != nil {
		return nil, err
	}

	var candidates []*domain.Task
	if in.Project != "" {
		p, err := list.Project(in.Project)
		if err != nil {
			return nil, err
		}
		candidates = p.Tasks
	} else {
		candidates = list.Tasks()
	}

	b := &treeBuilder{seen: make(map[string]struct{})}

	if len(in.TaskRefs) > 0 {
		for _, ref := range in.TaskRefs {
			t := list.Find(ref)
			if t == nil {
				return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, ref)
			}
			b.addRoot(t)
		}
		return &ShowTreeOutput{Roots: b.roots}, nil
	}

	dependedOn := make(map[string]struct{})
	for _, t := range list.Tasks() {
		if t.IsDeleted() {
			continue
		}
		for _, dep := range t.Dependencies() {
			if dep == nil || dep.IsDeleted() {
				continue
			}
			dependedOn[dep.Key()] = struct{}{}
		}
	}

	for _, t := range candidates {
		if t.IsDeleted() {
			continue
		}
		if _, ok := dependedOn[t.Key()]; !ok {
			b.addRoot(t)
		}
	}
	for _, t := range candidates {
		if t.IsDeleted() {
			continue
		}
		if _, ok := b.seen[t.Key()]; !ok {
			b.addRoot(t)
		}
	}

	return &ShowTreeOutput{Roots: b.roots}, nil
}

type treeBuilder struct {
	seen  map[string]struct{}
	roots []*TreeNode
}

func (b *treeBuilder) addRoot(t *domain.Task) {
	b.roots = append(b.roots, b.build(t))
}

func (b *treeBuilder) build(t *domain.Task) *TreeNode {
	node := &TreeNode{Task: t}
	if _, ok := b.seen[t.Key()]; ok {
		node.Repeated = true
		return node
	}
	b.seen[t.Key()] = struct{}{}

	for _, dep := range t.Dependencies() {
		dt, ok := dep.(*domain.Task)
		if !ok || dt.IsDeleted() {
			continue
		}
		node.Children = append(node.Children, b.build(dt))
	}
	return node
}
