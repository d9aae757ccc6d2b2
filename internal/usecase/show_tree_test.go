package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/testutil"
	"github.com/runoshun/depgraph/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keys flattens a tree into "key" / "key*" (repeated) strings, depth first.
func keys(nodes []*usecase.TreeNode, prefix string) []string {
	var out []string
	for _, n := range nodes {
		k := prefix + n.Task.Key()
		if n.Repeated {
			k += "*"
		}
		out = append(out, k)
		out = append(out, keys(n.Children, prefix+"  ")...)
	}
	return out
}

func showTree(t *testing.T, tasks []*domain.Task, in usecase.ShowTreeInput) (*usecase.ShowTreeOutput, error) {
	t.Helper()
	in.Reader = strings.NewReader("")
	return usecase.NewShowTree(&testutil.MockTaskSource{Tasks: tasks}).Execute(context.Background(), in)
}

func TestShowTree_Execute(t *testing.T) {
	t.Run("roots are tasks nothing depends on", func(t *testing.T) {
		d := testutil.NewTask("d", "Dropped")
		d.Status = domain.StatusDeleted
		tasks := []*domain.Task{
			testutil.NewTask("a", "A", "b", "c"),
			testutil.NewTask("b", "B", "c"),
			testutil.NewTask("c", "C"),
			d,
			testutil.NewTask("e", "E", "d", "missing"),
		}

		out, err := showTree(t, tasks, usecase.ShowTreeInput{})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"a",
			"  b",
			"    c",
			"  c*",
			"e",
		}, keys(out.Roots, ""))
	})

	t.Run("cycle is shown once", func(t *testing.T) {
		tasks := []*domain.Task{
			testutil.NewTask("x", "X", "y"),
			testutil.NewTask("y", "Y", "x"),
		}

		out, err := showTree(t, tasks, usecase.ShowTreeInput{})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"x",
			"  y",
			"    x*",
		}, keys(out.Roots, ""))
	})

	t.Run("explicit roots", func(t *testing.T) {
		tasks := []*domain.Task{
			testutil.NewTask("a", "A", "b"),
			testutil.NewTask("b", "B"),
		}

		out, err := showTree(t, tasks, usecase.ShowTreeInput{TaskRefs: []string{"b"}})

		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, keys(out.Roots, ""))
	})

	t.Run("project filter", func(t *testing.T) {
		a := testutil.NewTask("a", "A", "b")
		a.Project = "home"
		tasks := []*domain.Task{a, testutil.NewTask("b", "B"), testutil.NewTask("c", "C")}

		out, err := showTree(t, tasks, usecase.ShowTreeInput{Project: "home"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "  b"}, keys(out.Roots, ""))
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := showTree(t, nil, usecase.ShowTreeInput{TaskRefs: []string{"a"}})
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := showTree(t, nil, usecase.ShowTreeInput{Project: "home"})
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("load failure", func(t *testing.T) {
		uc := usecase.NewShowTree(&testutil.MockTaskSource{LoadErr: testutil.ErrMock})
		_, err := uc.Execute(context.Background(), usecase.ShowTreeInput{Reader: strings.NewReader("")})
		assert.ErrorIs(t, err, testutil.ErrMock)
	})
}
