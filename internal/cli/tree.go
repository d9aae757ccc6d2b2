package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/depgraph/internal/app"
	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/usecase"
	"github.com/spf13/cobra"
)

// shortRefLen is the number of UUID characters shown for tasks without an ID.
const shortRefLen = 8

// newTreeCommand creates the tree command.
func newTreeCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Input   string
		Project string
		Tasks   []string
	}

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the dependency tree",
		Long: `Print the dependencies of each task as a text tree.

Without --task, every task that no other task depends on is a root.
A task that was already printed is shown again with "(see above)" and
without its dependencies. Deleted tasks and unknown references are left out.

Examples:
  task export | depgraph tree
  depgraph tree tasks.yaml --project home
  depgraph tree tasks.json --task 12`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, format, closeInput, err := openInput(cmd, opts.Input, args)
			if err != nil {
				return err
			}
			defer closeInput()

			uc := c.ShowTreeUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTreeInput{
				Reader:      r,
				InputFormat: format,
				Project:     opts.Project,
				TaskRefs:    opts.Tasks,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Roots) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks found.")
				return nil
			}
			printTree(w, out.Roots, newTreeStyles(lipgloss.NewRenderer(w)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Input format: json, yaml, hcl (default: by file extension, json for stdin)")
	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "Only show tasks of this project")
	cmd.Flags().StringArrayVarP(&opts.Tasks, "task", "t", nil, "Show the tree of this task (can specify multiple)")

	return cmd
}

// printTree writes the trees with box-drawing branches.
func printTree(w io.Writer, roots []*usecase.TreeNode, styles treeStyles) {
	for _, root := range roots {
		_, _ = fmt.Fprintln(w, formatTreeNode(root, styles))
		printChildren(w, root.Children, "", styles)
	}
}

func printChildren(w io.Writer, nodes []*usecase.TreeNode, indent string, styles treeStyles) {
	for i, n := range nodes {
		branch, next := "├──", "│   "
		if i == len(nodes)-1 {
			branch, next = "└──", "    "
		}
		_, _ = fmt.Fprintln(w, styles.Branch.Render(indent+branch)+" "+formatTreeNode(n, styles))
		printChildren(w, n.Children, indent+next, styles)
	}
}

// formatTreeNode formats one line: ref, description, project and status.
func formatTreeNode(n *usecase.TreeNode, styles treeStyles) string {
	t := n.Task
	parts := []string{
		styles.Ref.Render(taskRef(t)),
		styles.statusStyle(t.Status).Render(t.Description),
	}
	if t.Project != "" {
		parts = append(parts, styles.Project.Render("["+t.Project+"]"))
	}
	if t.Status != domain.StatusPending {
		parts = append(parts, styles.statusStyle(t.Status).Render("("+t.Status.Display()+")"))
	}
	if n.Repeated {
		parts = append(parts, styles.Repeated.Render("(see above)"))
	}
	return strings.Join(parts, " ")
}

// taskRef returns the shortest reference a user can type for t.
func taskRef(t *domain.Task) string {
	if t.ID > 0 {
		return strconv.Itoa(t.ID)
	}
	if len(t.UUID) > shortRefLen {
		return t.UUID[:shortRefLen]
	}
	return t.UUID
}
