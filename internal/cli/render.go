package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/depgraph/internal/app"
	"github.com/runoshun/depgraph/internal/domain"
	"github.com/runoshun/depgraph/internal/usecase"
	"github.com/spf13/cobra"
)

// renderOptions holds the flags shared by the root and render commands.
type renderOptions struct {
	Input      string
	Format     string
	Output     string
	Projects   []string
	Tasks      []string
	NoClusters bool
}

// addRenderFlags registers the render flags on cmd.
func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Input format: json, yaml, hcl (default: by file extension, json for stdin)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (default from config, see 'depgraph formats')")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().StringArrayVarP(&opts.Projects, "project", "p", nil, "Only render this project (can specify multiple)")
	cmd.Flags().StringArrayVarP(&opts.Tasks, "task", "t", nil, "Only render this task and its dependencies (can specify multiple)")
	cmd.Flags().BoolVar(&opts.NoClusters, "no-clusters", false, "Do not group tasks by project")
}

// newRenderCommand creates the render command.
func newRenderCommand(c *app.Container) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the dependency graph",
		Long: `Render the dependency graph of a task export.

Reads tasks from the given file, or from stdin when no file is given.
Every project becomes a cluster; tasks without a project are placed at the
top level. Deleted tasks and references to unknown tasks are left out.

Examples:
  # Render a TaskWarrior export as SVG
  task export | depgraph render > tasks.svg

  # Render a YAML task file as PNG
  depgraph render tasks.yaml -f png -o tasks.png

  # Render one project and the dependencies of one task
  depgraph render tasks.json --project home --task 12`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, c, opts, args)
		},
	}

	addRenderFlags(cmd, &opts)
	return cmd
}

// runRender renders the graph of the file in args, or of stdin.
func runRender(cmd *cobra.Command, c *app.Container, opts renderOptions, args []string) error {
	r, format, closeInput, err := openInput(cmd, opts.Input, args)
	if err != nil {
		return err
	}
	defer closeInput()

	uc := c.RenderGraphUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.RenderGraphInput{
		Reader:      r,
		InputFormat: format,
		Format:      opts.Format,
		Projects:    opts.Projects,
		TaskRefs:    opts.Tasks,
		NoClusters:  opts.NoClusters,
	})
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = cmd.OutOrStdout().Write(out.Data)
		return err
	}
	if err := os.WriteFile(opts.Output, out.Data, 0o644); err != nil { //nolint:gosec // Rendered graphs are meant to be shared
		return fmt.Errorf("write output: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d nodes, %d edges)\n", opts.Output, out.Stats.Nodes, out.Stats.Edges)
	return nil
}

// openInput returns the task export to read and its format.
// The returned close function is always safe to call.
func openInput(cmd *cobra.Command, input string, args []string) (io.Reader, domain.InputFormat, func(), error) {
	noop := func() {}

	var format domain.InputFormat
	if input != "" {
		f, err := domain.ParseInputFormat(input)
		if err != nil {
			return nil, "", noop, err
		}
		format = f
	}

	if len(args) == 0 || args[0] == "-" {
		if format == "" {
			format = domain.InputJSON
		}
		return cmd.InOrStdin(), format, noop, nil
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return nil, "", noop, fmt.Errorf("open input: %w", err)
	}
	if format == "" {
		format = domain.DetectInputFormat(path)
	}
	return f, format, func() { _ = f.Close() }, nil
}
