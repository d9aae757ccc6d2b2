package cli

import (
	"fmt"

	"github.com/runoshun/depgraph/internal/app"
	"github.com/runoshun/depgraph/internal/usecase"
	"github.com/spf13/cobra"
)

// newFormatsCommand creates the formats command.
func newFormatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Long: `List the output formats the renderer supports.

dot and gv are produced without Graphviz; every other format runs the
dot executable ([render] dot_path in the config).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListFormatsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListFormatsInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, f := range out.Formats {
				if f == out.Default {
					_, _ = fmt.Fprintf(w, "%s (default)\n", f)
					continue
				}
				_, _ = fmt.Fprintln(w, f)
			}
			return nil
		},
	}
}
