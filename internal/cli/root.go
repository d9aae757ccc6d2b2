// Package cli provides the command-line interface for depgraph.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/depgraph/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for depgraph.
// It receives the container for dependency injection and version for display.
// Without a subcommand the root command renders, like "depgraph render".
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts renderOptions
	var configPath, logLevel string

	root := &cobra.Command{
		Use:   "depgraph [file]",
		Short: "Render task dependency graphs",
		Long: `depgraph renders the dependencies between tasks as a graph.

Tasks are read from a TaskWarrior export (task export), a YAML task list or
an HCL task file. Every task becomes a node, every dependency an edge, and
every project a cluster. Graphs are written by Graphviz in any of its
output formats.

Without a subcommand, depgraph behaves like 'depgraph render'.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			// The template must work even if config files are broken
			if cmd.Name() == "template" {
				return nil
			}

			warnings, err := c.Setup(app.Options{
				ConfigPath: configPath,
				LogLevel:   logLevel,
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			style := warningStyle(lipgloss.NewRenderer(cmd.ErrOrStderr()))
			for _, w := range warnings {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), style.Render("Warning: "+w))
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			return c.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, c, opts, args)
		},
	}

	addRenderFlags(root, &opts)
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file to use instead of ./.depgraph.toml")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newRenderCommand(c),
		newFormatsCommand(c),
		newTreeCommand(c),
		newConfigCommand(c),
	)

	return root
}
