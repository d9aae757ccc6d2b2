// Package main is the entry point for the depgraph CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/runoshun/depgraph/internal/app"
	"github.com/runoshun/depgraph/internal/cli"
	"github.com/runoshun/depgraph/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

// newRootCommand is a variable so tests can replace the command tree.
var newRootCommand = cli.NewRootCommand

func main() {
	if err := run(os.Args[1:]); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	container := app.New(cwd)
	rootCmd := newRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// printError prints err with a hint for common setup problems.
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, "Error:", err)
	if errors.Is(err, domain.ErrCommandNotFound) {
		_, _ = fmt.Fprintln(w, "Hint: install Graphviz or set [render] dot_path; dot and gv output work without it.")
	}
}
