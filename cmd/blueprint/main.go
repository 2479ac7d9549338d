package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/blueprint/internal/cli"
	"github.com/example/blueprint/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "blueprint",
		Short:   "blueprint - clean architecture entity scaffolder",
		Version: version.String(),
		Long: `blueprint generates the layered source files for a new entity - model,
repository, use cases, helpers, controller, routes - from a template set, and
registers the entity in the project's aggregator file.`,
	}

	rootCmd.AddCommand(cli.EntityCmd())
	rootCmd.AddCommand(cli.TemplatesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
