package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/blueprint/internal/config"
	"github.com/example/blueprint/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage the template set",
}

var templatesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the builtin templates to a directory for customization",
	Long: `Write the builtin template set to a directory, one <shape>.tmpl per output
shape, and record the locations in .blueprint/config.json so later entity
runs pick up the copies.

Example:
  blueprint templates export --dir templates`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		root, _ := cmd.Flags().GetString("root")

		if err := templates.Export(dir); err != nil {
			return fmt.Errorf("failed to export templates: %w", err)
		}

		if err := config.SaveConfig(root, config.FromDir(dir)); err != nil {
			return err
		}

		fmt.Printf("Exported templates to %s and wrote .blueprint/config.json\n", dir)
		return nil
	},
}

func init() {
	templatesExportCmd.Flags().String("dir", "templates", "Directory to write templates into")
	templatesExportCmd.Flags().String("root", ".", "Project root for .blueprint/config.json")

	templatesCmd.AddCommand(templatesExportCmd)
}

// TemplatesCmd returns the templates command.
func TemplatesCmd() *cobra.Command {
	return templatesCmd
}
