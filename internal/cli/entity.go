package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/blueprint/internal/config"
	"github.com/example/blueprint/internal/emit"
	"github.com/example/blueprint/internal/entity"
	"github.com/example/blueprint/internal/patch"
	"github.com/example/blueprint/internal/scaffold"
	"github.com/example/blueprint/internal/templates"
)

var entityCmd = &cobra.Command{
	Use:   "entity [name]",
	Short: "Generate the layered file stack for an entity",
	Long: `Generate all source files for a new entity following the target project's
clean architecture:
  - Model (infrastructure/models/)
  - Repository interface (core/interfaces/)
  - Repository implementation (infrastructure/repositories/)
  - Add/Get/Delete/Update use cases (core/use_cases/)
  - Request and types helpers (core/utils/)
  - Controller (presentation/controllers/)
  - Routes (infrastructure/routes/)
and register the entity in infrastructure/config/sequelize.ts.

Fields are declared as name:STORAGE:lang with optional attribute tags:

  blueprint entity Post --plural Posts \
    --fields "id:INTEGER:number:@PrimaryKey|@AutoIncrement,content:STRING:string,name:STRING:string"

Templates come from .blueprint/config.json in the project root (or
BLUEPRINT_<SHAPE>_TEMPLATE environment variables), from --templates-dir, or
from the builtin set when neither is present.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plural, _ := cmd.Flags().GetString("plural")
		fieldsStr, _ := cmd.Flags().GetString("fields")
		root, _ := cmd.Flags().GetString("root")
		templatesDir, _ := cmd.Flags().GetString("templates-dir")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		yes, _ := cmd.Flags().GetBool("yes")

		name, err := entity.NewName(args[0], plural)
		if err != nil {
			return err
		}

		props, err := scaffold.ParseFields(fieldsStr)
		if err != nil {
			return err
		}

		source, err := resolveSource(root, templatesDir)
		if err != nil {
			return err
		}

		gen := scaffold.NewGenerator(source)
		result, err := gen.GenerateEntity(name, props)
		if err != nil {
			return fmt.Errorf("failed to generate entity: %w", err)
		}

		printPlan(name, props, result)

		if dryRun {
			fmt.Println("(dry-run mode - no files written)")
			fmt.Println()
			for _, f := range result.Files {
				if f.Operation == "create" {
					fmt.Printf("--- %s ---\n", f.Path)
					fmt.Println(f.Content)
				}
			}
			return nil
		}

		if !yes && !confirm() {
			fmt.Println("Aborted.")
			return nil
		}

		emitter := emit.NewEmitter(root, patch.Sequelize{})
		if err := emitter.Apply(result, name); err != nil {
			return err
		}

		for _, f := range result.Files {
			if f.Operation == "create" {
				fmt.Printf("%s %s\n", color.GreenString("✓ Created"), f.Path)
			} else {
				fmt.Printf("%s %s\n", color.GreenString("✓ Patched"), f.Path)
			}
		}
		return nil
	},
}

// resolveSource picks the template source: an explicit directory wins, then
// the project's config file, then the builtin set.
func resolveSource(root, templatesDir string) (scaffold.Source, error) {
	if templatesDir != "" {
		return config.Source{Config: config.FromDir(templatesDir)}, nil
	}

	cfg, err := config.LoadConfig(root)
	if err == nil {
		return config.Source{Config: cfg}, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return templates.Builtin{}, nil
	}
	return nil, err
}

func printPlan(name entity.Name, props entity.PropertySet, result *scaffold.GeneratorResult) {
	fmt.Printf("Generating entity '%s'", name.Singular)
	if len(props) > 0 {
		fieldStrs := make([]string, len(props))
		for i, f := range props {
			fieldStrs[i] = fmt.Sprintf("%s(%s)", f.Name(), f.Language())
		}
		fmt.Printf(" with fields: %s", strings.Join(fieldStrs, ", "))
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("Files to create:")
	for _, f := range result.Files {
		if f.Operation == "create" {
			fmt.Printf("  %s\n", f.Path)
		}
	}
	fmt.Println()

	fmt.Println("Files to modify:")
	for _, f := range result.Files {
		if f.Operation != "create" {
			fmt.Printf("  %s\n", f.Path)
		}
	}
	fmt.Println()
}

func confirm() bool {
	fmt.Print("Proceed? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func init() {
	entityCmd.Flags().String("plural", "", "Plural entity name (required; no inflection is applied)")
	entityCmd.Flags().String("fields", "", "Field specifications (e.g. 'id:INTEGER:number:@PrimaryKey,content:STRING:string')")
	entityCmd.Flags().String("root", ".", "Target project root")
	entityCmd.Flags().String("templates-dir", "", "Directory holding <shape>.tmpl template files")
	entityCmd.Flags().Bool("dry-run", false, "Preview without writing files")
	entityCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	_ = entityCmd.MarkFlagRequired("plural")
}

// EntityCmd returns the entity command.
func EntityCmd() *cobra.Command {
	return entityCmd
}
