package scaffold

import (
	"fmt"

	"github.com/example/blueprint/internal/entity"
)

// AggregatorPath is the registration file of the generated application,
// relative to the project root. Every generated entity must be listed there.
const AggregatorPath = "infrastructure/config/sequelize.ts"

// skeleton is the layered directory tree the generated files live in,
// created even when a layer receives no file this run.
var skeleton = []string{
	"core/interfaces",
	"core/use_cases",
	"core/utils",
	"presentation/controllers",
	"infrastructure/config",
	"infrastructure/models",
	"infrastructure/repositories",
	"infrastructure/routes",
}

// Generator renders every output shape for one entity.
type Generator struct {
	source Source
}

// NewGenerator creates a Generator reading templates from source.
func NewGenerator(source Source) *Generator {
	return &Generator{source: source}
}

// GenerateEntity renders all shapes for the entity and returns the files to
// create plus the aggregator patch target. Rendering is pure; nothing
// touches the filesystem here except template reads through the Source.
func (g *Generator) GenerateEntity(name entity.Name, props entity.PropertySet) (*GeneratorResult, error) {
	result := &GeneratorResult{Dirs: append([]string(nil), skeleton...)}

	for _, shape := range Shapes {
		text, err := g.source.Template(shape)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s template: %w", shape, err)
		}

		result.Files = append(result.Files, GeneratedFile{
			Path:      shape.OutputPath(name),
			Content:   Render(text, name, shape.fragments(props, name)),
			Operation: "create",
		})
	}

	result.Files = append(result.Files, GeneratedFile{
		Path:      AggregatorPath,
		Operation: "patch",
	})

	return result, nil
}
