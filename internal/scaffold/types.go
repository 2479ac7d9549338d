// Package scaffold generates clean-architecture source files for one entity
// from externally supplied templates.
package scaffold

import (
	"fmt"

	"github.com/example/blueprint/internal/entity"
)

// Shape identifies one kind of output file this generator knows how to
// produce. Each shape has its own template, destination path, and fragment
// placeholder set.
type Shape string

const (
	ShapeModel               Shape = "model"
	ShapeRepositoryInterface Shape = "repository_interface"
	ShapeRepository          Shape = "repository"
	ShapeAddUseCase          Shape = "add_use_case"
	ShapeListUseCase         Shape = "list_use_case"
	ShapeDeleteUseCase       Shape = "delete_use_case"
	ShapeUpdateUseCase       Shape = "update_use_case"
	ShapeRequestHelper       Shape = "request_helper"
	ShapeTypesHelper         Shape = "types_helper"
	ShapeController          Shape = "controller"
	ShapeRoutes              Shape = "routes"
)

// Shapes lists every output shape in generation order.
var Shapes = []Shape{
	ShapeModel,
	ShapeRepositoryInterface,
	ShapeRepository,
	ShapeAddUseCase,
	ShapeListUseCase,
	ShapeDeleteUseCase,
	ShapeUpdateUseCase,
	ShapeRequestHelper,
	ShapeTypesHelper,
	ShapeController,
	ShapeRoutes,
}

// OutputPath returns the shape's destination path relative to the project
// root, following the generated application's layered layout.
func (s Shape) OutputPath(name entity.Name) string {
	switch s {
	case ShapeModel:
		return fmt.Sprintf("infrastructure/models/%sModel.ts", name.Lower())
	case ShapeRepositoryInterface:
		return fmt.Sprintf("core/interfaces/I%sRepository.ts", name.Singular)
	case ShapeRepository:
		return fmt.Sprintf("infrastructure/repositories/%sRepository.ts", name.Lower())
	case ShapeAddUseCase:
		return fmt.Sprintf("core/use_cases/%s/Add%s.ts", name.Singular, name.Singular)
	case ShapeListUseCase:
		return fmt.Sprintf("core/use_cases/%s/Get%s.ts", name.Singular, name.Plural)
	case ShapeDeleteUseCase:
		return fmt.Sprintf("core/use_cases/%s/Delete%s.ts", name.Singular, name.Singular)
	case ShapeUpdateUseCase:
		return fmt.Sprintf("core/use_cases/%s/Update%s.ts", name.Singular, name.Singular)
	case ShapeRequestHelper:
		return fmt.Sprintf("core/utils/%s/Request.ts", name.Singular)
	case ShapeTypesHelper:
		return fmt.Sprintf("core/utils/%s/types.ts", name.Singular)
	case ShapeController:
		return fmt.Sprintf("presentation/controllers/%sControllers.ts", name.Lower())
	case ShapeRoutes:
		return fmt.Sprintf("infrastructure/routes/%sRoutes.ts", name.Lower())
	}
	return ""
}

// fragments returns the placeholder/fragment pairs the shape's template may
// reference. Shapes with no dynamic content return nil.
func (s Shape) fragments(props entity.PropertySet, name entity.Name) map[string]string {
	switch s {
	case ShapeModel:
		return map[string]string{TokenModelProperties: ModelProperties(props)}
	case ShapeAddUseCase:
		return map[string]string{TokenAddAssignments: AddAssignments(props)}
	case ShapeUpdateUseCase:
		return map[string]string{TokenUpdateAssignments: UpdateAssignments(props, name)}
	case ShapeTypesHelper:
		return map[string]string{
			TokenTypeAttributes: TypeAttributes(props),
			TokenDetails:        TypeDetails(props),
		}
	case ShapeController:
		return map[string]string{TokenDetails: ControllerAssignments(props)}
	}
	return nil
}

// Source resolves a shape to its raw template text.
type Source interface {
	Template(shape Shape) (string, error)
}

// GeneratedFile is one file to be created or modified under the project root.
type GeneratedFile struct {
	Path      string // relative to project root
	Content   string // full content for create operations
	Operation string // "create" or "patch"
}

// GeneratorResult is everything one entity run produces: the directory
// skeleton, the rendered files, and the aggregator patch target.
type GeneratorResult struct {
	Dirs  []string
	Files []GeneratedFile
}
