// Package templates ships the builtin template set for every output shape.
// Projects normally export these once and point their config at the copies.
package templates

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/blueprint/internal/scaffold"
)

//go:embed builtin/*.tmpl
var builtinTemplates embed.FS

// Builtin serves the embedded default templates as a scaffold.Source.
type Builtin struct{}

// Template implements scaffold.Source.
func (Builtin) Template(shape scaffold.Shape) (string, error) {
	content, err := builtinTemplates.ReadFile(fmt.Sprintf("builtin/%s.tmpl", shape))
	if err != nil {
		return "", fmt.Errorf("no builtin template for shape %q: %w", shape, err)
	}
	return string(content), nil
}

// Export writes the builtin template set into dir, one <shape>.tmpl per
// output shape, so a project can customize them.
func Export(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create template dir: %w", err)
	}

	for _, shape := range scaffold.Shapes {
		content, err := Builtin{}.Template(shape)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("%s.tmpl", shape))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return nil
}
