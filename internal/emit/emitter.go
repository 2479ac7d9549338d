// Package emit writes generator output to the target project tree.
package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/blueprint/internal/entity"
	"github.com/example/blueprint/internal/patch"
	"github.com/example/blueprint/internal/scaffold"
)

// Emitter writes generated files under one project root. Writes are
// sequential and not transactional: files already written stay on disk when
// a later step fails.
type Emitter struct {
	root     string
	registry patch.Registry
}

// NewEmitter creates an Emitter rooted at the target project directory.
func NewEmitter(root string, registry patch.Registry) *Emitter {
	return &Emitter{root: root, registry: registry}
}

// Apply materializes a GeneratorResult: the directory skeleton first, then
// each file in result order. Re-creating an existing output file truncates
// and overwrites it; the aggregator patch alone is idempotent.
func (e *Emitter) Apply(result *scaffold.GeneratorResult, name entity.Name) error {
	for _, dir := range result.Dirs {
		if err := os.MkdirAll(filepath.Join(e.root, dir), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	for _, f := range result.Files {
		var err error
		switch f.Operation {
		case "create":
			err = e.writeFile(f)
		case "patch":
			err = e.patchFile(f, name)
		default:
			err = fmt.Errorf("unknown operation %q for %s", f.Operation, f.Path)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *Emitter) writeFile(f scaffold.GeneratedFile) error {
	path := filepath.Join(e.root, f.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return nil
}

// patchFile reads the aggregator, applies the registration patch, and writes
// the file back. On a patch failure the file is left unmodified.
func (e *Emitter) patchFile(f scaffold.GeneratedFile, name entity.Name) error {
	path := filepath.Join(e.root, f.Path)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read aggregator %s: %w", f.Path, err)
	}

	patched, err := patch.Apply(string(data), name, e.registry)
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", f.Path, err)
	}

	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return nil
}
