// Package patch rewrites the generated application's aggregator file so a
// new entity is imported and registered exactly once. Both steps are pure
// text transforms and idempotent under repeated application.
package patch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/example/blueprint/internal/entity"
)

// ErrRegistrationBlockNotFound is returned when the aggregator text contains
// no recognizable registration list. The file is never written in that case.
var ErrRegistrationBlockNotFound = errors.New("registration block not found in aggregator file")

// Registry describes one aggregator file format: how to build the entity's
// import line and how to locate, read, and rewrite the registration list.
// Alternate formats plug in here without touching the patch algorithm.
type Registry interface {
	// ImportLine returns the canonical import line for the entity,
	// terminated with a newline.
	ImportLine(name entity.Name) string

	// FindBlock locates the registration list in text and returns its byte
	// range and current entries. Returns ErrRegistrationBlockNotFound when
	// no list matches.
	FindBlock(text string) (start, end int, entries []string, err error)

	// RenderBlock serializes a registration list.
	RenderBlock(entries []string) string
}

// Apply ensures the entity's import line and registration entry are both
// present in the aggregator text, leaving all other content untouched.
// Applying twice with the same name yields byte-identical output.
func Apply(text string, name entity.Name, reg Registry) (string, error) {
	importLine := reg.ImportLine(name)
	if !strings.Contains(text, importLine) {
		text = importLine + text
	}

	start, end, entries, err := reg.FindBlock(text)
	if err != nil {
		return "", err
	}

	registered := false
	for _, e := range entries {
		if e == name.Singular {
			registered = true
			break
		}
	}
	if !registered {
		entries = append(entries, name.Singular)
		text = text[:start] + reg.RenderBlock(entries) + text[end:]
	}

	return text, nil
}

// Sequelize is the Registry for the sequelize.ts aggregator: an import block
// at the top of the file and a single `models: [...]` list literal.
type Sequelize struct{}

var modelsRe = regexp.MustCompile(`models:\s*\[\s*(.*?)\s*]`)

// ImportLine implements Registry.
func (Sequelize) ImportLine(name entity.Name) string {
	return fmt.Sprintf("import { %s } from \"@infrastructure/models/%sModel\";\n",
		name.Singular, name.Lower())
}

// FindBlock implements Registry.
func (Sequelize) FindBlock(text string) (int, int, []string, error) {
	loc := modelsRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, 0, nil, ErrRegistrationBlockNotFound
	}

	inner := text[loc[2]:loc[3]]
	var entries []string
	if inner != "" {
		entries = strings.Split(inner, ", ")
	}
	return loc[0], loc[1], entries, nil
}

// RenderBlock implements Registry.
func (Sequelize) RenderBlock(entries []string) string {
	return "models: [" + strings.Join(entries, ", ") + "]"
}
