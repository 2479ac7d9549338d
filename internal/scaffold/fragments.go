package scaffold

import (
	"fmt"
	"strings"

	"github.com/example/blueprint/internal/entity"
)

// Fragment renderers. Each one is a pure function from the ordered field
// list (and entity name where needed) to the text block substituted into a
// template shape. Separators differ per fragment kind and are load-bearing:
// generated files depend on the exact whitespace, so each renderer keeps its
// own join string.

// ModelProperties renders the full attribute block for the model shape: every
// attribute tag on its own indented line, then the column declaration with
// the storage type upper-cased.
func ModelProperties(props entity.PropertySet) string {
	blocks := make([]string, 0, len(props))
	for _, f := range props {
		var b strings.Builder
		for _, attr := range f.Attributes() {
			b.WriteString(fmt.Sprintf("\t%s\n", attr))
		}
		b.WriteString(fmt.Sprintf("\t@Column(DataType.%s)\n\t%s!: %s;",
			strings.ToUpper(string(f.Storage())), f.Name(), f.Language()))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// AddAssignments renders the add-use-case assignment list. The identifier
// field is supplied by the persistence layer and excluded.
func AddAssignments(props entity.PropertySet) string {
	entries := make([]string, 0, len(props))
	for _, f := range props {
		if f.IsIdentifier() {
			continue
		}
		entries = append(entries, fmt.Sprintf("%s: request.%s,", f.Name(), f.Name()))
	}
	return strings.Join(entries, "\n\n\n\t\t\t")
}

// UpdateAssignments renders the update-use-case assignment list, again
// excluding the identifier field.
func UpdateAssignments(props entity.PropertySet, name entity.Name) string {
	entries := make([]string, 0, len(props))
	for _, f := range props {
		if f.IsIdentifier() {
			continue
		}
		entries = append(entries, fmt.Sprintf("%s.%s = request.%s;", name.Lower(), f.Name(), f.Name()))
	}
	return strings.Join(entries, "\n\t\t")
}

// TypeAttributes renders the full record type declaration list: every field,
// identifier included.
func TypeAttributes(props entity.PropertySet) string {
	entries := make([]string, 0, len(props))
	for _, f := range props {
		entries = append(entries, fmt.Sprintf("%s: %s;", f.Name(), f.Language()))
	}
	return strings.Join(entries, "\n\t")
}

// TypeDetails renders the request-subset type declaration list: same
// rendering as TypeAttributes but without the identifier field.
func TypeDetails(props entity.PropertySet) string {
	entries := make([]string, 0, len(props))
	for _, f := range props {
		if f.IsIdentifier() {
			continue
		}
		entries = append(entries, fmt.Sprintf("%s: %s;", f.Name(), f.Language()))
	}
	return strings.Join(entries, "\n\t")
}

// ControllerAssignments renders the controller's request-body assignment
// list, identifier excluded.
func ControllerAssignments(props entity.PropertySet) string {
	entries := make([]string, 0, len(props))
	for _, f := range props {
		if f.IsIdentifier() {
			continue
		}
		entries = append(entries, fmt.Sprintf("%s: req.body.%s,", f.Name(), f.Name()))
	}
	return strings.Join(entries, "\n\t\t\t\t")
}
