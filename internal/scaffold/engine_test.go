package scaffold

import (
	"testing"

	"github.com/example/blueprint/internal/entity"
)

func TestRenderNameTokens(t *testing.T) {
	name := entity.Name{Singular: "Widget", Plural: "Widgets"}
	tmpl := "export class {NAME_UPPER} {}\n" +
		"// table {NAME_LOWER_PLURAL}, one {NAME_LOWER}, many {NAME_UPPER_PLURAL}\n"

	got := Render(tmpl, name, nil)
	want := "export class Widget {}\n" +
		"// table widgets, one widget, many Widgets\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderAllOccurrences(t *testing.T) {
	name := entity.Name{Singular: "Widget", Plural: "Widgets"}
	got := Render("{NAME_LOWER} {NAME_LOWER} {NAME_LOWER}", name, nil)
	if got != "widget widget widget" {
		t.Errorf("Render() = %q, want every occurrence substituted", got)
	}
}

func TestRenderFragments(t *testing.T) {
	name := entity.Name{Singular: "Widget", Plural: "Widgets"}
	fragments := map[string]string{TokenAddAssignments: "content: request.content,"}

	got := Render("create({\n\t\t\t{DYNAMIC_ADD_PROPERTIES}\n});", name, fragments)
	want := "create({\n\t\t\tcontent: request.content,\n});"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// A template with no recognized placeholders passes through unchanged.
func TestRenderRoundTrip(t *testing.T) {
	name := entity.Name{Singular: "Widget", Plural: "Widgets"}
	tmpl := "import { Router } from \"express\";\nconst x = 1;\n"
	if got := Render(tmpl, name, nil); got != tmpl {
		t.Errorf("Render() = %q, want input unchanged", got)
	}
}

// Unknown placeholders are left verbatim; templates are trusted input.
func TestRenderLeavesUnknownPlaceholders(t *testing.T) {
	name := entity.Name{Singular: "Widget", Plural: "Widgets"}
	tmpl := "{SOMETHING_ELSE} {NAME_UPPER}"
	if got := Render(tmpl, name, nil); got != "{SOMETHING_ELSE} Widget" {
		t.Errorf("Render() = %q, want unknown placeholder preserved", got)
	}
}
