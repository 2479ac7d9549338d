package patch

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/blueprint/internal/entity"
)

var widget = entity.Name{Singular: "Widget", Plural: "Widgets"}

const aggregator = `import { Sequelize } from "sequelize-typescript";
import { Post } from "@infrastructure/models/postModel";

export const sequelize = new Sequelize({
	models: [Post],
});
`

func TestApplyAddsImportAndEntry(t *testing.T) {
	got, err := Apply(aggregator, widget, Sequelize{})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	importLine := `import { Widget } from "@infrastructure/models/widgetModel";`
	if !strings.HasPrefix(got, importLine+"\n") {
		t.Errorf("import line not prepended:\n%s", got)
	}
	if n := strings.Count(got, importLine); n != 1 {
		t.Errorf("got %d Widget import lines, want 1", n)
	}
	if !strings.Contains(got, "models: [Post, Widget]") {
		t.Errorf("registration list not extended in order:\n%s", got)
	}
	// unrelated content untouched
	if !strings.Contains(got, `import { Sequelize } from "sequelize-typescript";`) {
		t.Errorf("unrelated import disturbed:\n%s", got)
	}
}

func TestApplyEmptyRegistrationList(t *testing.T) {
	text := "export const sequelize = new Sequelize({\n\tmodels: [],\n});\n"
	got, err := Apply(text, widget, Sequelize{})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !strings.Contains(got, "models: [Widget]") {
		t.Errorf("Widget not sole entry:\n%s", got)
	}
}

func TestApplyIdempotent(t *testing.T) {
	once, err := Apply(aggregator, widget, Sequelize{})
	if err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	twice, err := Apply(once, widget, Sequelize{})
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if once != twice {
		t.Errorf("second application changed text:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

func TestApplyImportOnlyMissing(t *testing.T) {
	// entry registered but import dropped: only the import step fires
	text := "export const sequelize = new Sequelize({\n\tmodels: [Widget],\n});\n"
	got, err := Apply(text, widget, Sequelize{})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !strings.Contains(got, "models: [Widget]") || strings.Contains(got, "Widget, Widget") {
		t.Errorf("registration list changed:\n%s", got)
	}
	if !strings.HasPrefix(got, `import { Widget } from "@infrastructure/models/widgetModel";`) {
		t.Errorf("import line missing:\n%s", got)
	}
}

func TestApplyNoRegistrationBlock(t *testing.T) {
	text := "export const nothing = true;\n"
	_, err := Apply(text, widget, Sequelize{})
	if !errors.Is(err, ErrRegistrationBlockNotFound) {
		t.Errorf("Apply() error = %v, want ErrRegistrationBlockNotFound", err)
	}
}

func TestSequelizeFindBlock(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		entries []string
		wantErr bool
	}{
		{"empty list", "models: []", nil, false},
		{"single entry", "models: [Post]", []string{"Post"}, false},
		{"multiple entries", "models: [Post, User, Tag]", []string{"Post", "User", "Tag"}, false},
		{"spaced brackets", "models: [ Post ]", []string{"Post"}, false},
		{"no list", "model: Post", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, entries, err := Sequelize{}.FindBlock(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindBlock() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(entries) != len(tt.entries) {
				t.Fatalf("FindBlock() entries = %v, want %v", entries, tt.entries)
			}
			for i := range tt.entries {
				if entries[i] != tt.entries[i] {
					t.Errorf("entries[%d] = %q, want %q", i, entries[i], tt.entries[i])
				}
			}
		})
	}
}
