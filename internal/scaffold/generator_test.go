package scaffold

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/blueprint/internal/entity"
)

// stubSource serves the same template text for every shape.
type stubSource struct {
	text string
	err  error
}

func (s stubSource) Template(Shape) (string, error) {
	return s.text, s.err
}

func TestGenerateEntity(t *testing.T) {
	name := entity.Name{Singular: "Post", Plural: "Posts"}
	gen := NewGenerator(stubSource{text: "// {NAME_UPPER}\n"})

	result, err := gen.GenerateEntity(name, sampleProps(t))
	if err != nil {
		t.Fatalf("GenerateEntity() error = %v", err)
	}

	// one create per shape plus the aggregator patch
	if len(result.Files) != len(Shapes)+1 {
		t.Fatalf("got %d files, want %d", len(result.Files), len(Shapes)+1)
	}

	wantPaths := map[string]string{
		"infrastructure/models/postModel.ts":            "create",
		"core/interfaces/IPostRepository.ts":            "create",
		"infrastructure/repositories/postRepository.ts": "create",
		"core/use_cases/Post/AddPost.ts":                "create",
		"core/use_cases/Post/GetPosts.ts":               "create",
		"core/use_cases/Post/DeletePost.ts":             "create",
		"core/use_cases/Post/UpdatePost.ts":             "create",
		"core/utils/Post/Request.ts":                    "create",
		"core/utils/Post/types.ts":                      "create",
		"presentation/controllers/postControllers.ts":   "create",
		"infrastructure/routes/postRoutes.ts":           "create",
		"infrastructure/config/sequelize.ts":            "patch",
	}
	for _, f := range result.Files {
		op, ok := wantPaths[f.Path]
		if !ok {
			t.Errorf("unexpected output path %q", f.Path)
			continue
		}
		if f.Operation != op {
			t.Errorf("%s operation = %q, want %q", f.Path, f.Operation, op)
		}
		delete(wantPaths, f.Path)
	}
	for path := range wantPaths {
		t.Errorf("missing output %q", path)
	}

	if len(result.Dirs) == 0 {
		t.Error("expected directory skeleton in result")
	}
}

func TestGenerateEntityRendersFragments(t *testing.T) {
	name := entity.Name{Singular: "Post", Plural: "Posts"}
	gen := NewGenerator(stubSource{text: "{DYNAMIC_ADD_PROPERTIES}"})

	result, err := gen.GenerateEntity(name, sampleProps(t))
	if err != nil {
		t.Fatalf("GenerateEntity() error = %v", err)
	}

	for _, f := range result.Files {
		if f.Path != "core/use_cases/Post/AddPost.ts" {
			continue
		}
		if !strings.Contains(f.Content, "content: request.content,") {
			t.Errorf("add use case content = %q, want add assignments substituted", f.Content)
		}
		if strings.Contains(f.Content, "{DYNAMIC_ADD_PROPERTIES}") {
			t.Errorf("add use case still contains its placeholder: %q", f.Content)
		}
	}
}

func TestGenerateEntityTemplateError(t *testing.T) {
	wantErr := errors.New("template missing")
	gen := NewGenerator(stubSource{err: wantErr})

	_, err := gen.GenerateEntity(entity.Name{Singular: "Post", Plural: "Posts"}, sampleProps(t))
	if !errors.Is(err, wantErr) {
		t.Errorf("GenerateEntity() error = %v, want wrapped %v", err, wantErr)
	}
}
