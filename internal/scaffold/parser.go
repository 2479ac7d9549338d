package scaffold

import (
	"fmt"
	"strings"

	"github.com/example/blueprint/internal/entity"
)

// ParseFields parses the --fields DSL into a PropertySet.
// Format: "name:STORAGE:lang[:@Attr|@Attr...]", comma separated.
// Example: "id:INTEGER:number:@PrimaryKey|@AutoIncrement,content:STRING:string"
func ParseFields(fieldsStr string) (entity.PropertySet, error) {
	if fieldsStr == "" {
		return nil, nil
	}

	var props entity.PropertySet
	for _, part := range strings.Split(fieldsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field, err := parseField(part)
		if err != nil {
			return nil, err
		}
		props = append(props, field)
	}

	return props, nil
}

// parseField parses a single field specification.
func parseField(spec string) (entity.Field, error) {
	parts := strings.SplitN(spec, ":", 4)
	if len(parts) < 3 {
		return entity.Field{}, fmt.Errorf("invalid field spec %q: expected 'name:STORAGE:lang[:@Attr|...]'", spec)
	}

	name := strings.TrimSpace(parts[0])
	storage := strings.TrimSpace(parts[1])
	lang := strings.TrimSpace(parts[2])

	var attrs []string
	if len(parts) == 4 {
		for _, tag := range strings.Split(parts[3], "|") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			attrs = append(attrs, tag)
		}
	}

	field, err := entity.NewField(attrs, name, storage, lang)
	if err != nil {
		return entity.Field{}, fmt.Errorf("invalid field spec %q: %w", spec, err)
	}
	return field, nil
}
