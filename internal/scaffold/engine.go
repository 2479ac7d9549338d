package scaffold

import (
	"strings"

	"github.com/example/blueprint/internal/entity"
)

// Placeholder tokens recognized in templates. Substitution is literal and
// all-occurrences; tokens a template does not contain are simply skipped, and
// tokens the engine does not know stay verbatim in the output. Templates are
// trusted input and are never validated.
const (
	TokenNameUpper       = "{NAME_UPPER}"
	TokenNameUpperPlural = "{NAME_UPPER_PLURAL}"
	TokenNameLower       = "{NAME_LOWER}"
	TokenNameLowerPlural = "{NAME_LOWER_PLURAL}"

	TokenModelProperties   = "{DYNAMIC_PROPERTIES}"
	TokenAddAssignments    = "{DYNAMIC_ADD_PROPERTIES}"
	TokenUpdateAssignments = "{DYNAMIC_UPDATE_PROPERTIES}"
	TokenTypeAttributes    = "{DYNAMIC_PROPERTIES_ATTRIBUTES}"
	// TokenDetails carries the type-detail list in the types helper shape and
	// the request-body assignment list in the controller shape; the meaning is
	// fixed per shape, not per token.
	TokenDetails = "{DYNAMIC_PROPERTIES_DETAILS}"
)

// Render substitutes the four entity-name tokens and the given fragment
// placeholders into template text. fragments maps placeholder token to the
// rendered fragment for the shape being produced.
func Render(templateText string, name entity.Name, fragments map[string]string) string {
	out := templateText
	out = strings.ReplaceAll(out, TokenNameUpper, name.Singular)
	out = strings.ReplaceAll(out, TokenNameUpperPlural, name.Plural)
	out = strings.ReplaceAll(out, TokenNameLower, name.Lower())
	out = strings.ReplaceAll(out, TokenNameLowerPlural, name.LowerPlural())

	for token, fragment := range fragments {
		out = strings.ReplaceAll(out, token, fragment)
	}

	return out
}
