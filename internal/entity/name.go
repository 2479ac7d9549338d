package entity

import (
	"errors"
	"strings"
)

// ErrEmptyEntityName is returned when either name token is blank.
var ErrEmptyEntityName = errors.New("entity name and plural are required")

// Name holds the entity's singular and plural identifier tokens, case
// preserved as declared. The plural form is supplied by the caller; no
// inflection is performed anywhere.
type Name struct {
	Singular string
	Plural   string
}

// NewName validates both tokens.
func NewName(singular, plural string) (Name, error) {
	if strings.TrimSpace(singular) == "" || strings.TrimSpace(plural) == "" {
		return Name{}, ErrEmptyEntityName
	}
	return Name{Singular: singular, Plural: plural}, nil
}

// Lower returns the case-folded singular form.
func (n Name) Lower() string { return strings.ToLower(n.Singular) }

// LowerPlural returns the case-folded plural form.
func (n Name) LowerPlural() string { return strings.ToLower(n.Plural) }
