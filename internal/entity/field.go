// Package entity contains the field metadata model for scaffolded entities.
// Validation happens at construction; a Field that exists is a valid Field.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failures. Construction-time only; a constructed Field never
// carries an invalid value.
var (
	ErrEmptyName          = errors.New("field name cannot be empty")
	ErrUnknownStorageType = errors.New("unknown storage type")
	ErrUnknownLanguage    = errors.New("unknown language type")
	ErrUnknownAttribute   = errors.New("unknown attribute")
)

// StorageType is a column type in the persistence layer.
type StorageType string

const (
	Integer  StorageType = "INTEGER"
	BigInt   StorageType = "BIGINT"
	Float    StorageType = "FLOAT"
	Real     StorageType = "REAL"
	Double   StorageType = "DOUBLE"
	Decimal  StorageType = "DECIMAL"
	String   StorageType = "STRING"
	Text     StorageType = "TEXT"
	Boolean  StorageType = "BOOLEAN"
	Date     StorageType = "DATE"
	DateOnly StorageType = "DATEONLY"
	Time     StorageType = "TIME"
	UUID     StorageType = "UUID"
	JSON     StorageType = "JSON"
)

var storageTypes = map[StorageType]bool{
	Integer: true, BigInt: true, Float: true, Real: true,
	Double: true, Decimal: true, String: true, Text: true,
	Boolean: true, Date: true, DateOnly: true, Time: true,
	UUID: true, JSON: true,
}

// ParseStorageType validates a raw storage type name.
func ParseStorageType(s string) (StorageType, error) {
	st := StorageType(s)
	if !storageTypes[st] {
		return "", fmt.Errorf("%w: %q", ErrUnknownStorageType, s)
	}
	return st, nil
}

// LanguageType is a primitive type name in the generated target language.
type LanguageType string

const (
	LangNumber    LanguageType = "number"
	LangString    LanguageType = "string"
	LangBoolean   LanguageType = "boolean"
	LangFloat     LanguageType = "float"
	LangDouble    LanguageType = "double"
	LangDate      LanguageType = "Date"
	LangObject    LanguageType = "object"
	LangFunction  LanguageType = "function"
	LangUndefined LanguageType = "undefined"
	LangSymbol    LanguageType = "symbol"
	LangNull      LanguageType = "null"
)

var languageTypes = map[LanguageType]bool{
	LangNumber: true, LangString: true, LangBoolean: true,
	LangFloat: true, LangDouble: true, LangDate: true,
	LangObject: true, LangFunction: true, LangUndefined: true,
	LangSymbol: true, LangNull: true,
}

// ParseLanguageType validates a raw language type name.
func ParseLanguageType(s string) (LanguageType, error) {
	lt := LanguageType(s)
	if !languageTypes[lt] {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return lt, nil
}

// Attribute is a decorator tag attached to a field in the generated model.
type Attribute string

const (
	PrimaryKey    Attribute = "@PrimaryKey"
	AutoIncrement Attribute = "@AutoIncrement"
	Unique        Attribute = "@Unique"
	Index         Attribute = "@Index"
	CreatedAt     Attribute = "@CreatedAt"
	UpdatedAt     Attribute = "@UpdatedAt"
	DeletedAt     Attribute = "@DeletedAt"
	ForeignKey    Attribute = "@ForeignKey"
	BelongsTo     Attribute = "@BelongsTo"
	HasMany       Attribute = "@HasMany"
	HasOne        Attribute = "@HasOne"
	DefaultScope  Attribute = "@DefaultScope"
	Scopes        Attribute = "@Scopes"
	AllowNull     Attribute = "@AllowNull"
	Comment       Attribute = "@Comment"
	Default       Attribute = "@Default"
	Length        Attribute = "@Length"
	References    Attribute = "@References"
)

var attributes = map[Attribute]bool{
	PrimaryKey: true, AutoIncrement: true, Unique: true, Index: true,
	CreatedAt: true, UpdatedAt: true, DeletedAt: true, ForeignKey: true,
	BelongsTo: true, HasMany: true, HasOne: true, DefaultScope: true,
	Scopes: true, AllowNull: true, Comment: true, Default: true,
	Length: true, References: true,
}

// ParseAttribute validates a raw attribute tag.
func ParseAttribute(s string) (Attribute, error) {
	a := Attribute(s)
	if !attributes[a] {
		return "", fmt.Errorf("%w: %s", ErrUnknownAttribute, s)
	}
	return a, nil
}

// identifierName is the reserved field name assumed to be assigned by the
// persistence layer. Fields with this name are excluded from every
// request-shaped fragment regardless of their attributes.
const identifierName = "id"

// Field is one validated, immutable property of an entity.
type Field struct {
	attrs      []Attribute
	name       string
	storage    StorageType
	language   LanguageType
	identifier bool
}

// NewField validates raw field inputs and constructs a Field. The attribute
// order of the input is preserved and determines rendering order. The first
// unknown attribute tag is named in the returned error.
func NewField(attrs []string, name, storageType, languageType string) (Field, error) {
	if strings.TrimSpace(name) == "" {
		return Field{}, ErrEmptyName
	}

	storage, err := ParseStorageType(storageType)
	if err != nil {
		return Field{}, err
	}

	language, err := ParseLanguageType(languageType)
	if err != nil {
		return Field{}, err
	}

	parsed := make([]Attribute, 0, len(attrs))
	for _, raw := range attrs {
		attr, err := ParseAttribute(raw)
		if err != nil {
			return Field{}, err
		}
		parsed = append(parsed, attr)
	}

	return Field{
		attrs:      parsed,
		name:       name,
		storage:    storage,
		language:   language,
		identifier: name == identifierName,
	}, nil
}

// Name returns the field name exactly as declared.
func (f Field) Name() string { return f.name }

// Storage returns the persistence-layer column type.
func (f Field) Storage() StorageType { return f.storage }

// Language returns the target-language type.
func (f Field) Language() LanguageType { return f.language }

// Attributes returns the field's attribute tags in declaration order.
func (f Field) Attributes() []Attribute {
	out := make([]Attribute, len(f.attrs))
	copy(out, f.attrs)
	return out
}

// IsIdentifier reports whether this is the reserved identifier field.
// Identifier fields are supplied by the persistence layer and never appear
// in caller-input fragments.
func (f Field) IsIdentifier() bool { return f.identifier }

// PropertySet is the ordered field list of one entity. Declaration order is
// rendering order in every derived fragment. Duplicate names are not
// rejected; they render verbatim.
type PropertySet []Field
