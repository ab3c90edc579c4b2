package openapi

import (
	"github.com/oasdocs/oasdocs/orderedmap"
)

// Schema represents an OpenAPI schema object. The field set covers the
// keywords used for documentation and example synthesis; anything else
// lands in Extra.
//
// Type is any because OpenAPI 3.1 allows both a single string and an
// array of strings. Use TypeName to read it uniformly.
type Schema struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Type        any    `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`

	// Composition keywords
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`

	// Object keywords. Properties preserves declaration order so that
	// synthesized examples and rendered docs list fields the way the
	// document author wrote them.
	Properties           *orderedmap.Map[*Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string                 `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties any                      `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`

	// Array keywords
	Items       *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MinItems    *int    `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems    *int    `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	UniqueItems bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// String and number keywords
	Pattern   string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MinLength *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Minimum   *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum   *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`

	// Value keywords
	Enum     []any `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default  any   `yaml:"default,omitempty" json:"default,omitempty"`
	Example  any   `yaml:"example,omitempty" json:"example,omitempty"`
	Examples []any `yaml:"examples,omitempty" json:"examples,omitempty"`

	// Metadata
	Nullable   bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	ReadOnly   bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly  bool `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"`
	Deprecated bool `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// TypeName returns the schema's type as a single string. A 3.1 type
// array yields its first entry that is not "null"; an absent or
// malformed type yields "".
func (s *Schema) TypeName() string {
	if s == nil {
		return ""
	}
	switch t := s.Type.(type) {
	case string:
		return t
	case []any:
		for _, entry := range t {
			name, ok := entry.(string)
			if ok && name != "null" {
				return name
			}
		}
	case []string:
		for _, name := range t {
			if name != "null" {
				return name
			}
		}
	}
	return ""
}

// IsNullable reports whether the schema admits null, either through the
// 3.0 nullable flag or a "null" entry in a 3.1 type array.
func (s *Schema) IsNullable() bool {
	if s == nil {
		return false
	}
	if s.Nullable {
		return true
	}
	if t, ok := s.Type.([]any); ok {
		for _, entry := range t {
			if name, ok := entry.(string); ok && name == "null" {
				return true
			}
		}
	}
	return false
}
