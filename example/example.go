// Package example synthesizes representative example values from
// OpenAPI schemas.
//
// Generate resolves its input through package resolve and then applies
// a fixed priority order: an explicit example wins, then a default,
// then a value derived from the declared type, then the first branch
// of a composition keyword. Anything unresolvable or unrecognized
// yields nil rather than an error, so a malformed schema degrades one
// value instead of a whole rendered document. Synthesized objects are
// *orderedmap.Map[any], keeping properties in declaration order
// through later JSON or YAML marshaling.
package example

import (
	"sort"

	"github.com/oasdocs/oasdocs/openapi"
	"github.com/oasdocs/oasdocs/orderedmap"
	"github.com/oasdocs/oasdocs/resolve"
)

// MaxDepth bounds synthesis recursion. Cyclic schemas are caught by an
// on-path set; the depth cap additionally stops degenerate deep
// nesting.
const MaxDepth = 100

// Fixed samples for common string formats. Stable values keep
// generated documentation and snippets reproducible across runs.
const (
	sampleDate     = "2024-01-15"
	sampleDateTime = "2024-01-15T09:30:00Z"
	sampleEmail    = "user@example.com"
	sampleUUID     = "123e4567-e89b-12d3-a456-426614174000"
	sampleURI      = "https://example.com"
)

// Generate produces an example value for schema, resolving references
// against doc. The result is a JSON-shaped value: string, number,
// bool, []any, or *orderedmap.Map[any]. A nil, unresolvable, or
// empty schema yields nil.
func Generate(doc *openapi.Document, schema *openapi.Schema) any {
	s := &synthesizer{doc: doc, onPath: make(map[*openapi.Schema]bool)}
	return s.value(schema, 0)
}

// synthesizer carries the state of one Generate call. onPath tracks
// the schemas on the current recursion path so that a self-referential
// schema terminates with a nil leaf instead of recursing forever.
type synthesizer struct {
	doc    *openapi.Document
	onPath map[*openapi.Schema]bool
}

func (s *synthesizer) value(node *openapi.Schema, depth int) any {
	target := resolve.Schema(s.doc, node)
	if target == nil {
		return nil
	}
	if depth > MaxDepth {
		return nil
	}
	if s.onPath[target] {
		return nil
	}
	s.onPath[target] = true
	defer delete(s.onPath, target)

	// Author intent wins over anything derived.
	if target.Example != nil {
		return target.Example
	}
	if target.Default != nil {
		return target.Default
	}

	switch target.TypeName() {
	case "string":
		return stringSample(target)
	case "number", "integer":
		if len(target.Enum) > 0 {
			return target.Enum[0]
		}
		return 0
	case "boolean":
		return true
	case "array":
		if item := s.value(target.Items, depth+1); item != nil {
			return []any{item}
		}
		return []any{}
	case "object":
		return s.objectValue(target, depth)
	}

	// No recognized type: fall back to composition keywords.
	if len(target.OneOf) > 0 {
		return s.value(target.OneOf[0], depth+1)
	}
	if len(target.AnyOf) > 0 {
		return s.value(target.AnyOf[0], depth+1)
	}
	if len(target.AllOf) > 0 {
		return s.mergeAllOf(target.AllOf, depth)
	}
	return nil
}

func stringSample(target *openapi.Schema) any {
	if len(target.Enum) > 0 {
		return target.Enum[0]
	}
	switch target.Format {
	case "date":
		return sampleDate
	case "date-time":
		return sampleDateTime
	case "email":
		return sampleEmail
	case "uuid":
		return sampleUUID
	case "uri":
		return sampleURI
	}
	return "string"
}

// objectValue builds a mapping from the schema's properties in
// declaration order. A property whose synthesis yields nil is still
// included, with a nil value, so cyclic or broken properties stay
// visible in the output.
func (s *synthesizer) objectValue(target *openapi.Schema, depth int) *orderedmap.Map[any] {
	out := orderedmap.New[any]()
	if target.Properties == nil {
		return out
	}
	for name, prop := range target.Properties.All() {
		out.Set(name, s.value(prop, depth+1))
	}
	return out
}

// mergeAllOf synthesizes every branch and shallow-merges the mapping
// results left to right; later branches overwrite earlier keys.
// Branches that synthesize to something other than a mapping are
// skipped.
func (s *synthesizer) mergeAllOf(branches []*openapi.Schema, depth int) *orderedmap.Map[any] {
	out := orderedmap.New[any]()
	for _, branch := range branches {
		switch merged := s.value(branch, depth+1).(type) {
		case *orderedmap.Map[any]:
			for key, val := range merged.All() {
				out.Set(key, val)
			}
		case map[string]any:
			// Explicit examples decode as plain maps with no
			// declared order; sort for stable output.
			keys := make([]string, 0, len(merged))
			for key := range merged {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				out.Set(key, merged[key])
			}
		}
	}
	return out
}
