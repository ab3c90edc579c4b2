// Package resolve follows $ref references inside a loaded document.
//
// All helpers share one contract: a nil or unresolvable input yields
// nil, a node without a reference is returned as-is, and a node with a
// document-local reference (prefix "#/") is replaced by its target.
// External file and URL references yield nil. If a target itself
// carries a reference the chain is followed; cycles and over-deep
// chains terminate as nil. Resolution never mutates the document and
// never returns an error: for documentation purposes an unresolvable
// reference is simply an absent node.
package resolve

import (
	"strconv"
	"strings"

	"github.com/oasdocs/oasdocs/openapi"
	"github.com/oasdocs/oasdocs/orderedmap"
)

// MaxRefDepth is the maximum number of reference hops a single
// resolution may take. Cycles are caught by a visited set; the depth
// cap additionally stops degenerate linear chains.
const MaxRefDepth = 100

// Schema resolves a schema node against doc. A node without a Ref is
// returned unchanged; a Ref that cannot be resolved to a schema yields
// nil.
func Schema(doc *openapi.Document, node *openapi.Schema) *openapi.Schema {
	if node == nil {
		return nil
	}
	if node.Ref == "" {
		return node
	}
	target, _ := follow(doc, node).(*openapi.Schema)
	return target
}

// Parameter resolves a parameter node against doc.
func Parameter(doc *openapi.Document, node *openapi.Parameter) *openapi.Parameter {
	if node == nil {
		return nil
	}
	if node.Ref == "" {
		return node
	}
	target, _ := follow(doc, node).(*openapi.Parameter)
	return target
}

// Response resolves a response node against doc.
func Response(doc *openapi.Document, node *openapi.Response) *openapi.Response {
	if node == nil {
		return nil
	}
	if node.Ref == "" {
		return node
	}
	target, _ := follow(doc, node).(*openapi.Response)
	return target
}

// RequestBody resolves a request body node against doc.
func RequestBody(doc *openapi.Document, node *openapi.RequestBody) *openapi.RequestBody {
	if node == nil {
		return nil
	}
	if node.Ref == "" {
		return node
	}
	target, _ := follow(doc, node).(*openapi.RequestBody)
	return target
}

// MediaTypeSchema resolves the schema attached to a media type.
func MediaTypeSchema(doc *openapi.Document, mt *openapi.MediaType) *openapi.Schema {
	if mt == nil {
		return nil
	}
	return Schema(doc, mt.Schema)
}

// follow chases a reference chain starting at node until it reaches a
// node without a reference, a dead end, or the depth cap.
func follow(doc *openapi.Document, node any) any {
	visited := make(map[string]bool)
	for depth := 0; depth < MaxRefDepth; depth++ {
		ref := refOf(node)
		if ref == "" {
			return node
		}
		if !strings.HasPrefix(ref, "#/") {
			return nil
		}
		if visited[ref] {
			return nil
		}
		visited[ref] = true

		node = lookup(doc, ref)
		if node == nil {
			return nil
		}
	}
	return nil
}

// refOf extracts the reference string from any node type that can carry one.
func refOf(node any) string {
	switch n := node.(type) {
	case *openapi.Schema:
		if n != nil {
			return n.Ref
		}
	case *openapi.Parameter:
		if n != nil {
			return n.Ref
		}
	case *openapi.Response:
		if n != nil {
			return n.Ref
		}
	case *openapi.RequestBody:
		if n != nil {
			return n.Ref
		}
	case *openapi.Example:
		if n != nil {
			return n.Ref
		}
	case *openapi.Header:
		if n != nil {
			return n.Ref
		}
	case *openapi.PathItem:
		if n != nil {
			return n.Ref
		}
	}
	return ""
}

// lookup walks a JSON pointer from the document root over the typed
// tree. Any missing step returns nil.
func lookup(doc *openapi.Document, ref string) any {
	pointer := strings.TrimPrefix(ref, "#")
	if pointer == "" || pointer == "/" {
		return orNil(doc)
	}

	var node any = doc
	for _, token := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		node = child(node, unescapeJSONPointer(token))
		if node == nil {
			return nil
		}
	}
	return node
}

// unescapeJSONPointer unescapes JSON Pointer tokens
// Per RFC 6901, ~1 becomes / and ~0 becomes ~ (in that order)
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// orNil converts a typed nil pointer into an untyped nil so callers can
// test walk results with a plain == nil.
func orNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}

// mapValue looks up a key in a string-keyed map of pointers.
func mapValue[T any](m map[string]*T, key string) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return nil
}

// sliceIndex interprets name as an array index per RFC 6901.
func sliceIndex[T any](s []*T, name string) any {
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 || i >= len(s) {
		return nil
	}
	return orNil(s[i])
}

// child returns the named or indexed member of a typed document node.
// Names follow the wire form of the document (requestBody, allOf, ...),
// so a JSON pointer reads the same against the typed tree as it would
// against the raw one. Scalar fields are not addressable; a pointer
// into one dead-ends as nil.
func child(node any, name string) any {
	switch n := node.(type) {
	case *openapi.Document:
		if n == nil {
			return nil
		}
		switch name {
		case "paths":
			return orNil(n.Paths)
		case "components":
			return orNil(n.Components)
		case "servers":
			return n.Servers
		case "tags":
			return n.Tags
		case "externalDocs":
			return orNil(n.ExternalDocs)
		}

	case *openapi.Components:
		if n == nil {
			return nil
		}
		switch name {
		case "schemas":
			return orNil(n.Schemas)
		case "responses":
			return n.Responses
		case "parameters":
			return n.Parameters
		case "examples":
			return n.Examples
		case "requestBodies":
			return n.RequestBodies
		case "headers":
			return n.Headers
		case "securitySchemes":
			return n.SecuritySchemes
		}

	case *openapi.PathItem:
		if n == nil {
			return nil
		}
		switch name {
		case "get", "put", "post", "delete", "options", "head", "patch":
			return orNil(n.Operation(name))
		case "parameters":
			return n.Parameters
		case "servers":
			return n.Servers
		}

	case *openapi.Operation:
		if n == nil {
			return nil
		}
		switch name {
		case "parameters":
			return n.Parameters
		case "requestBody":
			return orNil(n.RequestBody)
		case "responses":
			return orNil(n.Responses)
		case "servers":
			return n.Servers
		case "externalDocs":
			return orNil(n.ExternalDocs)
		}

	case *openapi.Responses:
		if n == nil {
			return nil
		}
		if name == "default" {
			return orNil(n.Default)
		}
		return orNil(n.Codes.Value(name))

	case *openapi.Response:
		if n == nil {
			return nil
		}
		switch name {
		case "headers":
			return n.Headers
		case "content":
			return n.Content
		}

	case *openapi.RequestBody:
		if n == nil {
			return nil
		}
		if name == "content" {
			return n.Content
		}

	case *openapi.MediaType:
		if n == nil {
			return nil
		}
		switch name {
		case "schema":
			return orNil(n.Schema)
		case "examples":
			return n.Examples
		}

	case *openapi.Parameter:
		if n == nil {
			return nil
		}
		switch name {
		case "schema":
			return orNil(n.Schema)
		case "content":
			return n.Content
		case "examples":
			return n.Examples
		}

	case *openapi.Header:
		if n == nil {
			return nil
		}
		switch name {
		case "schema":
			return orNil(n.Schema)
		case "examples":
			return n.Examples
		}

	case *openapi.Schema:
		if n == nil {
			return nil
		}
		switch name {
		case "properties":
			return orNil(n.Properties)
		case "items":
			return orNil(n.Items)
		case "allOf":
			return n.AllOf
		case "anyOf":
			return n.AnyOf
		case "oneOf":
			return n.OneOf
		case "additionalProperties":
			return n.AdditionalProperties
		}

	case *orderedmap.Map[*openapi.Schema]:
		return orNil(n.Value(name))

	case *orderedmap.Map[*openapi.PathItem]:
		return orNil(n.Value(name))

	case map[string]*openapi.Response:
		return mapValue(n, name)

	case map[string]*openapi.Parameter:
		return mapValue(n, name)

	case map[string]*openapi.Example:
		return mapValue(n, name)

	case map[string]*openapi.RequestBody:
		return mapValue(n, name)

	case map[string]*openapi.Header:
		return mapValue(n, name)

	case map[string]*openapi.SecurityScheme:
		return mapValue(n, name)

	case map[string]*openapi.MediaType:
		return mapValue(n, name)

	case []*openapi.Schema:
		return sliceIndex(n, name)

	case []*openapi.Parameter:
		return sliceIndex(n, name)

	case []*openapi.Server:
		return sliceIndex(n, name)

	case []*openapi.Tag:
		return sliceIndex(n, name)

	// Extension values and untyped fields decode as plain maps and
	// slices; walk them the same way raw documents are walked.
	case map[string]any:
		if v, ok := n[name]; ok && v != nil {
			return v
		}

	case []any:
		i, err := strconv.Atoi(name)
		if err == nil && i >= 0 && i < len(n) {
			return n[i]
		}
	}

	return nil
}
