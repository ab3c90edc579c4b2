// Package outline flattens a document's path map into ordered endpoint
// and tag views.
//
// Both views are pure derivations: they are recomputed from one
// immutable document and hold no state of their own, so a reload
// replaces them wholesale and readers never see a half-updated
// listing.
package outline

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oasdocs/oasdocs/internal/httputil"
	"github.com/oasdocs/oasdocs/openapi"
)

// UntaggedName is the sentinel tag grouping operations that declare no
// tags of their own.
const UntaggedName = "Untagged"

// Endpoint is a denormalized view of one method+path pair.
type Endpoint struct {
	// ID identifies the endpoint stably across reloads of the same
	// document. See EndpointID for the derivation.
	ID     string
	Method string
	Path   string

	Operation *openapi.Operation

	// PathItemParameters are the parameters declared on the path item,
	// shared by every operation on the path. Use Parameters for the
	// merged view.
	PathItemParameters []*openapi.Parameter
}

// Endpoints flattens doc's path map into one entry per defined
// operation. Order is deterministic: paths in declaration order, then
// methods in canonical order within each path.
func Endpoints(doc *openapi.Document) []Endpoint {
	if doc == nil {
		return nil
	}
	var endpoints []Endpoint
	for path, item := range doc.Paths.All() {
		if item == nil {
			continue
		}
		for _, method := range httputil.CanonicalMethods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			endpoints = append(endpoints, Endpoint{
				ID:                 EndpointID(method, path),
				Method:             method,
				Path:               path,
				Operation:          op,
				PathItemParameters: item.Parameters,
			})
		}
	}
	return endpoints
}

// EndpointID derives the identifier for a method+path pair: the
// lowercase method, a hyphen, and the path, with every run of
// characters outside [A-Za-z0-9] collapsed to a single hyphen and any
// trailing hyphen dropped. GET /pets/{petId} becomes "get-pets-petId".
func EndpointID(method, path string) string {
	var b strings.Builder
	b.Grow(len(method) + len(path) + 1)
	pending := false
	for _, r := range strings.ToLower(method) + "-" + path {
		alnum := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
		if !alnum {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('-')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

// Parameters merges path-item and operation parameters. Path-item
// parameters come first in declaration order; an operation parameter
// with the same name and location replaces the path-item one in place,
// and the rest are appended. Reference stubs are merged as-is, their
// declared fields are what is matched on.
func (e Endpoint) Parameters() []*openapi.Parameter {
	var opParams []*openapi.Parameter
	if e.Operation != nil {
		opParams = e.Operation.Parameters
	}
	if len(e.PathItemParameters) == 0 {
		return opParams
	}

	merged := make([]*openapi.Parameter, len(e.PathItemParameters), len(e.PathItemParameters)+len(opParams))
	copy(merged, e.PathItemParameters)
	for _, p := range opParams {
		if p == nil {
			continue
		}
		replaced := false
		for i, existing := range merged {
			if existing != nil && existing.Name == p.Name && existing.In == p.In {
				merged[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, p)
		}
	}
	return merged
}

// DisplayName returns a human-readable label: the operation summary
// when present, else the operation id, else the path with its segments
// title-cased ("/store/order" becomes "Store Order"). Existing
// interior casing is kept, so a {petId} segment reads "PetId".
func (e Endpoint) DisplayName() string {
	if e.Operation != nil {
		if e.Operation.Summary != "" {
			return e.Operation.Summary
		}
		if e.Operation.OperationID != "" {
			return e.Operation.OperationID
		}
	}
	titleCaser := cases.Title(language.English, cases.NoLower)
	segments := strings.FieldsFunc(e.Path, func(r rune) bool { return r == '/' })
	for i, segment := range segments {
		segments[i] = titleCaser.String(strings.Trim(segment, "{}"))
	}
	name := strings.Join(segments, " ")
	if name == "" {
		return e.Path
	}
	return name
}

// TagGroup is one tag together with the endpoints carrying it, in
// extraction order.
type TagGroup struct {
	Name        string
	Description string
	Endpoints   []Endpoint
}

// ByTag buckets endpoints under their operations' declared tags. An
// operation with no tags lands under UntaggedName; one with several
// tags appears once per tag. Groups are ordered by first encounter
// while scanning endpoints, and descriptions come from the document's
// top-level tag list, empty when a tag is not declared there.
func ByTag(doc *openapi.Document, endpoints []Endpoint) []TagGroup {
	var groups []TagGroup
	index := make(map[string]int)
	for _, ep := range endpoints {
		var tags []string
		if ep.Operation != nil {
			tags = ep.Operation.Tags
		}
		if len(tags) == 0 {
			tags = []string{UntaggedName}
		}
		for _, name := range tags {
			i, ok := index[name]
			if !ok {
				i = len(groups)
				index[name] = i
				groups = append(groups, TagGroup{
					Name:        name,
					Description: tagDescription(doc, name),
				})
			}
			groups[i].Endpoints = append(groups[i].Endpoints, ep)
		}
	}
	return groups
}

func tagDescription(doc *openapi.Document, name string) string {
	if doc == nil {
		return ""
	}
	for _, tag := range doc.Tags {
		if tag != nil && tag.Name == name {
			return tag.Description
		}
	}
	return ""
}
