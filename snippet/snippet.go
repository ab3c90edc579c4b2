// Package snippet renders ready-to-run request examples for
// endpoints.
//
// Every target shares one preprocessing step that builds a concrete
// request description (URL with substituted path parameters and an
// encoded query string, headers, an optional JSON body) from the
// endpoint's declarations; each renderer then emits that description
// in its own syntax. Rendering is pure text generation: nothing is
// executed and the document is never mutated.
package snippet

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/oasdocs/oasdocs/docerrors"
	"github.com/oasdocs/oasdocs/example"
	"github.com/oasdocs/oasdocs/internal/httputil"
	"github.com/oasdocs/oasdocs/openapi"
	"github.com/oasdocs/oasdocs/outline"
	"github.com/oasdocs/oasdocs/resolve"
)

// Target selects the calling convention a snippet is rendered in.
type Target string

const (
	TargetCurl       Target = "curl"
	TargetJavaScript Target = "javascript"
	TargetPython     Target = "python"
	TargetGo         Target = "go"
)

// renderFunc turns one prepared request into target syntax.
type renderFunc func(*request) string

// renderers dispatches Generate by target. Supporting a new target is
// one entry here plus its render function.
var renderers = map[Target]renderFunc{
	TargetCurl:       renderCurl,
	TargetJavaScript: renderJavaScript,
	TargetPython:     renderPython,
	TargetGo:         renderGo,
}

// Targets returns the supported targets in a stable order.
func Targets() []Target {
	return []Target{TargetCurl, TargetJavaScript, TargetPython, TargetGo}
}

// Options carries caller-supplied request context.
type Options struct {
	// BaseURL overrides the document's first server URL.
	BaseURL string
	// AuthToken, when non-empty, adds an Authorization: Bearer header.
	AuthToken string
	// Headers are merged into the request headers and may override the
	// default content type.
	Headers map[string]string
}

// Generate renders a request snippet for the endpoint in the given
// target convention. An unknown target is a ConfigError; everything
// else degrades (a missing example becomes a placeholder, a missing
// body is omitted) rather than failing.
func Generate(target Target, doc *openapi.Document, ep outline.Endpoint, opts Options) (string, error) {
	render, ok := renderers[target]
	if !ok {
		return "", &docerrors.ConfigError{
			Option:  "target",
			Value:   string(target),
			Message: fmt.Sprintf("unknown snippet target (supported: %s)", targetList()),
		}
	}
	return render(prepare(doc, ep, opts)), nil
}

func targetList() string {
	names := make([]string, len(Targets()))
	for i, t := range Targets() {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// header is one ordered request header.
type header struct {
	name  string
	value string
}

// request is the shared description every renderer consumes. body is
// the pretty-printed JSON form of bodyValue; both are empty when no
// body applies.
type request struct {
	method    string // lowercase
	url       string
	headers   []header
	body      string
	bodyValue any
}

// prepare builds the request description for an endpoint.
func prepare(doc *openapi.Document, ep outline.Endpoint, opts Options) *request {
	params := resolvedParameters(doc, ep)
	req := &request{
		method:  ep.Method,
		url:     baseURL(doc, opts) + substitutePath(doc, ep.Path, params) + queryString(doc, params),
		headers: requestHeaders(opts),
	}
	if httputil.AllowsRequestBody(ep.Method) {
		req.body, req.bodyValue = requestBody(doc, ep)
	}
	return req
}

// resolvedParameters resolves the endpoint's merged parameters,
// dropping any whose reference is broken.
func resolvedParameters(doc *openapi.Document, ep outline.Endpoint) []*openapi.Parameter {
	declared := ep.Parameters()
	params := make([]*openapi.Parameter, 0, len(declared))
	for _, p := range declared {
		if resolved := resolve.Parameter(doc, p); resolved != nil {
			params = append(params, resolved)
		}
	}
	return params
}

func baseURL(doc *openapi.Document, opts Options) string {
	base := opts.BaseURL
	if base == "" && doc != nil {
		for _, server := range doc.Servers {
			if server != nil && server.URL != "" {
				base = server.URL
				break
			}
		}
	}
	return strings.TrimSuffix(base, "/")
}

// paramValue returns the parameter's sample value: its literal
// example, else the schema's example, else the schema's default.
func paramValue(doc *openapi.Document, p *openapi.Parameter) (any, bool) {
	if p.Example != nil {
		return p.Example, true
	}
	if schema := resolve.Schema(doc, p.Schema); schema != nil {
		if schema.Example != nil {
			return schema.Example, true
		}
		if schema.Default != nil {
			return schema.Default, true
		}
	}
	return nil, false
}

// substitutePath fills every declared path parameter's {name} slot
// with its sample value, or with a <name> placeholder when the
// declaration carries no usable value. Slots without a matching
// declaration are left alone.
func substitutePath(doc *openapi.Document, path string, params []*openapi.Parameter) string {
	for _, p := range params {
		if p.In != openapi.ParamInPath || p.Name == "" {
			continue
		}
		slot := "{" + p.Name + "}"
		value, ok := paramValue(doc, p)
		if !ok {
			path = strings.ReplaceAll(path, slot, "<"+p.Name+">")
			continue
		}
		path = strings.ReplaceAll(path, slot, formatValue(value))
	}
	return path
}

// queryString encodes the query parameters that have a sample value.
// Parameters without one are omitted. The encoded form is sorted by
// key, so output is deterministic.
func queryString(doc *openapi.Document, params []*openapi.Parameter) string {
	values := url.Values{}
	for _, p := range params {
		if p.In != openapi.ParamInQuery || p.Name == "" {
			continue
		}
		if value, ok := paramValue(doc, p); ok {
			values.Add(p.Name, formatValue(value))
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// formatValue renders a sample value for use inside a URL. Strings
// pass through bare; everything else takes its JSON form.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// requestHeaders merges the default content type, caller headers, and
// bearer auth into a deterministic order: Content-Type first, the
// rest sorted by name.
func requestHeaders(opts Options) []header {
	merged := map[string]string{
		"Content-Type": httputil.MediaTypeJSON,
	}
	for name, value := range opts.Headers {
		if name != "" {
			merged[name] = value
		}
	}
	if opts.AuthToken != "" {
		merged["Authorization"] = "Bearer " + opts.AuthToken
	}

	headers := make([]header, 0, len(merged))
	headers = append(headers, header{"Content-Type", merged["Content-Type"]})
	delete(merged, "Content-Type")

	rest := make([]string, 0, len(merged))
	for name := range merged {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		headers = append(headers, header{name, merged[name]})
	}
	return headers
}

// requestBody computes the endpoint's JSON request body: the media
// type's literal example when present, else a value synthesized from
// its schema. It returns the pretty-printed JSON alongside the raw
// value; both are empty when no body applies.
func requestBody(doc *openapi.Document, ep outline.Endpoint) (string, any) {
	if ep.Operation == nil {
		return "", nil
	}
	rb := resolve.RequestBody(doc, ep.Operation.RequestBody)
	if rb == nil {
		return "", nil
	}
	mt, ok := httputil.PickJSONContent(rb.Content)
	if !ok || mt == nil {
		return "", nil
	}

	value := mt.Example
	if value == nil {
		value = example.Generate(doc, mt.Schema)
	}
	if value == nil {
		return "", nil
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", nil
	}
	return string(data), value
}
