package openapi

import (
	"fmt"

	"github.com/oasdocs/oasdocs/internal/httputil"
	"github.com/oasdocs/oasdocs/orderedmap"
)

// Paths holds the relative paths to the individual endpoints.
// Declaration order is preserved; endpoint listings depend on it.
type Paths = orderedmap.Map[*PathItem]

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         string       `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Servers     []*Server    `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation returns the operation for the given lowercase method name,
// or nil when the path item does not define it.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	switch method {
	case httputil.MethodGet:
		return p.Get
	case httputil.MethodPut:
		return p.Put
	case httputil.MethodPost:
		return p.Post
	case httputil.MethodDelete:
		return p.Delete
	case httputil.MethodOptions:
		return p.Options
	case httputil.MethodHead:
		return p.Head
	case httputil.MethodPatch:
		return p.Patch
	default:
		return nil
	}
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    *Responses            `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated   bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Responses is a container for the expected responses of an operation.
// Status code order from the source document is preserved.
type Responses struct {
	Default *Response
	Codes   *orderedmap.Map[*Response]
}

// UnmarshalYAML implements custom unmarshaling for Responses to validate
// status codes during parsing. Invalid keys fail the parse with a clear
// message instead of being silently captured.
func (r *Responses) UnmarshalYAML(unmarshal func(any) error) error {
	all := orderedmap.New[*Response]()
	if err := all.UnmarshalYAML(unmarshal); err != nil {
		return err
	}
	return r.fromOrdered(all)
}

// UnmarshalJSON implements custom unmarshaling for Responses, mirroring
// the YAML path: status codes are validated and their order preserved.
func (r *Responses) UnmarshalJSON(data []byte) error {
	all := orderedmap.New[*Response]()
	if err := all.UnmarshalJSON(data); err != nil {
		return err
	}
	return r.fromOrdered(all)
}

func (r *Responses) fromOrdered(all *orderedmap.Map[*Response]) error {
	r.Codes = orderedmap.New[*Response]()
	for code, resp := range all.All() {
		if code == "default" {
			r.Default = resp
			continue
		}
		if !httputil.ValidateStatusCode(code) {
			return fmt.Errorf("invalid status code '%s' in responses: must be a valid HTTP status code (e.g., \"200\", \"404\"), wildcard pattern (e.g., \"2XX\"), or extension field (e.g., \"x-custom\")", code)
		}
		r.Codes.Set(code, resp)
	}
	return nil
}

// ordered flattens the container back into a single ordered map with
// the default response last.
func (r *Responses) ordered() *orderedmap.Map[*Response] {
	all := orderedmap.New[*Response]()
	for code, resp := range r.Codes.All() {
		all.Set(code, resp)
	}
	if r.Default != nil {
		all.Set("default", r.Default)
	}
	return all
}

// MarshalYAML implements custom marshaling for Responses, emitting status
// codes in preserved order with the default response last.
func (r *Responses) MarshalYAML() (any, error) {
	return r.ordered(), nil
}

// MarshalJSON implements custom marshaling for Responses, emitting status
// codes in preserved order with the default response last.
func (r *Responses) MarshalJSON() ([]byte, error) {
	return r.ordered().MarshalJSON()
}

// Response describes a single response from an API Operation
type Response struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Description uses omitempty because responses can be defined via $ref.
	// When a response uses $ref, this field should be empty in the referencing
	// object (the actual value is in the referenced response definition).
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for the media type
type MediaType struct {
	Schema   *Schema             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example  any                 `yaml:"example,omitempty" json:"example,omitempty"`
	Examples map[string]*Example `yaml:"examples,omitempty" json:"examples,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Example represents an example object
type Example struct {
	Ref           string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary       string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	Value         any    `yaml:"value,omitempty" json:"value,omitempty"`
	ExternalValue string `yaml:"externalValue,omitempty" json:"externalValue,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
