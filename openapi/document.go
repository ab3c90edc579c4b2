package openapi

import "github.com/oasdocs/oasdocs/orderedmap"

// Document represents an OpenAPI 3.x document.
// References:
// - OAS 3.0.0: https://spec.openapis.org/oas/v3.0.0.html
// - OAS 3.1.0: https://spec.openapis.org/oas/v3.1.0.html
type Document struct {
	OpenAPI      string                `yaml:"openapi" json:"openapi"` // Required: the OAS version string, recorded verbatim
	Info         *Info                 `yaml:"info" json:"info"`       // Required
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        *Paths                `yaml:"paths" json:"paths"` // Required (may be empty)
	Components   *Components           `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects referenced from elsewhere in the document
type Components struct {
	Schemas         *orderedmap.Map[*Schema]   `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*Response       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        map[string]*Example        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   map[string]*RequestBody    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*Header         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API
type Info struct {
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string   `yaml:"version" json:"version"`
	Summary        string   `yaml:"summary,omitempty" json:"summary,omitempty"` // OAS 3.1+
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Contact information for the exposed API
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License information for the exposed API
type License struct {
	Name       string `yaml:"name" json:"name"`
	URL        string `yaml:"url,omitempty" json:"url,omitempty"`
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"` // OAS 3.1+
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url" json:"url"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string        `yaml:"name" json:"name"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server represents a Server object
type Server struct {
	URL         string                    `yaml:"url" json:"url"`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty"`
	Variables   map[string]ServerVariable `yaml:"variables,omitempty" json:"variables,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ServerVariable represents a Server Variable object
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Default     string   `yaml:"default" json:"default"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SecurityRequirement lists required security schemes for an operation or document.
// Each key is a security scheme name; the value lists required scopes.
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme usable by operations
type SecurityScheme struct {
	Type             string `yaml:"type,omitempty" json:"type,omitempty"` // "apiKey", "http", "oauth2", "openIdConnect"
	Description      string `yaml:"description,omitempty" json:"description,omitempty"`
	Name             string `yaml:"name,omitempty" json:"name,omitempty"` // apiKey header/query/cookie name
	In               string `yaml:"in,omitempty" json:"in,omitempty"`
	Scheme           string `yaml:"scheme,omitempty" json:"scheme,omitempty"` // e.g. "bearer", "basic"
	BearerFormat     string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	OpenIDConnectURL string `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// FirstServerURL returns the URL of the first server entry, or "" when no
// servers are declared.
func (d *Document) FirstServerURL() string {
	if d == nil || len(d.Servers) == 0 || d.Servers[0] == nil {
		return ""
	}
	return d.Servers[0].URL
}

// SchemaByName looks up a named schema under components.schemas.
// Returns nil when components or the schema are absent.
func (d *Document) SchemaByName(name string) *Schema {
	if d == nil || d.Components == nil {
		return nil
	}
	return d.Components.Schemas.Value(name)
}

// SchemaNames returns the names under components.schemas in declaration order.
func (d *Document) SchemaNames() []string {
	if d == nil || d.Components == nil {
		return nil
	}
	return d.Components.Schemas.Keys()
}
