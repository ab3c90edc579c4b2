package openapi

// Parameter location constants
const (
	ParamInQuery  = "query"
	ParamInHeader = "header"
	ParamInPath   = "path"
	ParamInCookie = "cookie"
)

// Parameter describes a single operation parameter
type Parameter struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string                `yaml:"name,omitempty" json:"name,omitempty"`
	In          string                `yaml:"in,omitempty" json:"in,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Style       string                `yaml:"style,omitempty" json:"style,omitempty"`
	Explode     *bool                 `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema      *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example     any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Examples    map[string]*Example   `yaml:"examples,omitempty" json:"examples,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header follows the structure of Parameter with location fixed to "header"
// and the name given by the enclosing map key.
type Header struct {
	Ref         string              `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool                `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Style       string              `yaml:"style,omitempty" json:"style,omitempty"`
	Explode     *bool               `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema      *Schema             `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example     any                 `yaml:"example,omitempty" json:"example,omitempty"`
	Examples    map[string]*Example `yaml:"examples,omitempty" json:"examples,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
