// JSON codec methods for the document model.
//
// YAML handles specification extensions through inline maps, but
// encoding/json has no inline equivalent, so every type carrying an
// Extra field gets an Alias-based codec pair: unmarshal decodes the
// known fields then harvests x-* keys from the raw bytes, marshal
// merges them back in.

package openapi

import (
	"encoding/json"
	"maps"
	"strings"
)

const extensionPrefix = "x-"

// extractExtensions pulls specification extension fields (x-*) out of a
// raw JSON object. Returns nil when the data is not an object or holds
// no extensions.
func extractExtensions(data []byte) map[string]any {
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil
	}
	var extensions map[string]any
	for key, value := range all {
		if strings.HasPrefix(key, extensionPrefix) {
			if extensions == nil {
				extensions = make(map[string]any)
			}
			extensions[key] = value
		}
	}
	return extensions
}

// marshalWithExtras marshals v and merges extension fields into the
// resulting object. The merge re-encodes through a plain map, which
// drops key order, so it only runs when extensions are present.
func marshalWithExtras(v any, extras map[string]any) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extras) == 0 {
		return base, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	if merged == nil {
		merged = make(map[string]any, len(extras))
	}
	maps.Copy(merged, extras)
	return json.Marshal(merged)
}

// UnmarshalJSON implements custom unmarshaling for Document to capture
// specification extensions.
func (d *Document) UnmarshalJSON(data []byte) error {
	type Alias Document
	if err := json.Unmarshal(data, (*Alias)(d)); err != nil {
		return err
	}
	d.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Document to include
// specification extensions.
func (d *Document) MarshalJSON() ([]byte, error) {
	type Alias Document
	return marshalWithExtras((*Alias)(d), d.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Info
func (i *Info) UnmarshalJSON(data []byte) error {
	type Alias Info
	if err := json.Unmarshal(data, (*Alias)(i)); err != nil {
		return err
	}
	i.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Info
func (i *Info) MarshalJSON() ([]byte, error) {
	type Alias Info
	return marshalWithExtras((*Alias)(i), i.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Contact
func (c *Contact) UnmarshalJSON(data []byte) error {
	type Alias Contact
	if err := json.Unmarshal(data, (*Alias)(c)); err != nil {
		return err
	}
	c.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Contact
func (c *Contact) MarshalJSON() ([]byte, error) {
	type Alias Contact
	return marshalWithExtras((*Alias)(c), c.Extra)
}

// UnmarshalJSON implements custom unmarshaling for License
func (l *License) UnmarshalJSON(data []byte) error {
	type Alias License
	if err := json.Unmarshal(data, (*Alias)(l)); err != nil {
		return err
	}
	l.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for License
func (l *License) MarshalJSON() ([]byte, error) {
	type Alias License
	return marshalWithExtras((*Alias)(l), l.Extra)
}

// UnmarshalJSON implements custom unmarshaling for ExternalDocs
func (e *ExternalDocs) UnmarshalJSON(data []byte) error {
	type Alias ExternalDocs
	if err := json.Unmarshal(data, (*Alias)(e)); err != nil {
		return err
	}
	e.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for ExternalDocs
func (e *ExternalDocs) MarshalJSON() ([]byte, error) {
	type Alias ExternalDocs
	return marshalWithExtras((*Alias)(e), e.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Tag
func (t *Tag) UnmarshalJSON(data []byte) error {
	type Alias Tag
	if err := json.Unmarshal(data, (*Alias)(t)); err != nil {
		return err
	}
	t.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Tag
func (t *Tag) MarshalJSON() ([]byte, error) {
	type Alias Tag
	return marshalWithExtras((*Alias)(t), t.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Server
func (s *Server) UnmarshalJSON(data []byte) error {
	type Alias Server
	if err := json.Unmarshal(data, (*Alias)(s)); err != nil {
		return err
	}
	s.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Server
func (s *Server) MarshalJSON() ([]byte, error) {
	type Alias Server
	return marshalWithExtras((*Alias)(s), s.Extra)
}

// UnmarshalJSON implements custom unmarshaling for ServerVariable
func (v *ServerVariable) UnmarshalJSON(data []byte) error {
	type Alias ServerVariable
	if err := json.Unmarshal(data, (*Alias)(v)); err != nil {
		return err
	}
	v.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for ServerVariable
func (v *ServerVariable) MarshalJSON() ([]byte, error) {
	type Alias ServerVariable
	return marshalWithExtras((*Alias)(v), v.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Components
func (c *Components) UnmarshalJSON(data []byte) error {
	type Alias Components
	if err := json.Unmarshal(data, (*Alias)(c)); err != nil {
		return err
	}
	c.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Components
func (c *Components) MarshalJSON() ([]byte, error) {
	type Alias Components
	return marshalWithExtras((*Alias)(c), c.Extra)
}

// UnmarshalJSON implements custom unmarshaling for SecurityScheme
func (s *SecurityScheme) UnmarshalJSON(data []byte) error {
	type Alias SecurityScheme
	if err := json.Unmarshal(data, (*Alias)(s)); err != nil {
		return err
	}
	s.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for SecurityScheme
func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	type Alias SecurityScheme
	return marshalWithExtras((*Alias)(s), s.Extra)
}

// UnmarshalJSON implements custom unmarshaling for PathItem
func (p *PathItem) UnmarshalJSON(data []byte) error {
	type Alias PathItem
	if err := json.Unmarshal(data, (*Alias)(p)); err != nil {
		return err
	}
	p.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for PathItem
func (p *PathItem) MarshalJSON() ([]byte, error) {
	type Alias PathItem
	return marshalWithExtras((*Alias)(p), p.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Operation
func (o *Operation) UnmarshalJSON(data []byte) error {
	type Alias Operation
	if err := json.Unmarshal(data, (*Alias)(o)); err != nil {
		return err
	}
	o.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Operation
func (o *Operation) MarshalJSON() ([]byte, error) {
	type Alias Operation
	return marshalWithExtras((*Alias)(o), o.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Response
func (r *Response) UnmarshalJSON(data []byte) error {
	type Alias Response
	if err := json.Unmarshal(data, (*Alias)(r)); err != nil {
		return err
	}
	r.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Response
func (r *Response) MarshalJSON() ([]byte, error) {
	type Alias Response
	return marshalWithExtras((*Alias)(r), r.Extra)
}

// UnmarshalJSON implements custom unmarshaling for MediaType
func (m *MediaType) UnmarshalJSON(data []byte) error {
	type Alias MediaType
	if err := json.Unmarshal(data, (*Alias)(m)); err != nil {
		return err
	}
	m.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for MediaType
func (m *MediaType) MarshalJSON() ([]byte, error) {
	type Alias MediaType
	return marshalWithExtras((*Alias)(m), m.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Example
func (e *Example) UnmarshalJSON(data []byte) error {
	type Alias Example
	if err := json.Unmarshal(data, (*Alias)(e)); err != nil {
		return err
	}
	e.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Example
func (e *Example) MarshalJSON() ([]byte, error) {
	type Alias Example
	return marshalWithExtras((*Alias)(e), e.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Parameter
func (p *Parameter) UnmarshalJSON(data []byte) error {
	type Alias Parameter
	if err := json.Unmarshal(data, (*Alias)(p)); err != nil {
		return err
	}
	p.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Parameter
func (p *Parameter) MarshalJSON() ([]byte, error) {
	type Alias Parameter
	return marshalWithExtras((*Alias)(p), p.Extra)
}

// UnmarshalJSON implements custom unmarshaling for RequestBody
func (r *RequestBody) UnmarshalJSON(data []byte) error {
	type Alias RequestBody
	if err := json.Unmarshal(data, (*Alias)(r)); err != nil {
		return err
	}
	r.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for RequestBody
func (r *RequestBody) MarshalJSON() ([]byte, error) {
	type Alias RequestBody
	return marshalWithExtras((*Alias)(r), r.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Header
func (h *Header) UnmarshalJSON(data []byte) error {
	type Alias Header
	if err := json.Unmarshal(data, (*Alias)(h)); err != nil {
		return err
	}
	h.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Header
func (h *Header) MarshalJSON() ([]byte, error) {
	type Alias Header
	return marshalWithExtras((*Alias)(h), h.Extra)
}

// UnmarshalJSON implements custom unmarshaling for Schema
func (s *Schema) UnmarshalJSON(data []byte) error {
	type Alias Schema
	if err := json.Unmarshal(data, (*Alias)(s)); err != nil {
		return err
	}
	s.Extra = extractExtensions(data)
	return nil
}

// MarshalJSON implements custom marshaling for Schema
func (s *Schema) MarshalJSON() ([]byte, error) {
	type Alias Schema
	return marshalWithExtras((*Alias)(s), s.Extra)
}
