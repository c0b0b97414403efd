package jsonschema

// Schema is a minimal JSON Schema representation used for export. It covers the
// keywords the dsl package emits.
type Schema struct {
	ID    string `json:"$id,omitempty"`
	Draft string `json:"$schema,omitempty"`
	Title string `json:"title,omitempty"`

	// Core
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
	Enum   []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
}
