package llm

// Schema types understood by every provider.
const (
	TypeArray  = "array"
	TypeObject = "object"
	TypeString = "string"
)

// Schema is a provider-neutral subset of JSON Schema used to describe the
// requested output shape.
type Schema struct {
	Type        string
	Description string
	Items       *Schema
	Properties  map[string]*Schema
	// Ordering lists property names in the order they should be emitted.
	Ordering []string
	Required []string
}

// JSONSchema renders the schema as a plain JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": s.Type}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = append([]string(nil), s.Required...)
	}
	return out
}
