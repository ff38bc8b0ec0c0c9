package schema

import (
	"encoding/json"
	"fmt"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

// JSONSchema renders a document as a draft-07 JSON Schema.
func JSONSchema(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("rendering JSON schema: nil document")
	}
	out := fieldSchema(doc.Root())
	out["$schema"] = draft07
	out["$id"] = fmt.Sprintf("https://royalbit.github.io/asimov/schemas/%s.schema.json", doc.Kind)
	out["title"] = doc.Title

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering JSON schema for %s: %w", doc.Kind, err)
	}
	return append(data, '\n'), nil
}

func fieldSchema(f *Field) map[string]any {
	s := map[string]any{}
	if f.Description != "" {
		s["description"] = f.Description
	}

	switch {
	case f.Type == FieldTypeAny:
	case len(f.AltTypes) == 0:
		s["type"] = string(f.Type)
	default:
		s["type"] = f.TypeNames()
	}

	if len(f.Enum) > 0 {
		s["enum"] = f.Enum
	}
	if f.MinLength > 0 {
		s["minLength"] = f.MinLength
	}
	if f.Minimum != nil {
		s["minimum"] = *f.Minimum
	}
	if f.Maximum != nil {
		s["maximum"] = *f.Maximum
	}
	if f.MinItems > 0 {
		s["minItems"] = f.MinItems
	}
	if f.MaxItems > 0 {
		s["maxItems"] = f.MaxItems
	}
	if f.Items != nil {
		s["items"] = fieldSchema(f.Items)
	}

	if len(f.Children) > 0 {
		props := make(map[string]any, len(f.Children))
		var required []string
		for i := range f.Children {
			child := &f.Children[i]
			props[child.Name] = fieldSchema(child)
			if child.Required {
				required = append(required, child.Name)
			}
		}
		s["properties"] = props
		if len(required) > 0 {
			s["required"] = required
		}
	}

	switch {
	case f.Closed:
		s["additionalProperties"] = false
	case f.Values != nil:
		s["additionalProperties"] = fieldSchema(f.Values)
	}
	return s
}
