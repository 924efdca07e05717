package gemini

import (
	"github.com/bridgepath-ai/gateway/internal/generation"
	"google.golang.org/genai"
)

var schemaTypes = map[generation.Type]genai.Type{
	generation.TypeObject:  genai.TypeObject,
	generation.TypeArray:   genai.TypeArray,
	generation.TypeString:  genai.TypeString,
	generation.TypeNumber:  genai.TypeNumber,
	generation.TypeInteger: genai.TypeInteger,
	generation.TypeBoolean: genai.TypeBoolean,
}

// toGenAISchema converts a provider-neutral schema tree.
func toGenAISchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type: schemaTypes[s.Type],
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenAISchema(prop)
		}
	}
	if len(s.PropertyOrder) > 0 {
		out.PropertyOrdering = append([]string(nil), s.PropertyOrder...)
	}
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}
	out.Items = toGenAISchema(s.Items)

	return out
}
