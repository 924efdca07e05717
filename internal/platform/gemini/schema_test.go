package gemini

import (
	"testing"

	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGenAISchema(t *testing.T) {
	t.Parallel()

	assert.Nil(t, toGenAISchema(nil))

	in := &generation.Schema{
		Type:          generation.TypeObject,
		PropertyOrder: []string{"name", "phases"},
		Required:      []string{"name"},
		Properties: map[string]*generation.Schema{
			"name": {Type: generation.TypeString},
			"phases": {
				Type: generation.TypeArray,
				Items: &generation.Schema{
					Type: generation.TypeObject,
					Properties: map[string]*generation.Schema{
						"count": {Type: generation.TypeInteger},
						"done":  {Type: generation.TypeBoolean},
					},
				},
			},
		},
	}

	out := toGenAISchema(in)
	require.NotNil(t, out)
	assert.Equal(t, genai.TypeObject, out.Type)
	assert.Equal(t, []string{"name", "phases"}, out.PropertyOrdering)
	assert.Equal(t, []string{"name"}, out.Required)
	assert.Equal(t, genai.TypeString, out.Properties["name"].Type)

	phases := out.Properties["phases"]
	require.NotNil(t, phases)
	assert.Equal(t, genai.TypeArray, phases.Type)
	require.NotNil(t, phases.Items)
	assert.Equal(t, genai.TypeInteger, phases.Items.Properties["count"].Type)
	assert.Equal(t, genai.TypeBoolean, phases.Items.Properties["done"].Type)

	// The input must not be aliased.
	in.Required[0] = "changed"
	assert.Equal(t, "name", out.Required[0])
}
