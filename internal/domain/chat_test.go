package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTurnValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Turn{Role: RoleUser, Text: "hi"}.Validate())
	assert.NoError(t, Turn{Role: RoleModel, Text: "hello"}.Validate())
	assert.ErrorIs(t, Turn{Role: "system", Text: "x"}.Validate(), ErrInvalidRole)

	for _, text := range []string{"", "  \n\t"} {
		err := Turn{Role: RoleModel, Text: text}.Validate()
		assert.ErrorIs(t, err, ErrEmptyContent, "text %q", text)
		assert.ErrorIs(t, err, ErrValidation, "text %q", text)
	}
}

func TestNewChatMessage(t *testing.T) {
	t.Parallel()

	first := NewChatMessage(RoleUser, "How do I pick a tech stack?")
	second := NewChatMessage(RoleModel, "Start from the demo you want to show.")

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, RoleUser, first.Role)
	assert.Equal(t, "How do I pick a tech stack?", first.Text)
	assert.WithinDuration(t, time.Now().UTC(), first.Timestamp, 2*time.Second)
	assert.Equal(t, time.UTC, first.Timestamp.Location())
}
