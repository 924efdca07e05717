package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskRequestEvent(t *testing.T) {
	type essayInput struct {
		ScholarshipName string `json:"scholarship_name"`
		UserDetails     string `json:"user_details"`
	}
	payload := essayInput{ScholarshipName: "Future Founders", UserDetails: "I build drones"}

	event, err := NewTaskRequestEvent("scholarship_essay", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID.String())
	assert.Equal(t, "scholarship_essay", event.Type)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)
	assert.Equal(t, time.UTC, event.CreatedAt.Location())

	var decoded essayInput
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewTaskRequestEvent_UnencodablePayload(t *testing.T) {
	_, err := NewTaskRequestEvent("bad", map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}

func TestEventHandlerFunc(t *testing.T) {
	var got *TaskRequestEvent
	h := EventHandlerFunc(func(_ context.Context, e *TaskRequestEvent) error {
		got = e
		return nil
	})

	event := &TaskRequestEvent{Type: "x", Payload: json.RawMessage(`{}`)}
	require.NoError(t, h.HandleEvent(context.Background(), event))
	assert.Same(t, event, got)

	failing := EventHandlerFunc(func(context.Context, *TaskRequestEvent) error {
		return errors.New("handler error")
	})
	assert.EqualError(t, failing.HandleEvent(context.Background(), event), "handler error")
}
