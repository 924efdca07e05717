package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bridgepath-ai/gateway/internal/chat"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/bridgepath-ai/gateway/internal/gateway"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/bridgepath-ai/gateway/internal/platform/logger"
	"github.com/bridgepath-ai/gateway/internal/service"
	"github.com/bridgepath-ai/gateway/internal/task"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	server   *httptest.Server
	sessions *chat.Registry
}

func newTestGateway(t *testing.T, provider generation.Provider, mask bool) *gateway.Gateway {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	g, err := gateway.New(gateway.Config{
		Provider: provider,
		Model:    "gemini-test",
		Policy:   fallback.Policy{Mask: mask, Logger: log},
		Logger:   log,
	})
	require.NoError(t, err)
	return g
}

// newTestServer mounts the handlers on the same paths the server uses.
func newTestServer(t *testing.T, assistant Assistant, jobs service.JobService) *testServer {
	t.Helper()
	log, _ := logger.NewTestLogger(t)

	sessions := chat.NewRegistry(chat.RegistryConfig{}, log)
	gen := NewGenerationHandler(assistant, log)
	chats := NewChatHandler(assistant, sessions, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/startup-plans", gen.CreateStartupPlan)
		r.Post("/essays", gen.CreateEssay)
		r.Post("/pitch-readiness", gen.AnalyzePitch)

		r.Post("/chats", chats.CreateChat)
		r.Get("/chats/{id}", chats.GetChat)
		r.Delete("/chats/{id}", chats.DeleteChat)
		r.Post("/chats/{id}/messages", chats.SendMessage)
		r.Get("/chats/{id}/ws", chats.ServeWS)

		if jobs != nil {
			h := NewJobHandler(jobs, log)
			r.Post("/jobs", h.CreateJob)
			r.Get("/jobs/{id}", h.GetJob)
		}
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testServer{server: srv, sessions: sessions}
}

func (s *testServer) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, s.server.URL+path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// stubJobService is an in-memory JobService for handler tests.
type stubJobService struct {
	enqueueErr error
	records    map[uuid.UUID]task.Record
	lastType   string
	lastInput  task.GenerationInput
}

func (s *stubJobService) Enqueue(ctx context.Context, jobType string, input task.GenerationInput) (uuid.UUID, error) {
	if err := input.Validate(jobType); err != nil {
		return uuid.Nil, err
	}
	if s.enqueueErr != nil {
		return uuid.Nil, s.enqueueErr
	}
	s.lastType, s.lastInput = jobType, input
	return uuid.New(), nil
}

func (s *stubJobService) Get(ctx context.Context, id uuid.UUID) (task.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return task.Record{}, service.ErrJobNotFound
	}
	return rec, nil
}
