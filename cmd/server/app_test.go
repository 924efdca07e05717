package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bridgepath-ai/gateway/internal/api"
	"github.com/bridgepath-ai/gateway/internal/config"
	"github.com/bridgepath-ai/gateway/internal/fallback"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/bridgepath-ai/gateway/internal/mocks"
	"github.com/bridgepath-ai/gateway/internal/platform/logger"
	"github.com/bridgepath-ai/gateway/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug", ShutdownTimeoutSeconds: 5},
		LLM: config.LLMConfig{
			ModelName:             config.DefaultModelName,
			RequestTimeoutSeconds: 30,
		},
		Gateway: config.GatewayConfig{MaskFailures: true},
		Chat:    config.ChatConfig{SessionTTLMinutes: 60, SweepIntervalSeconds: 60},
		Task:    config.TaskConfig{WorkerCount: 2, QueueSize: 10, StuckTaskAgeMinutes: 5},
	}
}

func newTestApp(t *testing.T, provider generation.Provider) (*application, *httptest.Server) {
	t.Helper()
	log, _ := logger.NewTestLogger(t)

	app, err := newApplicationWithProvider(testConfig(), log, provider)
	require.NoError(t, err)

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(func() {
		srv.Close()
		app.cleanup()
	})
	return app, srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := srv.Client().Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	_, srv := newTestApp(t, &mocks.MockProvider{})

	resp := get(t, srv, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

func TestMetricsCountFallbacks(t *testing.T) {
	_, srv := newTestApp(t, mocks.NewMockProviderWithError(mocks.ErrMockTransport))

	resp := post(t, srv, "/api/essays", `{"scholarship_name":"Future Founders","user_details":"drones"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var essay api.EssayResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&essay))
	assert.True(t, essay.Demo)
	assert.Equal(t, fallback.Essay(), essay.Essay)

	metrics := get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, metrics.StatusCode)
	text, err := io.ReadAll(metrics.Body)
	require.NoError(t, err)
	assert.Contains(t, string(text), `bridgepath_gateway_requests_total{operation="scholarship_essay",outcome="fallback"} 1`)
}

func TestChatRoutes(t *testing.T) {
	app, srv := newTestApp(t, &mocks.MockProvider{})

	resp := post(t, srv, "/api/chats", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.ChatSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 1, app.sessions.Len())

	resp = post(t, srv, "/api/chats/"+created.SessionID+"/messages", `{"text":"Where do I start?"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply api.SendMessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	assert.Equal(t, "reply to: Where do I start?", reply.Reply.Text)
}

func TestJobPipeline(t *testing.T) {
	provider := mocks.NewMockProviderWithText(`{"score": 55, "feedback": "Name the customer."}`)
	_, srv := newTestApp(t, provider)

	resp := post(t, srv, "/api/jobs", `{"type":"pitch_readiness","input":{"pitch_text":"Drones for farms."}}`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var accepted api.JobAcceptedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&accepted))

	var rec task.Record
	require.Eventually(t, func() bool {
		r, err := srv.Client().Get(srv.URL + "/api/jobs/" + accepted.ID.String())
		if err != nil {
			return false
		}
		defer func() { _ = r.Body.Close() }()
		if r.StatusCode != http.StatusOK {
			return false
		}
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			return false
		}
		return rec.Status.IsTerminal()
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, task.TaskStatusCompleted, rec.Status)
	assert.False(t, rec.Demo)
	assert.JSONEq(t, `{"score": 55, "feedback": "Name the customer."}`, string(rec.Result))
}

func TestStartHTTPServer_StopsOnContextCancel(t *testing.T) {
	log, _ := logger.NewTestLogger(t)
	cfg := testConfig()
	cfg.Server.Port = freePort(t)

	app, err := newApplicationWithProvider(cfg, log, &mocks.MockProvider{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}
