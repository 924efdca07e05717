package gemini

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/bridgepath-ai/gateway/internal/config"
	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"github.com/bridgepath-ai/gateway/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type generateCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type fakeModels struct {
	mu        sync.Mutex
	calls     []generateCall
	responses []*genai.GenerateContentResponse
	errs      []error
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := len(f.calls)
	f.calls = append(f.calls, generateCall{model: model, contents: contents, config: cfg})

	var resp *genai.GenerateContentResponse
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

type fakeChat struct {
	sent  []string
	reply *genai.GenerateContentResponse
	err   error
}

func (f *fakeChat) SendMessage(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	for _, p := range parts {
		f.sent = append(f.sent, p.Text)
	}
	return f.reply, f.err
}

func textResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Role: "model", Parts: parts},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		ModelName:         "gemini-test",
		MaxRetries:        0,
		RetryDelaySeconds: 1,
	}
}

func TestNewProvider_Validation(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)

	_, err := NewProvider(context.Background(), nil, testLLMConfig())
	assert.Error(t, err)

	cfg := testLLMConfig()
	cfg.ModelName = " "
	_, err = NewProvider(context.Background(), log, cfg)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewProvider_MissingKeyFailsEveryCall(t *testing.T) {
	t.Parallel()
	log, buf := logger.NewTestLogger(t)

	p, err := NewProvider(context.Background(), log, testLLMConfig())
	require.NoError(t, err)

	_, err = p.GenerateContent(context.Background(), "gemini-test", generation.RequestPayload{Instruction: "hi"})
	assert.ErrorIs(t, err, generation.ErrUnauthenticated)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)

	_, err = p.CreateChat(context.Background(), "gemini-test", "persona", nil)
	assert.ErrorIs(t, err, generation.ErrUnauthenticated)

	entries := logger.FindEntries(t, buf, "Gemini API key is not configured, all generations will fail over")
	assert.Len(t, entries, 1)
}

func TestGenerateContent_StructuredRequest(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)

	models := &fakeModels{responses: []*genai.GenerateContentResponse{
		textResponse(
			&genai.Part{Text: "thinking...", Thought: true},
			&genai.Part{Text: `{"score":`},
			&genai.Part{Text: `80,"feedback":"ok"}`},
		),
	}}
	p := newProvider(log, testLLMConfig(), models, nil)

	payload := generation.RequestPayload{
		Operation:        "pitch_analysis",
		Instruction:      "Analyze this pitch",
		ResponseMIMEType: generation.MIMETypeJSON,
		Schema: &generation.Schema{
			Type: generation.TypeObject,
			Properties: map[string]*generation.Schema{
				"score":    {Type: generation.TypeNumber},
				"feedback": {Type: generation.TypeString},
			},
		},
	}

	resp, err := p.GenerateContent(context.Background(), "gemini-test", payload)
	require.NoError(t, err)
	assert.Equal(t, `{"score":80,"feedback":"ok"}`, resp.Text)

	require.Len(t, models.calls, 1)
	call := models.calls[0]
	assert.Equal(t, "gemini-test", call.model)
	require.Len(t, call.contents, 1)
	assert.Equal(t, "user", call.contents[0].Role)
	assert.Equal(t, "Analyze this pitch", call.contents[0].Parts[0].Text)
	require.NotNil(t, call.config)
	assert.Equal(t, generation.MIMETypeJSON, call.config.ResponseMIMEType)
	require.NotNil(t, call.config.ResponseSchema)
	assert.Equal(t, genai.TypeObject, call.config.ResponseSchema.Type)
	assert.Equal(t, genai.TypeNumber, call.config.ResponseSchema.Properties["score"].Type)
}

func TestGenerateContent_FreeTextHasNoConfig(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)

	models := &fakeModels{responses: []*genai.GenerateContentResponse{textResponse(&genai.Part{Text: "Dear committee"})}}
	p := newProvider(log, testLLMConfig(), models, nil)

	resp, err := p.GenerateContent(context.Background(), "gemini-test",
		generation.RequestPayload{Operation: "scholarship_essay", Instruction: "Write an essay"})
	require.NoError(t, err)
	assert.Equal(t, "Dear committee", resp.Text)
	assert.Nil(t, models.calls[0].config)
}

func TestGenerateContent_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		resp  *genai.GenerateContentResponse
		err   error
		want  error
		calls int
	}{
		{
			name:  "unauthorized",
			err:   genai.APIError{Code: http.StatusUnauthorized, Message: "unauthorized"},
			want:  generation.ErrUnauthenticated,
			calls: 1,
		},
		{
			name:  "invalid api key",
			err:   genai.APIError{Code: http.StatusBadRequest, Message: "API key not valid. Please pass a valid API key."},
			want:  generation.ErrUnauthenticated,
			calls: 1,
		},
		{
			name:  "bad request",
			err:   genai.APIError{Code: http.StatusBadRequest, Message: "invalid schema"},
			want:  generation.ErrInvalidConfig,
			calls: 1,
		},
		{
			name:  "unavailable",
			err:   genai.APIError{Code: http.StatusServiceUnavailable, Message: "overloaded"},
			want:  generation.ErrTransientFailure,
			calls: 1,
		},
		{
			name:  "network",
			err:   errors.New("dial tcp: connection refused"),
			want:  generation.ErrTransientFailure,
			calls: 1,
		},
		{
			name:  "nil response",
			want:  generation.ErrInvalidResponse,
			calls: 1,
		},
		{
			name:  "no candidates",
			resp:  &genai.GenerateContentResponse{},
			want:  generation.ErrEmptyResponse,
			calls: 1,
		},
		{
			name: "safety finish",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content:      &genai.Content{Parts: []*genai.Part{{Text: "x"}}},
				FinishReason: genai.FinishReasonSafety,
			}}},
			want:  generation.ErrContentBlocked,
			calls: 1,
		},
		{
			name: "prompt blocked",
			resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			},
			want:  generation.ErrContentBlocked,
			calls: 1,
		},
		{
			name:  "blank text",
			resp:  textResponse(&genai.Part{Text: "  "}),
			want:  generation.ErrEmptyResponse,
			calls: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			log, _ := logger.NewTestLogger(t)

			models := &fakeModels{
				responses: []*genai.GenerateContentResponse{tc.resp},
				errs:      []error{tc.err},
			}
			p := newProvider(log, testLLMConfig(), models, nil)

			_, err := p.GenerateContent(context.Background(), "gemini-test",
				generation.RequestPayload{Instruction: "prompt"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, generation.ErrGenerationFailed)
			assert.Len(t, models.calls, tc.calls)
		})
	}
}

func TestGenerateContent_RetriesTransientFailures(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)

	cfg := testLLMConfig()
	cfg.MaxRetries = 1
	cfg.RetryDelaySeconds = 1

	models := &fakeModels{
		responses: []*genai.GenerateContentResponse{nil, textResponse(&genai.Part{Text: "second time lucky"})},
		errs:      []error{genai.APIError{Code: http.StatusTooManyRequests, Message: "slow down"}, nil},
	}
	p := newProvider(log, cfg, models, nil)

	resp, err := p.GenerateContent(context.Background(), "gemini-test", generation.RequestPayload{Instruction: "prompt"})
	require.NoError(t, err)
	assert.Equal(t, "second time lucky", resp.Text)
	assert.Len(t, models.calls, 2)
}

func TestGenerateContent_NoRetryForPermanentFailures(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)

	cfg := testLLMConfig()
	cfg.MaxRetries = 3

	models := &fakeModels{errs: []error{genai.APIError{Code: http.StatusForbidden, Message: "forbidden"}}}
	p := newProvider(log, cfg, models, nil)

	_, err := p.GenerateContent(context.Background(), "gemini-test", generation.RequestPayload{Instruction: "prompt"})
	assert.ErrorIs(t, err, generation.ErrUnauthenticated)
	assert.Len(t, models.calls, 1)
}

func TestGenerateContent_CancelledDuringBackoff(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)

	cfg := testLLMConfig()
	cfg.MaxRetries = 2
	cfg.RetryDelaySeconds = 5

	ctx, cancel := context.WithCancel(context.Background())
	models := &fakeModels{errs: []error{genai.APIError{Code: http.StatusInternalServerError, Message: "boom"}}}
	p := newProvider(log, cfg, &cancellingModels{fakeModels: models, cancel: cancel}, nil)

	_, err := p.GenerateContent(ctx, "gemini-test", generation.RequestPayload{Instruction: "prompt"})
	assert.ErrorIs(t, err, generation.ErrTransientFailure)
	assert.Len(t, models.calls, 1)
}

// cancellingModels cancels the context after the first call.
type cancellingModels struct {
	*fakeModels
	cancel context.CancelFunc
}

func (c *cancellingModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	defer c.cancel()
	return c.fakeModels.GenerateContent(ctx, model, contents, cfg)
}

func TestCreateChat_SeedsPersonaAndHistory(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)

	chat := &fakeChat{reply: textResponse(&genai.Part{Text: "Find a co-founder at the mixer."})}

	var gotModel string
	var gotConfig *genai.GenerateContentConfig
	var gotHistory []*genai.Content
	factory := func(
		_ context.Context,
		model string,
		cfg *genai.GenerateContentConfig,
		history []*genai.Content,
	) (chatSender, error) {
		gotModel, gotConfig, gotHistory = model, cfg, history
		return chat, nil
	}
	p := newProvider(log, testLLMConfig(), nil, factory)

	history := []domain.Turn{
		{Role: domain.RoleUser, Text: "Hi"},
		{Role: domain.RoleModel, Text: "Hello, builder!"},
	}
	handle, err := p.CreateChat(context.Background(), "gemini-test", "You are a mentor.", history)
	require.NoError(t, err)

	assert.Equal(t, "gemini-test", gotModel)
	require.NotNil(t, gotConfig)
	require.NotNil(t, gotConfig.SystemInstruction)
	assert.Equal(t, "You are a mentor.", gotConfig.SystemInstruction.Parts[0].Text)
	require.Len(t, gotHistory, 2)
	assert.Equal(t, "user", gotHistory[0].Role)
	assert.Equal(t, "model", gotHistory[1].Role)
	assert.Equal(t, "Hello, builder!", gotHistory[1].Parts[0].Text)

	resp, err := handle.SendMessage(context.Background(), "How do I find a team?")
	require.NoError(t, err)
	assert.Equal(t, "Find a co-founder at the mixer.", resp.Text)
	assert.Equal(t, []string{"How do I find a team?"}, chat.sent)
}

func TestCreateChat_Errors(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)

	factory := func(context.Context, string, *genai.GenerateContentConfig, []*genai.Content) (chatSender, error) {
		return nil, errors.New("connection reset")
	}
	p := newProvider(log, testLLMConfig(), nil, factory)

	_, err := p.CreateChat(context.Background(), "gemini-test", "persona", nil)
	assert.ErrorIs(t, err, generation.ErrTransientFailure)
}

func TestChatHandle_SendMessageErrors(t *testing.T) {
	t.Parallel()
	log, _ := logger.NewTestLogger(t)

	handle := &chatHandle{
		chat:   &fakeChat{err: genai.APIError{Code: http.StatusServiceUnavailable, Message: "down"}},
		logger: log,
	}
	_, err := handle.SendMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, generation.ErrTransientFailure)

	handle = &chatHandle{chat: &fakeChat{reply: &genai.GenerateContentResponse{}}, logger: log}
	_, err = handle.SendMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, generation.ErrEmptyResponse)
}
