package gemini

import (
	"fmt"
	"strings"

	"github.com/bridgepath-ai/gateway/internal/domain"
	"github.com/bridgepath-ai/gateway/internal/generation"
	"google.golang.org/genai"
)

func textContent(role domain.Role, text string) *genai.Content {
	return &genai.Content{
		Role:  string(role),
		Parts: []*genai.Part{{Text: text}},
	}
}

// toHistory converts chat turns to genai contents, preserving order.
func toHistory(turns []domain.Turn) []*genai.Content {
	if len(turns) == 0 {
		return nil
	}
	out := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		out = append(out, textContent(t.Role, t.Text))
	}
	return out
}

// generateConfig builds the request config for a payload.
func generateConfig(payload generation.RequestPayload) *genai.GenerateContentConfig {
	if !payload.Structured() {
		return nil
	}
	return &genai.GenerateContentConfig{
		ResponseMIMEType: payload.ResponseMIMEType,
		ResponseSchema:   toGenAISchema(payload.Schema),
	}
}

// responseText extracts the text of the first candidate, rejecting blocked
// or empty responses.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrEmptyResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", generation.ErrEmptyResponse
	}
	return b.String(), nil
}
