package summary

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// TextGenerator produces prose from a system prompt and a user prompt.
// Implementations may call an LLM or return canned text (for tests).
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAIGenerator calls an OpenAI-compatible chat-completions endpoint
// (OpenAI itself, Ollama, LM Studio, vLLM, etc.).
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// Compile-time check: *OpenAIGenerator satisfies TextGenerator.
var _ TextGenerator = (*OpenAIGenerator)(nil)

const (
	maxAttempts    = 2
	attemptBackoff = 500 * time.Millisecond

	generationTemperature = 0.7
	generationMaxTokens   = 150
)

// NewOpenAIGenerator creates a generator against the given endpoint.
// baseURL may be empty to use the official OpenAI API.
func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL + "/v1"
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateText runs one chat completion, retrying once after a short
// backoff. Retry exhaustion surfaces as an error; the caller decides
// whether to fall back.
func (g *OpenAIGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(attemptBackoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       g.model,
			Temperature: generationTemperature,
			MaxTokens:   generationMaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
		})
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			lastErr = fmt.Errorf("model returned no content")
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("text generation failed after %d attempts: %w", maxAttempts, lastErr)
}
