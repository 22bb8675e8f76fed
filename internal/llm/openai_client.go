package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an empty or unusable OpenAI response.
	ErrOpenAIResponse = errors.New("invalid OpenAI response")
)

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, prompt string) (string, error)
}

// OpenAIClient implements TextGenerator using the OpenAI chat completions API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// NewGenerator returns the OpenAI client as a TextGenerator, or nil when no
// API key is configured. Callers can hand the result to FallbackPolicy as is.
func NewGenerator(apiKey, model string, opts ...option.RequestOption) TextGenerator {
	c := NewOpenAIClient(apiKey, model, opts...)
	if c == nil {
		return nil
	}
	return c
}

// GenerateText sends a system and a user message and returns the first choice.
func (c *OpenAIClient) GenerateText(ctx context.Context, systemPrompt, prompt string) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty content", ErrOpenAIResponse)
	}
	return content, nil
}
