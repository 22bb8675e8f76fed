package llm

import (
	"context"
	"time"
)

// Completion is the outcome of a text generation call. When Fallback is set,
// Text holds the policy's fallback message and Err the cause.
type Completion struct {
	Text     string
	Fallback bool
	Err      error
}

// FallbackPolicy bounds a generation call and supplies the text returned when
// it fails. Callers never see a generator error as a failed request.
type FallbackPolicy struct {
	Message string
	Timeout time.Duration
}

// Complete calls gen under the policy timeout. A nil generator, an error or a
// timeout all produce a fallback completion.
func (p FallbackPolicy) Complete(ctx context.Context, gen TextGenerator, systemPrompt, prompt string) Completion {
	if gen == nil {
		return Completion{Text: p.Message, Fallback: true, Err: ErrOpenAIUnavailable}
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	text, err := gen.GenerateText(ctx, systemPrompt, prompt)
	if err != nil {
		return Completion{Text: p.Message, Fallback: true, Err: err}
	}
	return Completion{Text: text}
}
