// Package query synthesizes read-only SQL from free-form retrieval requests
// and validates it before it can touch the store.
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/os-dave/voiceplan/internal/llm"
	"github.com/os-dave/voiceplan/prompts"
)

// SynthesisError reports a model response with an unexpected shape (neither
// a message payload nor plain text). There is no safe query to build from
// nothing, so this aborts the retrieval path.
type SynthesisError struct {
	Reason string
	Err    error
}

func (e *SynthesisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("query synthesis failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("query synthesis failed: %s", e.Reason)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// Synthesizer asks the chat model for a SELECT statement over the tasks table.
type Synthesizer struct {
	chatModel model.BaseChatModel
	prompts   *prompts.Cache
}

// New creates a Synthesizer bound to a chat model. The prompt cache carries
// any user-supplied template overrides.
func New(chatModel model.BaseChatModel, promptCache *prompts.Cache) *Synthesizer {
	return &Synthesizer{chatModel: chatModel, prompts: promptCache}
}

// Synthesize generates a candidate query from the user's retrieval request
// and runs it through ValidateQuery. The returned statement is always safe to
// execute; only a transport or response-shape failure produces an error.
func (s *Synthesizer) Synthesize(ctx context.Context, userInput string) (string, error) {
	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		// No criteria at all: the unconditional default is the honest answer.
		return DefaultQuery, nil
	}

	systemPrompt, err := s.prompts.Get(prompts.KeyRetrieveQuery)
	if err != nil {
		return "", fmt.Errorf("load prompt: %w", err)
	}

	raw, err := llm.Complete(ctx, s.chatModel, systemPrompt, userInput)
	if errors.Is(err, llm.ErrUnexpectedShape) {
		return "", &SynthesisError{Reason: "unexpected response", Err: err}
	}
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}

	return ValidateQuery(raw), nil
}
