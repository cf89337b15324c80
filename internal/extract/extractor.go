// Package extract turns free-form task descriptions into structured drafts
// via a schema-guided prompt to the configured chat model.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/os-dave/voiceplan/internal/llm"
	"github.com/os-dave/voiceplan/models"
	"github.com/os-dave/voiceplan/prompts"
)

// ExtractionError reports a model response that could not be decoded into the
// four required fields. The caller must not save anything when it sees one.
type ExtractionError struct {
	Reason   string
	Response string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extractor asks the chat model for a structured task record.
type Extractor struct {
	chatModel model.BaseChatModel
	prompts   *prompts.Cache
}

// New creates an Extractor bound to a chat model. The prompt cache carries
// any user-supplied template overrides.
func New(chatModel model.BaseChatModel, promptCache *prompts.Cache) *Extractor {
	return &Extractor{chatModel: chatModel, prompts: promptCache}
}

// Extract produces a task draft from free text. Empty input is rejected
// before any model call. No retry happens here; retry policy belongs to the
// caller.
func (e *Extractor) Extract(ctx context.Context, userInput string) (models.Draft, error) {
	userInput = strings.TrimSpace(userInput)
	if userInput == "" {
		return models.Draft{}, fmt.Errorf("task description cannot be empty")
	}

	systemPrompt, err := e.prompts.Get(prompts.KeyCreateTask)
	if err != nil {
		return models.Draft{}, fmt.Errorf("load prompt: %w", err)
	}

	response, err := llm.Complete(ctx, e.chatModel, systemPrompt, userInput)
	if err != nil {
		return models.Draft{}, fmt.Errorf("complete: %w", err)
	}

	draft, err := parseDraft(response)
	if err != nil {
		return models.Draft{}, err
	}
	return draft, nil
}

// parseDraft decodes the model response into the four named fields.
// Missing required fields or malformed structure is an ExtractionError;
// a partially-filled record never escapes.
func parseDraft(response string) (models.Draft, error) {
	cleaned := extractJSON(response)
	if cleaned == "" {
		return models.Draft{}, &ExtractionError{Reason: "no JSON object in response", Response: response}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return models.Draft{}, &ExtractionError{Reason: "malformed JSON", Response: response, Err: err}
	}
	for _, field := range []string{"task", "timeframe", "due_date", "details"} {
		if _, ok := raw[field]; !ok {
			return models.Draft{}, &ExtractionError{Reason: fmt.Sprintf("missing field %q", field), Response: response}
		}
	}

	var draft models.Draft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return models.Draft{}, &ExtractionError{Reason: "decode fields", Response: response, Err: err}
	}

	if err := models.ValidateStruct(draft); err != nil {
		return models.Draft{}, &ExtractionError{Reason: "record incomplete", Response: response, Err: err}
	}

	return draft, nil
}

// extractJSON strips markdown code fences and surrounding prose, returning
// the first top-level JSON object in the response.
func extractJSON(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
		response = strings.TrimSuffix(response, "```")
		response = strings.TrimSpace(response)
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
		response = strings.TrimSuffix(response, "```")
		response = strings.TrimSpace(response)
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return ""
	}
	return response[start : end+1]
}
