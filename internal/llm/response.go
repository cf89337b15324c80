package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ErrUnexpectedShape marks a provider answer that arrived but carried no
// usable payload. Transport failures are never wrapped in it.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// Response is the boundary type for text-generation output. Providers return
// either a structured message or plain text; everything past this boundary
// works on plain text only.
type Response struct {
	message *schema.Message
	text    string
}

// PlainText wraps a raw text completion.
func PlainText(s string) Response {
	return Response{text: s}
}

// StructuredMessage wraps a provider message object.
func StructuredMessage(m *schema.Message) Response {
	return Response{message: m}
}

// Text collapses the response to its text payload. A structured message with
// no content and no wrapped text is an unexpected shape and reported as such.
func (r Response) Text() (string, error) {
	if r.message != nil {
		return r.message.Content, nil
	}
	if r.text != "" {
		return r.text, nil
	}
	return "", fmt.Errorf("%w: no message and no text", ErrUnexpectedShape)
}

// Complete sends a system/user prompt pair to the chat model and returns the
// completion text. The call blocks until the provider answers; cancellation
// is the caller's concern via ctx.
func Complete(ctx context.Context, chatModel model.BaseChatModel, systemPrompt, userInput string) (string, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: userInput},
	}

	msg, err := chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if msg == nil {
		return "", fmt.Errorf("%w: empty response from provider", ErrUnexpectedShape)
	}

	return StructuredMessage(msg).Text()
}
