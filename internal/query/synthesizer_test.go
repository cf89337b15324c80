package query

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/os-dave/voiceplan/prompts"
)

type mockChatModel struct {
	response   string
	err        error
	nilMessage bool
	calls      int
}

func (m *mockChatModel) Generate(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.nilMessage {
		return nil, nil
	}
	return &schema.Message{Role: schema.Assistant, Content: m.response}, nil
}

func (m *mockChatModel) Stream(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func TestSynthesize(t *testing.T) {
	m := &mockChatModel{response: "SELECT * FROM tasks WHERE task LIKE '%gym%'"}
	s := New(m, prompts.NewCache(""))

	got, err := s.Synthesize(context.Background(), "what gym sessions do I have")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	want := "SELECT * FROM tasks WHERE task LIKE '%gym%';"
	if got != want {
		t.Errorf("Synthesize = %q, want %q", got, want)
	}
}

func TestSynthesizeRejectsDestructiveOutput(t *testing.T) {
	m := &mockChatModel{response: "DROP TABLE tasks;"}
	s := New(m, prompts.NewCache(""))

	got, err := s.Synthesize(context.Background(), "delete everything")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if got != DefaultQuery {
		t.Errorf("Synthesize = %q, want default %q", got, DefaultQuery)
	}
}

func TestSynthesizeEmptyInput(t *testing.T) {
	m := &mockChatModel{response: "should not be called"}
	s := New(m, prompts.NewCache(""))

	got, err := s.Synthesize(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if got != DefaultQuery {
		t.Errorf("Synthesize = %q, want default %q", got, DefaultQuery)
	}
	if m.calls != 0 {
		t.Errorf("model was called %d times for empty input, want 0", m.calls)
	}
}

func TestSynthesizeTransportError(t *testing.T) {
	m := &mockChatModel{err: errors.New("connection refused")}
	s := New(m, prompts.NewCache(""))

	_, err := s.Synthesize(context.Background(), "show my tasks")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var synthErr *SynthesisError
	if errors.As(err, &synthErr) {
		t.Errorf("transport failure %v should not be a *SynthesisError", err)
	}
}

func TestSynthesizeShapeError(t *testing.T) {
	m := &mockChatModel{nilMessage: true}
	s := New(m, prompts.NewCache(""))

	_, err := s.Synthesize(context.Background(), "show my tasks")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var synthErr *SynthesisError
	if !errors.As(err, &synthErr) {
		t.Errorf("shape failure %v is not a *SynthesisError", err)
	}
}
