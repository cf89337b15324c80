package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/os-dave/voiceplan/internal/due"
	"github.com/os-dave/voiceplan/internal/extract"
	"github.com/os-dave/voiceplan/internal/query"
	"github.com/os-dave/voiceplan/internal/store"
	"github.com/os-dave/voiceplan/prompts"
)

type mockChatModel struct {
	response string
	err      error
}

func (m *mockChatModel) Generate(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &schema.Message{Role: schema.Assistant, Content: m.response}, nil
}

func (m *mockChatModel) Stream(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func newTestPlanner(t *testing.T, extractResp, queryResp string) *Planner {
	t.Helper()
	st, err := store.NewTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("NewTaskStore: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	return NewPlanner(
		st,
		extract.New(&mockChatModel{response: extractResp}, prompts.NewCache("")),
		due.NewResolver(),
		query.New(&mockChatModel{response: queryResp}, prompts.NewCache("")),
	)
}

func TestCreateTask(t *testing.T) {
	p := newTestPlanner(t, `{
		"task": "go to the gym",
		"timeframe": "tomorrow",
		"due_date": "2024-08-01",
		"details": "leg day at 3:30 p.m."
	}`, "")

	task, err := p.CreateTask(context.Background(), "remind me to go to the gym tomorrow, leg day at 3:30 p.m.")
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if task.ID == 0 {
		t.Error("task was not assigned an id")
	}
	if task.Task != "go to the gym" {
		t.Errorf("Task = %q", task.Task)
	}
	if task.DueDate != "2024-08-01 15:30:00" {
		t.Errorf("DueDate = %q, want %q", task.DueDate, "2024-08-01 15:30:00")
	}

	stored, err := p.ListTasks()
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d tasks, want 1", len(stored))
	}
	if stored[0].DueDate != task.DueDate {
		t.Errorf("stored DueDate = %q, want %q", stored[0].DueDate, task.DueDate)
	}
}

func TestCreateTaskUnresolvedDueDate(t *testing.T) {
	p := newTestPlanner(t, `{
		"task": "call mom",
		"timeframe": "soon",
		"due_date": "",
		"details": ""
	}`, "")

	task, err := p.CreateTask(context.Background(), "I should call mom soon")
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.DueDate != "" {
		t.Errorf("DueDate = %q, want empty for unresolvable date", task.DueDate)
	}
}

func TestCreateTaskExtractionFailure(t *testing.T) {
	p := newTestPlanner(t, "I couldn't understand that request.", "")

	_, err := p.CreateTask(context.Background(), "mumble mumble")
	if err == nil {
		t.Fatal("expected extraction error")
	}
	var extractErr *extract.ExtractionError
	if !errors.As(err, &extractErr) {
		t.Errorf("error %v is not an *extract.ExtractionError", err)
	}

	tasks, err := p.ListTasks()
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("failed extraction stored %d tasks, want 0", len(tasks))
	}
}

func TestRetrieveTasks(t *testing.T) {
	p := newTestPlanner(t, `{
		"task": "go to the gym",
		"timeframe": "tomorrow",
		"due_date": "2024-08-01",
		"details": ""
	}`, "SELECT * FROM tasks WHERE task LIKE '%gym%'")

	if _, err := p.CreateTask(context.Background(), "gym tomorrow"); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	tasks, stmt, err := p.RetrieveTasks(context.Background(), "what gym stuff do I have")
	if err != nil {
		t.Fatalf("RetrieveTasks: %v", err)
	}
	if stmt != "SELECT * FROM tasks WHERE task LIKE '%gym%';" {
		t.Errorf("executed statement = %q", stmt)
	}
	if len(tasks) != 1 {
		t.Errorf("got %d tasks, want 1", len(tasks))
	}
}

func TestRetrieveTasksDestructiveModelOutput(t *testing.T) {
	p := newTestPlanner(t, `{
		"task": "water plants",
		"timeframe": "today",
		"due_date": "",
		"details": ""
	}`, "DROP TABLE tasks;")

	if _, err := p.CreateTask(context.Background(), "water plants today"); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	tasks, stmt, err := p.RetrieveTasks(context.Background(), "wipe everything")
	if err != nil {
		t.Fatalf("RetrieveTasks: %v", err)
	}
	if stmt != query.DefaultQuery {
		t.Errorf("executed statement = %q, want default", stmt)
	}
	if len(tasks) != 1 {
		t.Errorf("got %d tasks, want 1; the table must survive", len(tasks))
	}
}
