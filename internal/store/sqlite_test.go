package store

import (
	"path/filepath"
	"testing"

	"github.com/os-dave/voiceplan/models"
)

func newTestStore(t *testing.T) *TaskStore {
	t.Helper()
	s, err := NewTaskStore(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("NewTaskStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInsertAndGetTask(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertTask(models.Task{
		Task:      "go to the gym",
		Timeframe: "tomorrow",
		Details:   "leg day at 3:30 p.m.",
		DueDate:   "2024-08-01 15:30:00",
	})
	if err != nil {
		t.Fatalf("InsertTask: %v", err)
	}
	if id == 0 {
		t.Fatal("InsertTask returned id 0")
	}

	got, err := s.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Task != "go to the gym" || got.Timeframe != "tomorrow" {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.DueDate != "2024-08-01 15:30:00" {
		t.Errorf("DueDate = %q, want %q", got.DueDate, "2024-08-01 15:30:00")
	}
}

func TestInsertTaskEmptyOptionalFieldsStoredAsNull(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertTask(models.Task{Task: "call mom", Timeframe: "this week"})
	if err != nil {
		t.Fatalf("InsertTask: %v", err)
	}

	var count int
	err = s.DB().QueryRow("SELECT COUNT(*) FROM tasks WHERE id = ? AND due_date IS NULL AND details IS NULL", id).Scan(&count)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 {
		t.Errorf("empty optional fields not stored as NULL")
	}
}

func TestInsertTaskRejectsMissingRequiredFields(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.InsertTask(models.Task{Timeframe: "today"}); err == nil {
		t.Error("expected error for missing task name")
	}
	if _, err := s.InsertTask(models.Task{Task: "water plants"}); err == nil {
		t.Error("expected error for missing timeframe")
	}
}

func TestSelectTasks(t *testing.T) {
	s := newTestStore(t)

	seed := []models.Task{
		{Task: "go to the gym", Timeframe: "tomorrow", DueDate: "2024-08-01 15:30:00"},
		{Task: "buy groceries", Timeframe: "today"},
		{Task: "gym membership renewal", Timeframe: "next month"},
	}
	for _, task := range seed {
		if _, err := s.InsertTask(task); err != nil {
			t.Fatalf("InsertTask: %v", err)
		}
	}

	got, err := s.SelectTasks("SELECT * FROM tasks WHERE task LIKE '%gym%';")
	if err != nil {
		t.Fatalf("SelectTasks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got))
	}

	all, err := s.ListTasks()
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListTasks returned %d tasks, want 3", len(all))
	}
}

func TestSelectTasksEmptyResult(t *testing.T) {
	s := newTestStore(t)

	got, err := s.SelectTasks("SELECT * FROM tasks;")
	if err != nil {
		t.Fatalf("SelectTasks: %v", err)
	}
	if got == nil {
		t.Error("SelectTasks returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("got %d tasks, want 0", len(got))
	}
}

func TestSelectTasksBadColumnDegrades(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.InsertTask(models.Task{Task: "go to the gym", Timeframe: "today"}); err != nil {
		t.Fatalf("InsertTask: %v", err)
	}

	// A well-formed SELECT over a column that doesn't exist must surface an
	// error with no rows, not panic or return partial data.
	tasks, err := s.SelectTasks("SELECT * FROM tasks WHERE no_such_column = 1;")
	if err == nil {
		t.Fatal("expected error for unknown column")
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks from a failed query, want 0", len(tasks))
	}

	// The store stays usable after the failed query.
	count, err := s.CountTasks()
	if err != nil {
		t.Fatalf("CountTasks after failed query: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestDeleteTask(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertTask(models.Task{Task: "water plants", Timeframe: "today"})
	if err != nil {
		t.Fatalf("InsertTask: %v", err)
	}

	if err := s.DeleteTask(id); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := s.DeleteTask(id); err == nil {
		t.Error("expected error deleting missing task")
	}
}

func TestCountTasks(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.InsertTask(models.Task{Task: "a", Timeframe: "today"}); err != nil {
		t.Fatalf("InsertTask: %v", err)
	}
	if _, err := s.InsertTask(models.Task{Task: "b", Timeframe: "today"}); err != nil {
		t.Fatalf("InsertTask: %v", err)
	}

	count, err := s.CountTasks()
	if err != nil {
		t.Fatalf("CountTasks: %v", err)
	}
	if count != 2 {
		t.Errorf("CountTasks = %d, want 2", count)
	}
}

func TestSchemaIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.db")

	s1, err := NewTaskStore(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	id, err := s1.InsertTask(models.Task{Task: "persisted", Timeframe: "today"})
	if err != nil {
		t.Fatalf("InsertTask: %v", err)
	}
	_ = s1.Close()

	s2, err := NewTaskStore(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer func() { _ = s2.Close() }()

	got, err := s2.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask after reopen: %v", err)
	}
	if got.Task != "persisted" {
		t.Errorf("task not persisted across reopen: %+v", got)
	}
}
