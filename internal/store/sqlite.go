// Package store persists tasks in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/os-dave/voiceplan/models"
)

// TaskStore is a SQLite-backed task store.
type TaskStore struct {
	db   *sql.DB
	path string
}

// NewTaskStore opens (or creates) the task database at dbPath and ensures the
// schema exists. Pass ":memory:" for an ephemeral store.
func NewTaskStore(dbPath string) (*TaskStore, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create store directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &TaskStore{db: db, path: dbPath}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// initSchema creates the tasks table if it doesn't exist. Safe to run on
// every startup.
func (s *TaskStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task TEXT NOT NULL,
		timeframe TEXT NOT NULL,
		details TEXT,
		due_date TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// InsertTask stores a task and returns its assigned row id. Empty optional
// fields are stored as NULL so date queries can rely on IS NULL checks.
func (s *TaskStore) InsertTask(t models.Task) (int64, error) {
	if err := models.ValidateStruct(t); err != nil {
		return 0, fmt.Errorf("validate task: %w", err)
	}

	result, err := s.db.Exec(`
		INSERT INTO tasks (task, timeframe, details, due_date)
		VALUES (?, ?, ?, ?)
	`, t.Task, t.Timeframe, nullable(t.Details), nullable(t.DueDate))
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// SelectTasks runs a validated read-only statement and scans the results.
// A query returning no rows yields an empty slice, not an error.
func (s *TaskStore) SelectTasks(query string) ([]models.Task, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var details, dueDate sql.NullString
		if err := rows.Scan(&t.ID, &t.Task, &t.Timeframe, &details, &dueDate); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Details = details.String
		t.DueDate = dueDate.String
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// ListTasks returns every stored task in insertion order.
func (s *TaskStore) ListTasks() ([]models.Task, error) {
	return s.SelectTasks("SELECT * FROM tasks ORDER BY id;")
}

// GetTask retrieves a single task by id.
func (s *TaskStore) GetTask(id int64) (*models.Task, error) {
	var t models.Task
	var details, dueDate sql.NullString

	err := s.db.QueryRow(`
		SELECT id, task, timeframe, details, due_date FROM tasks WHERE id = ?
	`, id).Scan(&t.ID, &t.Task, &t.Timeframe, &details, &dueDate)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task not found: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}

	t.Details = details.String
	t.DueDate = dueDate.String
	return &t, nil
}

// DeleteTask removes a task by id.
func (s *TaskStore) DeleteTask(id int64) error {
	result, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task not found: %d", id)
	}
	return nil
}

// CountTasks returns the number of stored tasks.
func (s *TaskStore) CountTasks() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// Close releases the database handle.
func (s *TaskStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying database handle for callers that need raw access.
func (s *TaskStore) DB() *sql.DB {
	return s.db
}

// Path returns the location of the backing database file.
func (s *TaskStore) Path() string {
	return s.path
}

func nullable(v string) any {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return v
}
