// Package app coordinates extraction, due date resolution, query synthesis
// and storage behind the two operations the CLI exposes: creating tasks from
// natural language and retrieving them by described criteria.
package app

import (
	"context"
	"fmt"

	"github.com/os-dave/voiceplan/internal/due"
	"github.com/os-dave/voiceplan/internal/extract"
	"github.com/os-dave/voiceplan/internal/query"
	"github.com/os-dave/voiceplan/internal/store"
	"github.com/os-dave/voiceplan/models"
)

// Planner is the application core. Every command and MCP tool goes through
// it rather than touching the store or the model directly.
type Planner struct {
	store       *store.TaskStore
	extractor   *extract.Extractor
	resolver    *due.Resolver
	synthesizer *query.Synthesizer
}

// NewPlanner wires the collaborators together.
func NewPlanner(st *store.TaskStore, ex *extract.Extractor, res *due.Resolver, syn *query.Synthesizer) *Planner {
	return &Planner{
		store:       st,
		extractor:   ex,
		resolver:    res,
		synthesizer: syn,
	}
}

// CreateTask extracts a task record from free-form text, resolves its due
// timestamp and persists it. The returned task carries its assigned id and
// the resolved due date.
func (p *Planner) CreateTask(ctx context.Context, text string) (*models.Task, error) {
	draft, err := p.extractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		Task:      draft.Task,
		Timeframe: draft.Timeframe,
		Details:   draft.Details,
	}
	if resolved, ok := p.resolver.Resolve(draft.DueDate, draft.Details); ok {
		task.DueDate = resolved.Format(models.DueDateLayout)
	}

	id, err := p.store.InsertTask(task)
	if err != nil {
		return nil, fmt.Errorf("store task: %w", err)
	}
	task.ID = id

	return &task, nil
}

// RetrieveTasks synthesizes a query for the described criteria, runs it and
// returns both the tasks and the executed statement so callers can show what
// was asked of the store.
func (p *Planner) RetrieveTasks(ctx context.Context, text string) ([]models.Task, string, error) {
	stmt, err := p.synthesizer.Synthesize(ctx, text)
	if err != nil {
		return nil, "", err
	}

	tasks, err := p.store.SelectTasks(stmt)
	if err != nil {
		return nil, stmt, fmt.Errorf("run query: %w", err)
	}
	return tasks, stmt, nil
}

// ListTasks returns every stored task.
func (p *Planner) ListTasks() ([]models.Task, error) {
	return p.store.ListTasks()
}

// DeleteTask removes a task by id.
func (p *Planner) DeleteTask(id int64) error {
	return p.store.DeleteTask(id)
}

// Store exposes the underlying store for commands that need direct access.
func (p *Planner) Store() *store.TaskStore {
	return p.store
}
