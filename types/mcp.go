/*
Copyright © 2025 os-dave
*/
package types

// CreateTaskParams for creating a task from natural language
type CreateTaskParams struct {
	Text string `json:"text" mcp:"Natural language description of the task (required)"`
}

// RetrieveTasksParams for retrieving tasks by described criteria
type RetrieveTasksParams struct {
	Text string `json:"text" mcp:"Natural language description of what to find (required)"`
}

// ListTasksParams for listing all tasks
type ListTasksParams struct{}

// DeleteTaskParams for deleting a task
type DeleteTaskParams struct {
	ID int64 `json:"id" mcp:"ID of the task to delete (required)"`
}

// TaskResponse is a single task in tool results
type TaskResponse struct {
	ID        int64  `json:"id"`
	Task      string `json:"task"`
	Timeframe string `json:"timeframe"`
	Details   string `json:"details,omitempty"`
	DueDate   string `json:"due_date,omitempty"`
}

// TaskListResponse is a collection of tasks in tool results
type TaskListResponse struct {
	Count int            `json:"count"`
	Tasks []TaskResponse `json:"tasks"`
	Query string         `json:"query,omitempty"`
}

// DeleteTaskResponse confirms a deletion
type DeleteTaskResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
