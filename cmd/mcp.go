/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/os-dave/voiceplan/internal/app"
	"github.com/os-dave/voiceplan/models"
	"github.com/os-dave/voiceplan/types"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants can manage
your tasks over stdin/stdout.

Tools provided:
- task-create: create a task from natural language
- task-retrieve: find tasks by described criteria
- task-list: list all tasks
- task-delete: delete a task by id

The server will run until the client disconnects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(ctx context.Context) error {
	planner, _, err := newPlanner(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize planner: %w", err)
	}
	defer func() { _ = planner.Store().Close() }()

	impl := &mcp.Implementation{
		Name:    "voiceplan",
		Version: version,
	}
	server := mcp.NewServer(impl, &mcp.ServerOptions{})

	registerMCPTools(server, planner)

	// stdout must stay pure JSON-RPC; everything else goes to stderr.
	if err := server.Run(ctx, mcp.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func registerMCPTools(server *mcp.Server, planner *app.Planner) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "task-create",
		Description: "Create a task from a natural language description. Extracts the task, timeframe, details and due date, and returns the stored record with its id.",
	}, createTaskHandler(planner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task-retrieve",
		Description: "Retrieve tasks matching a natural language description of the criteria. Returns the matching tasks and the query that was run.",
	}, retrieveTasksHandler(planner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task-list",
		Description: "List every stored task.",
	}, listTasksHandler(planner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task-delete",
		Description: "Delete a task by its id.",
	}, deleteTaskHandler(planner))
}

func createTaskHandler(planner *app.Planner) mcp.ToolHandlerFor[types.CreateTaskParams, types.TaskResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.CreateTaskParams]) (*mcp.CallToolResultFor[types.TaskResponse], error) {
		if strings.TrimSpace(params.Arguments.Text) == "" {
			return nil, fmt.Errorf("text is required")
		}

		task, err := planner.CreateTask(ctx, params.Arguments.Text)
		if err != nil {
			return nil, err
		}
		return toolResult(taskResponse(*task))
	}
}

func retrieveTasksHandler(planner *app.Planner) mcp.ToolHandlerFor[types.RetrieveTasksParams, types.TaskListResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.RetrieveTasksParams]) (*mcp.CallToolResultFor[types.TaskListResponse], error) {
		tasks, stmt, err := planner.RetrieveTasks(ctx, params.Arguments.Text)
		if err != nil {
			return nil, err
		}
		return toolResult(taskListResponse(tasks, stmt))
	}
}

func listTasksHandler(planner *app.Planner) mcp.ToolHandlerFor[types.ListTasksParams, types.TaskListResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.ListTasksParams]) (*mcp.CallToolResultFor[types.TaskListResponse], error) {
		tasks, err := planner.ListTasks()
		if err != nil {
			return nil, err
		}
		return toolResult(taskListResponse(tasks, ""))
	}
}

func deleteTaskHandler(planner *app.Planner) mcp.ToolHandlerFor[types.DeleteTaskParams, types.DeleteTaskResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.DeleteTaskParams]) (*mcp.CallToolResultFor[types.DeleteTaskResponse], error) {
		if err := planner.DeleteTask(params.Arguments.ID); err != nil {
			return nil, err
		}
		return toolResult(types.DeleteTaskResponse{
			ID:      params.Arguments.ID,
			Message: fmt.Sprintf("task %d deleted", params.Arguments.ID),
		})
	}
}

func taskResponse(t models.Task) types.TaskResponse {
	return types.TaskResponse{
		ID:        t.ID,
		Task:      t.Task,
		Timeframe: t.Timeframe,
		Details:   t.Details,
		DueDate:   t.DueDate,
	}
}

func taskListResponse(tasks []models.Task, query string) types.TaskListResponse {
	resp := types.TaskListResponse{
		Count: len(tasks),
		Tasks: make([]types.TaskResponse, 0, len(tasks)),
		Query: query,
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, taskResponse(t))
	}
	return resp
}

// toolResult wraps a structured response as a JSON text result.
func toolResult[T any](v T) (*mcp.CallToolResultFor[T], error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResultFor[T]{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(data)}},
		StructuredContent: v,
	}, nil
}
