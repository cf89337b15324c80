/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/os-dave/voiceplan/internal/extract"
	"github.com/os-dave/voiceplan/internal/logger"
	"github.com/os-dave/voiceplan/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Create a task from a natural language description",
	Long: `Add extracts a structured task from free-form text, resolves the due
date and stores it.

Example:
  voiceplan add "remind me to go to the gym tomorrow, leg day at 3:30 p.m."`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		logger.SetCommand("add")
		logger.SetLastUtterance(text)

		planner, _, err := newPlanner(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = planner.Store().Close() }()

		spinner := ui.NewSpinner("Extracting task...")
		if ui.IsInteractive() {
			spinner.Start()
		}
		task, err := planner.CreateTask(cmd.Context(), text)
		spinner.Stop()

		if err != nil {
			var extractErr *extract.ExtractionError
			if errors.As(err, &extractErr) {
				return fmt.Errorf("couldn't understand that as a task: %s", extractErr.Reason)
			}
			return err
		}

		due := task.DueDate
		if due == "" {
			due = "no due date"
		}
		fmt.Println(ui.RenderSuccessPanel(
			fmt.Sprintf("Task #%d created", task.ID),
			fmt.Sprintf("%s (%s, %s)", task.Task, task.Timeframe, due),
		))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
