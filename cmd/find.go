/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/os-dave/voiceplan/internal/logger"
	"github.com/os-dave/voiceplan/internal/ui"
)

var findCmd = &cobra.Command{
	Use:   "find [criteria]",
	Short: "Retrieve tasks matching described criteria",
	Long: `Find turns a natural language description of what you're looking for
into a query over your stored tasks.

Example:
  voiceplan find "everything due this week about the gym"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		logger.SetCommand("find")
		logger.SetLastUtterance(text)

		planner, _, err := newPlanner(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = planner.Store().Close() }()

		spinner := ui.NewSpinner("Searching...")
		if ui.IsInteractive() {
			spinner.Start()
		}
		tasks, stmt, err := planner.RetrieveTasks(cmd.Context(), text)
		spinner.Stop()

		if err != nil {
			return err
		}
		verboseLogf("executed: %s", stmt)

		fmt.Print(ui.RenderTaskTable(tasks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
