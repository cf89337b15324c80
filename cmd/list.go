/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/os-dave/voiceplan/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		tasks, err := st.ListTasks()
		if err != nil {
			return err
		}
		fmt.Print(ui.RenderTaskTable(tasks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
