/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/os-dave/voiceplan/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		st, err := newStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		if err := st.DeleteTask(id); err != nil {
			return err
		}
		fmt.Println(ui.StyleSuccess.Render(fmt.Sprintf("Deleted task #%d", id)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
