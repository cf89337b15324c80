/*
Copyright © 2025 os-dave
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks as YAML or JSON",
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

		switch exportFormat {
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(tasks); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			return enc.Close()
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tasks)
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", exportFormat)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(exportCmd)
}
