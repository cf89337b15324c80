package ui

import (
	"fmt"
	"strings"

	"github.com/os-dave/voiceplan/models"
)

// RenderTaskTable renders tasks as an aligned text table. Empty due dates
// render as a dash so the column stays scannable.
func RenderTaskTable(tasks []models.Task) string {
	if len(tasks) == 0 {
		return StyleSubtle.Render("No tasks found.")
	}

	headers := []string{"ID", "TASK", "TIMEFRAME", "DUE", "DETAILS"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		row := []string{
			fmt.Sprintf("%d", t.ID),
			Truncate(t.Task, 40),
			Truncate(t.Timeframe, 20),
			due,
			Truncate(t.Details, 40),
		}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(StyleTitle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
