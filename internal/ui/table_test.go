package ui

import (
	"strings"
	"testing"

	"github.com/os-dave/voiceplan/models"
)

func TestRenderTaskTable(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Task: "go to the gym", Timeframe: "tomorrow", DueDate: "2024-08-01 15:30:00"},
		{ID: 2, Task: "call mom", Timeframe: "soon"},
	}

	out := RenderTaskTable(tasks)

	for _, want := range []string{"go to the gym", "tomorrow", "2024-08-01 15:30:00", "call mom"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// Missing due date renders as a dash.
	if !strings.Contains(out, "-") {
		t.Errorf("table missing dash for empty due date:\n%s", out)
	}
}

func TestRenderTaskTableEmpty(t *testing.T) {
	out := RenderTaskTable(nil)
	if !strings.Contains(out, "No tasks") {
		t.Errorf("empty table output = %q", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"a longer string", 10, "a longe..."},
		{"abc", 0, "abc"},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
