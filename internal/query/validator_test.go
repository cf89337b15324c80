package query

import "testing"

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "valid terminated statement unchanged",
			raw:  "SELECT * FROM tasks WHERE timeframe = 'today';",
			want: "SELECT * FROM tasks WHERE timeframe = 'today';",
		},
		{
			name: "missing semicolon appended",
			raw:  "SELECT * FROM tasks WHERE due_date IS NOT NULL",
			want: "SELECT * FROM tasks WHERE due_date IS NOT NULL;",
		},
		{
			name: "leading prose stripped",
			raw:  "Here is the query:\nSELECT * FROM tasks WHERE task LIKE '%gym%'",
			want: "SELECT * FROM tasks WHERE task LIKE '%gym%';",
		},
		{
			name: "code fence stripped",
			raw:  "```sql\nSELECT * FROM tasks;\n```",
			want: "SELECT * FROM tasks;",
		},
		{
			name: "bare fence stripped",
			raw:  "```\nSELECT * FROM tasks WHERE details LIKE '%call%'\n```",
			want: "SELECT * FROM tasks WHERE details LIKE '%call%';",
		},
		{
			name: "destructive statement replaced",
			raw:  "DROP TABLE tasks;",
			want: DefaultQuery,
		},
		{
			name: "insert replaced",
			raw:  "INSERT INTO tasks (task) VALUES ('x');",
			want: DefaultQuery,
		},
		{
			name: "empty input replaced",
			raw:  "",
			want: DefaultQuery,
		},
		{
			name: "prose without select replaced",
			raw:  "I could not determine a query for that request.",
			want: DefaultQuery,
		},
		{
			name: "second statement dropped",
			raw:  "SELECT * FROM tasks; DROP TABLE tasks;",
			want: "SELECT * FROM tasks;",
		},
		{
			name: "lowercase select accepted",
			raw:  "select * from tasks where timeframe = 'this week'",
			want: "select * from tasks where timeframe = 'this week';",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateQuery(tt.raw)
			if got != tt.want {
				t.Errorf("ValidateQuery(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateQueryIdempotent(t *testing.T) {
	inputs := []string{
		"SELECT * FROM tasks;",
		"SELECT * FROM tasks WHERE task LIKE '%gym%';",
		"Here is the query:\nSELECT * FROM tasks WHERE task LIKE '%gym%'",
		"DROP TABLE tasks;",
	}
	for _, raw := range inputs {
		once := ValidateQuery(raw)
		twice := ValidateQuery(once)
		if once != twice {
			t.Errorf("ValidateQuery not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}
