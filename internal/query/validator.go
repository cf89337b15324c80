package query

import (
	"regexp"
	"strings"
)

// DefaultQuery is the safe fallback when the model's output cannot be
// validated. It trades precision for safety: the user sees every task rather
// than the result of an untrusted statement.
const DefaultQuery = "SELECT * FROM tasks;"

// selectStartRe locates the start of a SELECT statement, skipping any prose
// the model wrapped around it ("Here is the query: ...").
var selectStartRe = regexp.MustCompile(`(?i)\bselect\b`)

// ValidateQuery normalizes untrusted model output into a single, terminated,
// read-only statement. It is an allow-list transform: anything that does not
// contain a SELECT is replaced by DefaultQuery, never executed. It does not
// return errors; malformed input degrades to the default.
//
// Validation is idempotent: an already-valid `SELECT ...;` passes through
// unchanged.
func ValidateQuery(raw string) string {
	cleaned := stripFences(raw)

	loc := selectStartRe.FindStringIndex(cleaned)
	if loc == nil {
		return DefaultQuery
	}
	stmt := strings.TrimSpace(cleaned[loc[0]:])

	// Keep only the first statement; nothing after a terminator may run.
	if i := strings.Index(stmt, ";"); i >= 0 {
		stmt = stmt[:i+1]
	}

	if !strings.HasPrefix(strings.ToLower(stmt), "select") {
		return DefaultQuery
	}

	if !strings.HasSuffix(stmt, ";") {
		stmt += ";"
	}
	return stmt
}

// stripFences removes markdown code fence markers the model may have wrapped
// the statement in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```sql") {
		s = strings.TrimPrefix(s, "```sql")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
