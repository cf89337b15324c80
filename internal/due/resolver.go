// Package due resolves a single absolute due timestamp from the loosely
// structured date and detail text the extractor produces.
package due

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultTimeOfDay is the time applied when the details carry no explicit
// time fragment. Midnight, not noon: a record due "2024-08-01" with no time
// sorts at the start of that day.
var DefaultTimeOfDay = TimeOfDay{Hour: 0, Minute: 0}

// TimeOfDay is a clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" into a TimeOfDay. Used for the
// resolver.defaultTime config key.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// timeOfDayRe matches a spoken time fragment such as "3:30 p.m." or "11:00 AM".
// 1-2 digit hour, colon, 2-digit minute, meridiem marker with or without periods.
var timeOfDayRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([ap])\.?m\.?`)

// Resolver combines a calendar date string and free-text details into one
// unambiguous timestamp.
type Resolver struct {
	// Default is applied when details contain no time-of-day fragment.
	Default TimeOfDay
	// Location anchors parsed dates; nil means time.Local.
	Location *time.Location
}

// NewResolver returns a resolver with the package default time-of-day policy.
func NewResolver() *Resolver {
	return &Resolver{Default: DefaultTimeOfDay}
}

// Resolve derives a full due timestamp from the due date candidate text and
// the task details. The second return value is false when no due date can be
// resolved; resolution never fails the surrounding save flow.
//
// A time fragment in details without a date is meaningless here, so an empty
// dueDate short-circuits to unresolved without consulting details.
func (r *Resolver) Resolve(dueDate, details string) (time.Time, bool) {
	dueDate = strings.TrimSpace(dueDate)
	if dueDate == "" {
		return time.Time{}, false
	}

	loc := r.Location
	if loc == nil {
		loc = time.Local
	}

	parsed, err := dateparse.ParseIn(dueDate, loc)
	if err != nil {
		return time.Time{}, false
	}

	tod := r.Default
	if hour, minute, ok := extractTimeOfDay(details); ok {
		tod = TimeOfDay{Hour: hour, Minute: minute}
	}

	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), tod.Hour, tod.Minute, 0, 0, loc), true
}

// extractTimeOfDay scans details for a meridiem-marked clock time.
func extractTimeOfDay(details string) (hour, minute int, ok bool) {
	m := timeOfDayRe.FindStringSubmatch(details)
	if m == nil {
		return 0, 0, false
	}

	hour, err1 := strconv.Atoi(m[1])
	minute, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, false
	}

	meridiem := strings.ToLower(m[3])
	if meridiem == "p" && hour != 12 {
		hour += 12
	}
	if meridiem == "a" && hour == 12 {
		hour = 0
	}

	return hour, minute, true
}
