package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DueDateLayout is the canonical textual representation for stored due dates.
// It is lexicographically sortable, which the retrieval queries rely on.
const DueDateLayout = "2006-01-02 15:04:05"

// Task represents a single persisted task record. Records are immutable after
// insertion; the store assigns ID and never reuses it.
type Task struct {
	ID        int64  `json:"id" yaml:"id"`
	Task      string `json:"task" yaml:"task" validate:"required,min=1"`
	Timeframe string `json:"timeframe" yaml:"timeframe" validate:"required,min=1"`
	Details   string `json:"details,omitempty" yaml:"details,omitempty"`
	// DueDate holds the resolved absolute timestamp in DueDateLayout, or ""
	// when no due date could be resolved. Either a full date+time or nothing.
	DueDate string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// Draft is the extractor's pre-insert candidate: the four fields the model is
// asked to produce. DueDate here is still raw text (a calendar date string or
// empty), not yet resolved to a timestamp.
type Draft struct {
	Task      string `json:"task" validate:"required,min=1"`
	Timeframe string `json:"timeframe" validate:"required,min=1"`
	DueDate   string `json:"due_date"`
	Details   string `json:"details"`
}

// DueTime parses the stored due date back into a time.Time.
// The second return value is false when no due date is set.
func (t Task) DueTime() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(DueDateLayout, t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
