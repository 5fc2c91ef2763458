package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxTitleLength = 60

var (
	ErrEmptyTitle      = errors.New("model: task title is required")
	ErrTitleTooLong    = errors.New("model: task title too long")
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidID       = errors.New("model: task id is required")
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank orders priorities High < Medium < Low. Unknown values rank as Medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityLow:
		return 3
	default:
		return 2
	}
}

// ParsePriority accepts any casing and returns the canonical value.
func ParsePriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*p = PriorityMedium
		return nil
	}
	parsed, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type Task struct {
	ID                  string     `json:"id" yaml:"id"`
	Title               string     `json:"title" yaml:"title"`
	Completed           bool       `json:"completed" yaml:"completed"`
	DueDate             *Date      `json:"due_date" yaml:"due_date"`
	Priority            Priority   `json:"priority" yaml:"priority"`
	Recurring           Recurrence `json:"recurring" yaml:"recurring"`
	Categories          []int      `json:"categories" yaml:"categories"`
	CompletionTimestamp *time.Time `json:"completion_timestamp" yaml:"completion_timestamp"`
}

// ValidateTitle trims the title and enforces the length bounds.
func ValidateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return "", fmt.Errorf("%w: %d characters (max %d)", ErrTitleTooLong, n, MaxTitleLength)
	}
	return title, nil
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrInvalidID
	}
	if _, err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Recurring.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRecurrence, t.Recurring)
	}
	if t.DueDate != nil {
		if err := CheckDueDate(*t.DueDate); err != nil {
			return err
		}
	}
	if t.Completed && t.CompletionTimestamp == nil {
		return errors.New("model: completion_timestamp is required when task is completed")
	}
	if !t.Completed && t.CompletionTimestamp != nil {
		return errors.New("model: completion_timestamp must be nil when task is not completed")
	}
	return nil
}

// HasCategory reports whether id is in the task's category set.
func (t Task) HasCategory(id int) bool {
	return slices.Contains(t.Categories, id)
}

// IsOverdue reports whether the task is due strictly before today.
func (t Task) IsOverdue(today Date) bool {
	return t.DueDate != nil && t.DueDate.Before(today)
}

// IsDueWithin reports whether the due date falls in [today, today+days].
func (t Task) IsDueWithin(today Date, days int) bool {
	if t.DueDate == nil || days < 0 {
		return false
	}
	return !t.DueDate.Before(today) && !t.DueDate.After(today.AddDays(days))
}

// SetCompleted flips the completion flag and keeps the timestamp in step.
func (t *Task) SetCompleted(done bool, now time.Time) {
	t.Completed = done
	if done {
		stamp := now.UTC().Truncate(time.Second)
		t.CompletionTimestamp = &stamp
		return
	}
	t.CompletionTimestamp = nil
}

// NormalizeCategories sorts ids and drops duplicates. The result is never nil.
func NormalizeCategories(ids []int) []int {
	out := append([]int{}, ids...)
	slices.Sort(out)
	return slices.Compact(out)
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	out := t
	out.Categories = append([]int{}, t.Categories...)
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.CompletionTimestamp != nil {
		ts := *t.CompletionTimestamp
		out.CompletionTimestamp = &ts
	}
	return out
}
