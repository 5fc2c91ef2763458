package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Recurrence string

// RecurrenceNone marks a one-time task.
const RecurrenceNone Recurrence = ""

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

var (
	ErrInvalidRecurrence = errors.New("model: invalid recurrence")
	ErrNoDueDate         = errors.New("model: task has no due date")
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	default:
		return false
	}
}

func (r Recurrence) IsSet() bool { return r != RecurrenceNone }

// ParseRecurrence maps blank and "none" to RecurrenceNone.
func ParseRecurrence(raw string) (Recurrence, error) {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "", "none":
		return RecurrenceNone, nil
	case "daily", "weekly", "monthly", "yearly":
		return Recurrence(v), nil
	default:
		return RecurrenceNone, fmt.Errorf("%w: %q", ErrInvalidRecurrence, raw)
	}
}

// IntervalDays is a fixed offset: months are 30 days and years 365.
func (r Recurrence) IntervalDays() int {
	switch r {
	case RecurrenceDaily:
		return 1
	case RecurrenceWeekly:
		return 7
	case RecurrenceMonthly:
		return 30
	case RecurrenceYearly:
		return 365
	default:
		return 0
	}
}

// NextDue returns the due date of the occurrence after due.
func (r Recurrence) NextDue(due *Date) (Date, error) {
	if !r.IsSet() || !r.IsValid() {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidRecurrence, r)
	}
	if due == nil {
		return Date{}, ErrNoDueDate
	}
	return due.AddDays(r.IntervalDays()), nil
}

func (r Recurrence) MarshalJSON() ([]byte, error) {
	if r == RecurrenceNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(r))
}

func (r *Recurrence) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = RecurrenceNone
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseRecurrence(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Recurrence) MarshalYAML() (any, error) {
	if r == RecurrenceNone {
		return nil, nil
	}
	return string(r), nil
}
