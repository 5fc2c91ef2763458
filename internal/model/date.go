package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("model: invalid date, use YYYY-MM-DD")
	ErrDateTooEarly = errors.New("model: due date is before the minimum date")
)

// MinDueDate is the earliest due date accepted for a task.
var MinDueDate = NewDate(2025, time.January, 1)

// Date is a calendar date without clock or zone.
type Date struct {
	t time.Time
}

func NewDate(y int, m time.Month, d int) Date {
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of tm in tm's location.
func DateOf(tm time.Time) Date {
	y, m, d := tm.Date()
	return NewDate(y, m, d)
}

func ParseDate(raw string) (Date, error) {
	tm, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Date{t: tm}, nil
}

// ParseDueDate parses raw and enforces the minimum due date.
func ParseDueDate(raw string) (Date, error) {
	d, err := ParseDate(raw)
	if err != nil {
		return Date{}, err
	}
	if err := CheckDueDate(d); err != nil {
		return Date{}, err
	}
	return d, nil
}

func CheckDueDate(d Date) error {
	if d.Before(MinDueDate) {
		return fmt.Errorf("%w: %s is before %s", ErrDateTooEarly, d, MinDueDate)
	}
	return nil
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Compare returns -1, 0 or 1.
func (d Date) Compare(o Date) int {
	return d.t.Compare(o.t)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}
