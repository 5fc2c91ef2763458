package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDueDate(t *testing.T) {
	d, err := ParseDueDate("2025-01-01")
	if err != nil {
		t.Fatalf("minimum date should be accepted: %v", err)
	}
	if !d.Equal(MinDueDate) {
		t.Fatalf("unexpected date: %s", d)
	}
	if _, err := ParseDueDate("2024-12-31"); !errors.Is(err, ErrDateTooEarly) {
		t.Fatalf("expected ErrDateTooEarly, got %v", err)
	}
	for _, bad := range []string{"2025/01/01", "2025-02-30", "tomorrow"} {
		if _, err := ParseDueDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDueDate(%q): expected ErrInvalidDate, got %v", bad, err)
		}
	}
}

func TestDateOfUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("east", 10*60*60)
	tm := time.Date(2025, 3, 2, 1, 0, 0, 0, loc)
	if got := DateOf(tm).String(); got != "2025-03-02" {
		t.Fatalf("expected local date, got %s", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.July, 4)
	raw, err := json.Marshal(d)
	if err != nil || string(raw) != `"2025-07-04"` {
		t.Fatalf("marshal: %s %v", raw, err)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil || !back.Equal(d) {
		t.Fatalf("unmarshal: %s %v", back, err)
	}
	if err := json.Unmarshal([]byte(`"07/04/2025"`), &back); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
