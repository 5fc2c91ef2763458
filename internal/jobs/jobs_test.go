package jobs

import (
	"testing"
	"time"

	"github.com/sandeepkv93/todo/internal/model"
)

func date(y int, m time.Month, d int) *model.Date {
	out := model.NewDate(y, m, d)
	return &out
}

func sampleTasks() []model.Task {
	done := model.Task{ID: "4", Title: "Filed taxes", DueDate: date(2025, time.April, 1), Priority: model.PriorityHigh, Categories: []int{5}}
	done.SetCompleted(true, time.Date(2025, time.March, 30, 18, 0, 0, 0, time.UTC))
	return []model.Task{
		{ID: "1", Title: "Renew passport", DueDate: date(2025, time.May, 1), Priority: model.PriorityHigh, Categories: []int{2}},
		{ID: "2", Title: "Dentist", DueDate: date(2025, time.May, 10), Priority: model.PriorityMedium, Categories: []int{4}},
		{ID: "3", Title: "Groceries", DueDate: date(2025, time.May, 11), Priority: model.PriorityLow, Recurring: model.RecurrenceWeekly, Categories: []int{3}},
		done,
		{ID: "5", Title: "Read a book", Priority: model.PriorityLow, Categories: []int{}},
	}
}

func ids(tasks []model.Task) string {
	out := ""
	for _, t := range tasks {
		out += t.ID
	}
	return out
}

func TestOverdueExcludesCompletedAndToday(t *testing.T) {
	today := model.NewDate(2025, time.May, 10)
	if got := ids(Overdue(sampleTasks(), today)); got != "1" {
		t.Fatalf("expected only task 1 overdue, got %q", got)
	}
}

func TestDueSoonWindowIsInclusive(t *testing.T) {
	today := model.NewDate(2025, time.May, 10)
	cases := []struct {
		days int
		want string
	}{
		{0, "2"},
		{1, "23"},
		{30, "23"},
	}
	for _, tc := range cases {
		if got := ids(DueSoon(sampleTasks(), today, tc.days)); got != tc.want {
			t.Fatalf("days=%d: expected %q got %q", tc.days, tc.want, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	r := Summarize(sampleTasks(), model.NewDate(2025, time.May, 10))
	if r.Total != 5 || r.Completed != 1 || r.Pending != 4 || r.Overdue != 1 {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.String() != "Total tasks: 5\nCompleted tasks: 1\nOverdue tasks: 1" {
		t.Fatalf("unexpected report text %q", r.String())
	}
}

func TestSummarizeEmpty(t *testing.T) {
	r := Summarize(nil, model.NewDate(2025, time.May, 10))
	if r != (Report{}) {
		t.Fatalf("expected zero report, got %+v", r)
	}
}
