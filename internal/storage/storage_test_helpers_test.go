package storage

import (
	"slices"
	"testing"
	"time"

	"github.com/sandeepkv93/todo/internal/model"
)

func sampleTasks(t *testing.T) []model.Task {
	t.Helper()
	due := model.NewDate(2025, time.March, 14)
	done := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	return []model.Task{
		{
			ID:         "task-1",
			Title:      "Renew passport",
			DueDate:    &due,
			Priority:   model.PriorityHigh,
			Recurring:  model.RecurrenceYearly,
			Categories: []int{2, 5},
		},
		{
			ID:                  "task-2",
			Title:               "Buy milk",
			Completed:           true,
			Priority:            model.PriorityLow,
			Categories:          []int{},
			CompletionTimestamp: &done,
		},
	}
}

func assertSameTasks(t *testing.T, got, want []model.Task) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("task count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Title != w.Title || g.Completed != w.Completed || g.Priority != w.Priority || g.Recurring != w.Recurring {
			t.Fatalf("task %d mismatch:\n got %+v\nwant %+v", i, g, w)
		}
		if !slices.Equal(g.Categories, w.Categories) {
			t.Fatalf("task %d categories = %v, want %v", i, g.Categories, w.Categories)
		}
		if (g.DueDate == nil) != (w.DueDate == nil) || (g.DueDate != nil && !g.DueDate.Equal(*w.DueDate)) {
			t.Fatalf("task %d due date = %v, want %v", i, g.DueDate, w.DueDate)
		}
		if (g.CompletionTimestamp == nil) != (w.CompletionTimestamp == nil) ||
			(g.CompletionTimestamp != nil && !g.CompletionTimestamp.Equal(*w.CompletionTimestamp)) {
			t.Fatalf("task %d completion timestamp = %v, want %v", i, g.CompletionTimestamp, w.CompletionTimestamp)
		}
	}
}
