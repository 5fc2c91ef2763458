package views

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/todo/internal/model"
)

var today = model.NewDate(2025, time.June, 15)

func date(t *testing.T, raw string) *model.Date {
	t.Helper()
	d, err := model.ParseDate(raw)
	if err != nil {
		t.Fatalf("parse date %q: %v", raw, err)
	}
	return &d
}

func titles(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Task.Title)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRenderSortsByPriority(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "low", Priority: model.PriorityLow},
		{ID: "2", Title: "high", Priority: model.PriorityHigh},
		{ID: "3", Title: "medium", Priority: model.PriorityMedium},
	}
	got := titles(Render(tasks, Query{ShowAll: true, SortBy: SortPriority}, today))
	if want := []string{"high", "medium", "low"}; !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRenderSortsMissingDueDateLast(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "none", Priority: model.PriorityMedium},
		{ID: "2", Title: "later", DueDate: date(t, "2025-09-01"), Priority: model.PriorityMedium},
		{ID: "3", Title: "sooner", DueDate: date(t, "2025-07-01"), Priority: model.PriorityMedium},
	}
	got := titles(Render(tasks, Query{ShowAll: true, SortBy: SortDueDate}, today))
	if want := []string{"sooner", "later", "none"}; !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRenderSortsByCategoryEmptyLast(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "none", Categories: []int{}},
		{ID: "2", Title: "finance", Categories: []int{5}},
		{ID: "3", Title: "work", Categories: []int{1, 4}},
		{ID: "4", Title: "work-only", Categories: []int{1}},
	}
	got := titles(Render(tasks, Query{ShowAll: true, SortBy: SortCategory}, today))
	if want := []string{"work-only", "work", "finance", "none"}; !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRenderSortIsStable(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "a", Priority: model.PriorityMedium},
		{ID: "2", Title: "b", Priority: model.PriorityHigh},
		{ID: "3", Title: "c", Priority: model.PriorityMedium},
	}
	got := titles(Render(tasks, Query{ShowAll: true, SortBy: SortPriority}, today))
	if want := []string{"b", "a", "c"}; !equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRenderFilters(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "Buy Milk", Categories: []int{3}},
		{ID: "2", Title: "Pay bills", Categories: []int{5}, Completed: true},
		{ID: "3", Title: "milk the cow", Categories: []int{2}},
	}
	pending := titles(Render(tasks, Query{}, today))
	if want := []string{"Buy Milk", "milk the cow"}; !equal(pending, want) {
		t.Fatalf("pending: got %v want %v", pending, want)
	}
	search := titles(Render(tasks, Query{ShowAll: true, Search: "MILK"}, today))
	if want := []string{"Buy Milk", "milk the cow"}; !equal(search, want) {
		t.Fatalf("search: got %v want %v", search, want)
	}
	category := titles(Render(tasks, Query{ShowAll: true, Category: 5}, today))
	if want := []string{"Pay bills"}; !equal(category, want) {
		t.Fatalf("category: got %v want %v", category, want)
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "b", Priority: model.PriorityLow, Categories: []int{2, 1}},
		{ID: "2", Title: "a", Priority: model.PriorityHigh},
	}
	entries := Render(tasks, Query{ShowAll: true, SortBy: SortCategory}, today)
	entries[0].Task.Categories[0] = 99
	if tasks[0].Title != "b" || tasks[0].Categories[0] != 2 {
		t.Fatalf("input modified: %+v", tasks)
	}
}

func TestRenderNumbersEntries(t *testing.T) {
	tasks := []model.Task{{ID: "1", Title: "x"}, {ID: "2", Title: "y"}}
	entries := Render(tasks, Query{ShowAll: true}, today)
	if entries[0].Number != 1 || entries[1].Number != 2 {
		t.Fatalf("unexpected numbering: %+v", entries)
	}
}

func TestClassifyPrecedence(t *testing.T) {
	past := date(t, "2025-06-01")
	cases := []struct {
		name string
		task model.Task
		want ColorClass
	}{
		{"completed wins", model.Task{Completed: true, DueDate: past, Priority: model.PriorityHigh}, ColorDone},
		{"overdue beats high", model.Task{DueDate: past, Priority: model.PriorityHigh}, ColorAlert},
		{"high", model.Task{Priority: model.PriorityHigh}, ColorWarning},
		{"neutral", model.Task{Priority: model.PriorityLow}, ColorNeutral},
		{"due today is not overdue", model.Task{DueDate: &today, Priority: model.PriorityLow}, ColorNeutral},
	}
	for _, tc := range cases {
		if got := Classify(tc.task, today); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	got, err := ParseSortKey("Due_Date")
	if err != nil || got != SortDueDate {
		t.Fatalf("unexpected: %q %v", got, err)
	}
	if _, err := ParseSortKey("title"); !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}
