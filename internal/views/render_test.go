package views

import (
	"strings"
	"testing"

	"github.com/sandeepkv93/todo/internal/model"
)

func TestFormatEntry(t *testing.T) {
	due := model.NewDate(2025, 7, 1)
	e := Entry{Number: 3, Task: model.Task{
		Title:      "Dentist",
		DueDate:    &due,
		Priority:   model.PriorityHigh,
		Recurring:  model.RecurrenceYearly,
		Categories: []int{4},
	}}
	got := FormatEntry(e, model.SeedCategories())
	want := "3. [ ] Dentist (Due: 2025-07-01) (Priority: High) (Categories: Health) (Recurring: yearly)"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestRenderListEmpty(t *testing.T) {
	if got := RenderList(nil, nil); got != "No tasks found." {
		t.Fatalf("unexpected empty rendering: %q", got)
	}
}

func TestRenderListContainsEveryEntry(t *testing.T) {
	entries := []Entry{
		{Number: 1, Task: model.Task{Title: "one", Priority: model.PriorityLow}},
		{Number: 2, Task: model.Task{Title: "two", Priority: model.PriorityLow, Completed: true}, Class: ColorDone},
	}
	out := RenderList(entries, nil)
	if !strings.Contains(out, "1. [ ] one") || !strings.Contains(out, "2. [x] two") {
		t.Fatalf("unexpected list: %q", out)
	}
}

func TestRenderCategories(t *testing.T) {
	out := RenderCategories(model.SeedCategories())
	if !strings.Contains(out, "1. Work") || !strings.Contains(out, "5. Finance") {
		t.Fatalf("unexpected categories: %q", out)
	}
}

func TestRenderAppSections(t *testing.T) {
	out := RenderApp(AppData{
		Header:     "todo",
		Body:       "1. [ ] one",
		Menu:       "1. View all tasks",
		Prompt:     "Choose an option: ",
		StatusLine: "saved",
		Footer:     "enter submit",
	})
	for _, want := range []string{"todo", "1. [ ] one", "1. View all tasks", "Choose an option:", "saved", "enter submit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "View all tasks") > strings.Index(out, "Choose an option") {
		t.Fatal("menu must precede the prompt")
	}
}
