// Package jobs holds the read-only passes run over a task list: start-up
// alerts, the summary report and exports.
package jobs

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

// Overdue returns incomplete tasks due strictly before today, in list order.
func Overdue(tasks []model.Task, today model.Date) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if !t.Completed && t.IsOverdue(today) {
			out = append(out, t)
		}
	}
	return out
}

// DueSoon returns incomplete tasks due within [today, today+days].
func DueSoon(tasks []model.Task, today model.Date, days int) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if !t.Completed && t.IsDueWithin(today, days) {
			out = append(out, t)
		}
	}
	return out
}

type Report struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}

func Summarize(tasks []model.Task, today model.Date) Report {
	r := Report{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			r.Completed++
			continue
		}
		r.Pending++
		if t.IsOverdue(today) {
			r.Overdue++
		}
	}
	return r
}

// Markdown renders the report for glamour.
func (r Report) Markdown() string {
	var b strings.Builder
	b.WriteString("# Task report\n\n")
	b.WriteString("| | Count |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Total | %d |\n", r.Total)
	fmt.Fprintf(&b, "| Completed | %d |\n", r.Completed)
	fmt.Fprintf(&b, "| Pending | %d |\n", r.Pending)
	fmt.Fprintf(&b, "| Overdue | %d |\n", r.Overdue)
	return b.String()
}

func (r Report) String() string {
	return fmt.Sprintf("Total tasks: %d\nCompleted tasks: %d\nOverdue tasks: %d", r.Total, r.Completed, r.Overdue)
}
