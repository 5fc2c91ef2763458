package views

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

var ErrInvalidSortKey = errors.New("views: invalid sort key")

type SortKey string

const (
	SortNone     SortKey = ""
	SortDueDate  SortKey = "due_date"
	SortPriority SortKey = "priority"
	SortCategory SortKey = "category"
)

func ParseSortKey(raw string) (SortKey, error) {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "", "none":
		return SortNone, nil
	case "due_date", "due", "date":
		return SortDueDate, nil
	case "priority":
		return SortPriority, nil
	case "category", "categories":
		return SortCategory, nil
	default:
		return SortNone, fmt.Errorf("%w: %q", ErrInvalidSortKey, raw)
	}
}

// ColorClass is the display class of a task, in precedence order.
type ColorClass int

const (
	ColorNeutral ColorClass = iota
	ColorDone
	ColorAlert
	ColorWarning
)

func (c ColorClass) String() string {
	switch c {
	case ColorDone:
		return "done"
	case ColorAlert:
		return "alert"
	case ColorWarning:
		return "warning"
	default:
		return "neutral"
	}
}

// Classify applies completed > overdue > high priority > neutral.
func Classify(t model.Task, today model.Date) ColorClass {
	switch {
	case t.Completed:
		return ColorDone
	case t.IsOverdue(today):
		return ColorAlert
	case t.Priority == model.PriorityHigh:
		return ColorWarning
	default:
		return ColorNeutral
	}
}

type Query struct {
	ShowAll  bool
	SortBy   SortKey
	Category int // 0 means no filter
	Search   string
}

// Entry is one displayed task with its 1-based display number.
type Entry struct {
	Number int
	Task   model.Task
	Class  ColorClass
}

// Render filters and sorts tasks for display. The input is not modified.
func Render(tasks []model.Task, q Query, today model.Date) []Entry {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !q.ShowAll && t.Completed {
			continue
		}
		if q.Category != 0 && !t.HasCategory(q.Category) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}
		filtered = append(filtered, t.Clone())
	}

	switch q.SortBy {
	case SortDueDate:
		slices.SortStableFunc(filtered, compareDueDate)
	case SortPriority:
		slices.SortStableFunc(filtered, func(a, b model.Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		})
	case SortCategory:
		slices.SortStableFunc(filtered, compareCategories)
	}

	out := make([]Entry, 0, len(filtered))
	for i, t := range filtered {
		out = append(out, Entry{Number: i + 1, Task: t, Class: Classify(t, today)})
	}
	return out
}

// Tasks strips the display metadata from entries.
func Tasks(entries []Entry) []model.Task {
	out := make([]model.Task, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Task)
	}
	return out
}

// missing due dates sort last
func compareDueDate(a, b model.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	default:
		return a.DueDate.Compare(*b.DueDate)
	}
}

func compareCategories(a, b model.Task) int {
	ac, bc := model.NormalizeCategories(a.Categories), model.NormalizeCategories(b.Categories)
	switch {
	case len(ac) == 0 && len(bc) == 0:
		return 0
	case len(ac) == 0:
		return 1
	case len(bc) == 0:
		return -1
	default:
		return slices.Compare(ac, bc)
	}
}
