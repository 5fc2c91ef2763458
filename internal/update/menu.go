package update

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/todo/internal/jobs"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/tasklist"
	"github.com/sandeepkv93/todo/internal/views"
)

type menuItem struct {
	label string
	run   func(m *Model)
}

var menu = []menuItem{
	{"View all tasks", (*Model).viewAll},
	{"View pending tasks", (*Model).viewPending},
	{"Add task", (*Model).startAdd},
	{"Remove task(s)", (*Model).startRemove},
	{"Edit task", (*Model).startEdit},
	{"Toggle task completion", (*Model).startToggle},
	{"Search tasks", (*Model).startSearch},
	{"Filter by category", (*Model).startFilter},
	{"Sort tasks", (*Model).startSort},
	{"Show report", (*Model).showReport},
	{"Export to CSV", func(m *Model) { m.startExport(jobs.FormatCSV) }},
	{"Export to JSON", func(m *Model) { m.startExport(jobs.FormatJSON) }},
	{"Archive completed tasks", (*Model).archive},
	{"List categories", (*Model).listCategories},
	{"Add category", (*Model).startAddCategory},
	{"Exit", (*Model).exit},
}

func renderMenu() string {
	lines := make([]string, 0, len(menu))
	for i, item := range menu {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, item.label))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) setStatus(text string) {
	m.Status = StatusBar{Text: text}
}

func (m *Model) setError(err error) {
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

// report sets the status from a batch result: msg when something was
// applied, followed by any per-item failures.
func (m *Model) report(msg string, err error) {
	switch {
	case err == nil:
		m.setStatus(msg)
	case msg == "":
		m.setError(err)
	default:
		m.Status = StatusBar{Text: msg + "; " + err.Error(), IsError: true}
	}
}

// showList renders the current query and makes it the numbering reference.
func (m *Model) showList(title string) {
	entries := m.Session.View(m.query)
	m.shown = views.Tasks(entries)
	m.Body = title + "\n" + views.RenderList(entries, m.Session.Categories)
}

func (m *Model) viewAll() {
	m.query = views.Query{ShowAll: true, SortBy: m.query.SortBy}
	m.showList("All tasks")
	m.setStatus(fmt.Sprintf("%d task(s)", len(m.shown)))
}

func (m *Model) viewPending() {
	m.query = views.Query{SortBy: m.query.SortBy}
	m.showList("Pending tasks")
	m.setStatus(fmt.Sprintf("%d pending task(s)", len(m.shown)))
}

func checkTitle(_ *Model, answer string) error {
	_, err := model.ValidateTitle(answer)
	return err
}

func checkDue(_ *Model, answer string) error {
	if answer == "" || strings.EqualFold(answer, "none") {
		return nil
	}
	_, err := model.ParseDueDate(answer)
	return err
}

func checkPriority(_ *Model, answer string) error {
	if answer == "" {
		return nil
	}
	_, err := model.ParsePriority(answer)
	return err
}

func checkRecurrence(_ *Model, answer string) error {
	_, err := model.ParseRecurrence(answer)
	return err
}

func checkCategories(m *Model, answer string) error {
	for _, token := range strings.Split(answer, ",") {
		token = strings.TrimSpace(token)
		if token == "" || strings.EqualFold(token, "none") {
			continue
		}
		if _, err := model.LookupCategory(m.Session.Categories, token); err != nil {
			return err
		}
	}
	return nil
}

func splitCategories(answer string) []string {
	if strings.TrimSpace(answer) == "" {
		return nil
	}
	return []string{answer}
}

func (m *Model) startAdd() {
	m.Body = "Categories\n" + views.RenderCategories(m.Session.Categories)
	m.startFlow(&flow{
		title: "Add task",
		prompts: []prompt{
			{label: "Title", placeholder: fmt.Sprintf("up to %d characters", model.MaxTitleLength), check: checkTitle},
			{label: "Due date", placeholder: "YYYY-MM-DD, blank for none", check: checkDue},
			{label: "Priority", placeholder: "High/Medium/Low, blank for " + string(m.Config.DefaultPriority), check: checkPriority},
			{label: "Recurrence", placeholder: "daily/weekly/monthly/yearly, blank for default", check: checkRecurrence},
			{label: "Categories", placeholder: "ids or names, comma-separated", check: checkCategories},
		},
		finish: func(m *Model, a []string) {
			due := a[1]
			if strings.EqualFold(due, "none") {
				due = ""
			}
			tasks, task, err := m.Session.Manager.Add(m.Session.Tasks, m.Session.Categories, tasklist.AddInput{
				Title:      a[0],
				DueDate:    due,
				Priority:   a[2],
				Recurring:  a[3],
				Categories: splitCategories(a[4]),
			})
			if err != nil {
				m.setError(err)
				return
			}
			if err := m.Session.Commit(m.ctx, tasks); err != nil {
				m.setError(err)
				return
			}
			m.showList("Pending tasks")
			m.setStatus(fmt.Sprintf("Task added: %s", task.Title))
		},
	})
}

// startSelection shows the current view and asks for display numbers.
func (m *Model) startSelection(title, label string, apply func(m *Model, ids []string, resolveErr error)) {
	m.showList(title)
	if len(m.shown) == 0 {
		m.setError(errors.New("no tasks to choose from"))
		return
	}
	m.startFlow(&flow{
		title:   title,
		prompts: []prompt{{label: label, placeholder: "e.g. 1,3"}},
		finish: func(m *Model, a []string) {
			ids, err := tasklist.Resolve(m.shown, a[0])
			if len(ids) == 0 {
				m.setError(err)
				return
			}
			apply(m, ids, err)
		},
	})
}

func (m *Model) startRemove() {
	m.startSelection("Remove task(s)", "Task number(s) to remove", func(m *Model, ids []string, resolveErr error) {
		kept, removed, err := m.Session.Manager.Remove(m.Session.Tasks, ids)
		err = tasklist.JoinErrors(resolveErr, err)
		if len(removed) == 0 {
			m.report("", err)
			return
		}
		if saveErr := m.Session.Commit(m.ctx, kept); saveErr != nil {
			m.setError(saveErr)
			return
		}
		m.showList("Tasks")
		m.report(fmt.Sprintf("Removed %d task(s)", len(removed)), err)
	})
}

func (m *Model) startToggle() {
	m.startSelection("Toggle completion", "Task number(s) to toggle", func(m *Model, ids []string, resolveErr error) {
		tasks, res, err := m.Session.Manager.Toggle(m.Session.Tasks, ids)
		err = tasklist.JoinErrors(resolveErr, err)
		if saveErr := m.Session.Commit(m.ctx, tasks); saveErr != nil {
			m.setError(saveErr)
			return
		}
		m.showList("Tasks")
		msg := fmt.Sprintf("Completed %d, reopened %d", len(res.Completed), len(res.Reopened))
		if len(res.Spawned) > 0 {
			msg += fmt.Sprintf(", scheduled %d next occurrence(s)", len(res.Spawned))
		}
		m.report(msg, err)
	})
}

func (m *Model) startEdit() {
	m.showList("Edit task")
	if len(m.shown) == 0 {
		m.setError(errors.New("no tasks to choose from"))
		return
	}
	var target string
	m.startFlow(&flow{
		title: "Edit task",
		prompts: []prompt{
			{label: "Task number", placeholder: "one number", check: func(m *Model, answer string) error {
				ids, err := tasklist.Resolve(m.shown, answer)
				if err != nil {
					return err
				}
				if len(ids) != 1 {
					return fmt.Errorf("%w: choose exactly one task", tasklist.ErrInvalidSelection)
				}
				target = ids[0]
				return nil
			}},
			{label: "New title", placeholder: "blank keeps current", check: func(m *Model, answer string) error {
				if answer == "" {
					return nil
				}
				return checkTitle(m, answer)
			}},
			{label: "New due date", placeholder: "YYYY-MM-DD, none clears, blank keeps", check: checkDue},
			{label: "New priority", placeholder: "High/Medium/Low, blank keeps", check: checkPriority},
			{label: "New recurrence", placeholder: "daily/weekly/monthly/yearly, none clears, blank keeps", check: checkRecurrence},
			{label: "New categories", placeholder: "ids or names, none clears, blank keeps", check: checkCategories},
		},
		finish: func(m *Model, a []string) {
			tasks, task, err := m.Session.Manager.Edit(m.Session.Tasks, m.Session.Categories, target, tasklist.EditInput{
				Title:      a[1],
				DueDate:    a[2],
				Priority:   a[3],
				Recurring:  a[4],
				Categories: splitCategories(a[5]),
			})
			if err != nil {
				m.setError(err)
				return
			}
			if err := m.Session.Commit(m.ctx, tasks); err != nil {
				m.setError(err)
				return
			}
			m.showList("Tasks")
			m.setStatus(fmt.Sprintf("Task updated: %s", task.Title))
		},
	})
}

func (m *Model) startSearch() {
	m.startFlow(&flow{
		title:   "Search",
		prompts: []prompt{{label: "Search text", placeholder: "part of a title"}},
		finish: func(m *Model, a []string) {
			m.query = views.Query{ShowAll: true, SortBy: m.query.SortBy, Search: a[0]}
			m.showList(fmt.Sprintf("Tasks matching %q", a[0]))
			m.setStatus(fmt.Sprintf("%d match(es)", len(m.shown)))
		},
	})
}

func (m *Model) startFilter() {
	m.Body = "Categories\n" + views.RenderCategories(m.Session.Categories)
	m.startFlow(&flow{
		title: "Filter by category",
		prompts: []prompt{{label: "Category", placeholder: "id or name", check: func(m *Model, answer string) error {
			_, err := model.LookupCategory(m.Session.Categories, answer)
			return err
		}}},
		finish: func(m *Model, a []string) {
			c, _ := model.LookupCategory(m.Session.Categories, a[0])
			m.query = views.Query{ShowAll: true, SortBy: m.query.SortBy, Category: c.ID}
			m.showList("Tasks in " + c.Name)
			m.setStatus(fmt.Sprintf("%d task(s) in %s", len(m.shown), c.Name))
		},
	})
}

func (m *Model) startSort() {
	m.startFlow(&flow{
		title: "Sort tasks",
		prompts: []prompt{{label: "Sort by", placeholder: "due_date, priority or category", check: func(_ *Model, answer string) error {
			_, err := views.ParseSortKey(answer)
			return err
		}}},
		finish: func(m *Model, a []string) {
			key, _ := views.ParseSortKey(a[0])
			m.query.SortBy = key
			m.showList("Tasks")
			if key == views.SortNone {
				m.setStatus("Sorting cleared")
				return
			}
			m.setStatus("Sorted by " + string(key))
		},
	})
}

func (m *Model) showReport() {
	r := jobs.Summarize(m.Session.Tasks, m.Session.Today())
	m.Body = views.RenderMarkdown(r.Markdown())
	m.setStatus(strings.ReplaceAll(r.String(), "\n", ", "))
}

func (m *Model) startExport(format jobs.Format) {
	m.startFlow(&flow{
		title:   "Export " + strings.ToUpper(string(format)),
		prompts: []prompt{{label: "File name", placeholder: format.DefaultPath()}},
		finish: func(m *Model, a []string) {
			path, err := jobs.ExportFile(a[0], format, m.Session.Tasks)
			if err != nil {
				m.setError(err)
				return
			}
			m.Session.Log.Info("exported tasks", "format", format, "path", path, "count", len(m.Session.Tasks))
			m.setStatus(fmt.Sprintf("Exported %d task(s) to %s", len(m.Session.Tasks), path))
		},
	})
}

func (m *Model) archive() {
	archived, err := m.Session.ArchiveCompleted(m.ctx)
	if err != nil {
		m.setError(err)
		return
	}
	if len(archived) == 0 {
		m.setStatus("No completed tasks to archive.")
		return
	}
	m.showList("Pending tasks")
	m.setStatus(fmt.Sprintf("Archived %d task(s)", len(archived)))
}

func (m *Model) listCategories() {
	m.Body = "Categories\n" + views.RenderCategories(m.Session.Categories)
	m.setStatus(fmt.Sprintf("%d categories", len(m.Session.Categories)))
}

func (m *Model) startAddCategory() {
	m.startFlow(&flow{
		title: "Add category",
		prompts: []prompt{
			{label: "Name", placeholder: "e.g. Travel", check: func(m *Model, answer string) error {
				_, _, err := tasklist.AddCategory(m.Session.Categories, answer, "")
				return err
			}},
			{label: "Description", placeholder: "optional"},
		},
		finish: func(m *Model, a []string) {
			cats, c, err := tasklist.AddCategory(m.Session.Categories, a[0], a[1])
			if err != nil {
				m.setError(err)
				return
			}
			if err := m.Session.CommitCategories(m.ctx, cats); err != nil {
				m.setError(err)
				return
			}
			m.listCategories()
			m.setStatus(fmt.Sprintf("Category added: %d. %s", c.ID, c.Name))
		},
	})
}

func (m *Model) exit() {
	m.Quitting = true
}
