package tasklist

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/model"
)

// Manager carries the settings and clock the operations depend on.
type Manager struct {
	Config config.Config
	Now    func() time.Time
	NewID  func() string
}

func New(cfg config.Config) *Manager {
	return &Manager{Config: cfg, Now: time.Now, NewID: uuid.NewString}
}

// AddInput holds raw user input. Blank optional fields take the configured
// defaults; categories are ids or names.
type AddInput struct {
	Title      string
	DueDate    string
	Priority   string
	Recurring  string
	Categories []string
}

// Add validates in and appends a new incomplete task.
func (m *Manager) Add(tasks []model.Task, cats []model.Category, in AddInput) ([]model.Task, model.Task, error) {
	title, err := model.ValidateTitle(in.Title)
	if err != nil {
		return tasks, model.Task{}, err
	}
	task := model.Task{
		ID:         m.NewID(),
		Title:      title,
		Priority:   m.Config.DefaultPriority,
		Recurring:  m.Config.DefaultRecurring,
		Categories: []int{},
	}
	if !task.Priority.IsValid() {
		task.Priority = model.PriorityMedium
	}
	if raw := strings.TrimSpace(in.DueDate); raw != "" {
		due, err := model.ParseDueDate(raw)
		if err != nil {
			return tasks, model.Task{}, err
		}
		task.DueDate = &due
	}
	if raw := strings.TrimSpace(in.Priority); raw != "" {
		if task.Priority, err = model.ParsePriority(raw); err != nil {
			return tasks, model.Task{}, err
		}
	}
	if raw := strings.TrimSpace(in.Recurring); raw != "" {
		if task.Recurring, err = model.ParseRecurrence(raw); err != nil {
			return tasks, model.Task{}, err
		}
	}
	if task.Categories, err = parseCategories(cats, in.Categories); err != nil {
		return tasks, model.Task{}, err
	}
	return append(tasks, task), task, nil
}

// EditInput holds raw replacement values. Blank keeps the current value,
// "none" clears the due date or recurrence, and nil Categories keeps the
// current set while a single "none" clears it.
type EditInput struct {
	Title      string
	DueDate    string
	Priority   string
	Recurring  string
	Categories []string
}

// Edit applies in to the task with id. Any invalid value aborts the whole
// edit and leaves the task unchanged.
func (m *Manager) Edit(tasks []model.Task, cats []model.Category, id string, in EditInput) ([]model.Task, model.Task, error) {
	i := indexOf(tasks, id)
	if i < 0 {
		return tasks, model.Task{}, unknownTask(id)
	}
	next := tasks[i].Clone()
	var err error

	if raw := strings.TrimSpace(in.Title); raw != "" {
		if next.Title, err = model.ValidateTitle(raw); err != nil {
			return tasks, tasks[i], err
		}
	}
	switch raw := strings.TrimSpace(in.DueDate); {
	case raw == "":
	case strings.EqualFold(raw, "none"):
		next.DueDate = nil
	default:
		due, err := model.ParseDueDate(raw)
		if err != nil {
			return tasks, tasks[i], err
		}
		next.DueDate = &due
	}
	if raw := strings.TrimSpace(in.Priority); raw != "" {
		if next.Priority, err = model.ParsePriority(raw); err != nil {
			return tasks, tasks[i], err
		}
	}
	if raw := strings.TrimSpace(in.Recurring); raw != "" {
		if next.Recurring, err = model.ParseRecurrence(raw); err != nil {
			return tasks, tasks[i], err
		}
	}
	if in.Categories != nil {
		if next.Categories, err = parseCategories(cats, in.Categories); err != nil {
			return tasks, tasks[i], err
		}
	}

	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	out[i] = next
	return out, next, nil
}

// Remove deletes the tasks with the given ids. Unknown ids are reported
// per item; the rest keep their relative order.
func (m *Manager) Remove(tasks []model.Task, ids []string) ([]model.Task, []model.Task, error) {
	var errs SelectionError
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		if indexOf(tasks, id) < 0 {
			errs.add(unknownTask(id))
			continue
		}
		drop[id] = true
	}
	kept := make([]model.Task, 0, len(tasks))
	removed := make([]model.Task, 0, len(drop))
	for _, t := range tasks {
		if drop[t.ID] {
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	return kept, removed, errs.orNil()
}

// ToggleResult lists what a Toggle call changed.
type ToggleResult struct {
	Completed []model.Task
	Reopened  []model.Task
	Spawned   []model.Task
}

// Toggle flips completion for each id. Completing a recurring task appends
// its next occurrence; a recurring task without a due date is reported and
// still completed.
func (m *Manager) Toggle(tasks []model.Task, ids []string) ([]model.Task, ToggleResult, error) {
	var res ToggleResult
	var errs SelectionError
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	now := m.Now()
	for _, id := range ids {
		i := indexOf(out, id)
		if i < 0 {
			errs.add(unknownTask(id))
			continue
		}
		task := out[i].Clone()
		task.SetCompleted(!task.Completed, now)
		out[i] = task
		if !task.Completed {
			res.Reopened = append(res.Reopened, task)
			continue
		}
		res.Completed = append(res.Completed, task)
		if !task.Recurring.IsSet() {
			continue
		}
		next, spawned, err := m.AddNextOccurrence(out, task)
		if err != nil {
			errs.add(fmt.Errorf("%q: %w", task.Title, err))
			continue
		}
		out = next
		res.Spawned = append(res.Spawned, spawned)
	}
	return out, res, errs.orNil()
}

// AddNextOccurrence appends the successor of a recurring task. It returns
// model.ErrNoDueDate and leaves tasks unchanged when source has no due date.
func (m *Manager) AddNextOccurrence(tasks []model.Task, source model.Task) ([]model.Task, model.Task, error) {
	due, err := source.Recurring.NextDue(source.DueDate)
	if err != nil {
		return tasks, model.Task{}, err
	}
	next := model.Task{
		ID:         m.NewID(),
		Title:      source.Title,
		DueDate:    &due,
		Priority:   source.Priority,
		Recurring:  source.Recurring,
		Categories: append([]int{}, source.Categories...),
	}
	return append(tasks, next), next, nil
}

// ArchiveCompleted splits tasks into the incomplete ones that stay active
// and the completed ones to append to the archive, both in list order.
func ArchiveCompleted(tasks []model.Task) (remaining, archived []model.Task) {
	remaining = make([]model.Task, 0, len(tasks))
	archived = make([]model.Task, 0)
	for _, t := range tasks {
		if t.Completed {
			archived = append(archived, t)
			continue
		}
		remaining = append(remaining, t)
	}
	return remaining, archived
}

// AddCategory appends a category with the next free id.
func AddCategory(cats []model.Category, name, description string) ([]model.Category, model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return cats, model.Category{}, model.ErrEmptyCategoryName
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return cats, model.Category{}, fmt.Errorf("%w: %q", model.ErrDuplicateCategoryName, name)
		}
	}
	if _, err := strconv.Atoi(name); err == nil {
		return cats, model.Category{}, fmt.Errorf("%w: %q", ErrNumericCategoryName, name)
	}
	c := model.Category{ID: model.NextCategoryID(cats), Name: name, Description: strings.TrimSpace(description)}
	return append(cats, c), c, nil
}

func parseCategories(cats []model.Category, tokens []string) ([]int, error) {
	ids := make([]int, 0, len(tokens))
	for _, raw := range tokens {
		for _, token := range strings.Split(raw, ",") {
			token = strings.TrimSpace(token)
			if token == "" || strings.EqualFold(token, "none") {
				continue
			}
			c, err := model.LookupCategory(cats, token)
			if err != nil {
				return nil, err
			}
			ids = append(ids, c.ID)
		}
	}
	return model.NormalizeCategories(ids), nil
}
