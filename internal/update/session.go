package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/todo/internal/jobs"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/tasklist"
	"github.com/sandeepkv93/todo/internal/views"
)

// Session is the in-memory state of one run. Mutations go through its
// methods so every change is persisted before control returns to the user.
type Session struct {
	Store      storage.Gateway
	Manager    *tasklist.Manager
	Log        *log.Logger
	Tasks      []model.Task
	Categories []model.Category
}

// OpenSession loads tasks and categories. A corrupt store is logged and
// replaced by an empty list; the file on disk is left alone until the
// next save, which moves it into the backup.
func OpenSession(ctx context.Context, store storage.Gateway, mgr *tasklist.Manager, logger *log.Logger) (*Session, error) {
	s := &Session{Store: store, Manager: mgr, Log: logger}
	tasks, err := store.LoadTasks(ctx)
	switch {
	case errors.Is(err, storage.ErrCorrupt):
		logger.Error("task store unreadable, starting with an empty list", "err", err)
	case err != nil:
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	cats, err := store.LoadCategories(ctx)
	switch {
	case errors.Is(err, storage.ErrCorrupt):
		logger.Error("category file unreadable, using the default categories", "err", err)
		cats = model.SeedCategories()
	case err != nil:
		return nil, fmt.Errorf("load categories: %w", err)
	}
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			logger.Warn("stored task is inconsistent", "position", i+1, "title", t.Title, "err", err)
		}
	}
	s.Tasks = tasks
	s.Categories = cats
	logger.Debug("session loaded", "tasks", len(tasks), "categories", len(cats))
	return s, nil
}

func (s *Session) Today() model.Date {
	return model.DateOf(s.Manager.Now())
}

// Query builds a view query. The category token is an id or a name; blank
// means no category filter.
func (s *Session) Query(all bool, search, category, sortBy string) (views.Query, error) {
	key, err := views.ParseSortKey(sortBy)
	if err != nil {
		return views.Query{}, err
	}
	q := views.Query{ShowAll: all, SortBy: key, Search: strings.TrimSpace(search)}
	if strings.TrimSpace(category) != "" {
		c, err := model.LookupCategory(s.Categories, category)
		if err != nil {
			return views.Query{}, err
		}
		q.Category = c.ID
	}
	return q, nil
}

func (s *Session) View(q views.Query) []views.Entry {
	return views.Render(s.Tasks, q, s.Today())
}

// Commit replaces the task list and persists it.
func (s *Session) Commit(ctx context.Context, tasks []model.Task) error {
	s.Tasks = tasks
	if err := s.Store.SaveTasks(ctx, tasks); err != nil {
		s.Log.Error("save tasks failed", "err", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	s.Log.Debug("tasks saved", "count", len(tasks))
	return nil
}

func (s *Session) CommitCategories(ctx context.Context, cats []model.Category) error {
	s.Categories = cats
	if err := s.Store.SaveCategories(ctx, cats); err != nil {
		s.Log.Error("save categories failed", "err", err)
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}

// ArchiveCompleted moves completed tasks to the archive. The archive is
// written first so a failed task save never loses an archived task; when
// the task save fails the archive is restored so no task is stored twice.
func (s *Session) ArchiveCompleted(ctx context.Context) ([]model.Task, error) {
	remaining, archived := tasklist.ArchiveCompleted(s.Tasks)
	if len(archived) == 0 {
		return archived, nil
	}
	archive, err := s.Store.LoadArchive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load archive: %w", err)
	}
	if err := s.Store.SaveArchive(ctx, append(archive, archived...)); err != nil {
		s.Log.Error("save archive failed", "err", err)
		return nil, fmt.Errorf("save archive: %w", err)
	}
	prev := s.Tasks
	if err := s.Commit(ctx, remaining); err != nil {
		s.Tasks = prev
		if restoreErr := s.Store.SaveArchive(ctx, archive); restoreErr != nil {
			s.Log.Error("restore archive failed", "err", restoreErr)
			return nil, errors.Join(err, fmt.Errorf("restore archive: %w", restoreErr))
		}
		return nil, err
	}
	s.Log.Info("archived completed tasks", "count", len(archived))
	return archived, nil
}

// Alerts renders the overdue and due-soon lists shown at start-up. It is
// empty when nothing needs attention.
func (s *Session) Alerts(daysAhead int) string {
	today := s.Today()
	overdue := jobs.Overdue(s.Tasks, today)
	soon := jobs.DueSoon(s.Tasks, today, daysAhead)
	s.Log.Debug("lifecycle check", "overdue", len(overdue), "due_soon", len(soon), "days_ahead", daysAhead)

	var parts []string
	if out := views.RenderTaskSummary("Overdue tasks:", overdue, views.ColorAlert); out != "" {
		parts = append(parts, out)
	}
	heading := fmt.Sprintf("Tasks due within %d day(s):", daysAhead)
	if out := views.RenderTaskSummary(heading, soon, views.ColorWarning); out != "" {
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n\n")
}
