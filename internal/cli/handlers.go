package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/jobs"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/tasklist"
	"github.com/sandeepkv93/todo/internal/update"
	"github.com/sandeepkv93/todo/internal/views"
)

// newHandlers binds each flag command to the session. Every mutation is
// persisted before the handler returns. Display numbers always refer to
// the list as it was before the first command of the run.
func newHandlers(ctx context.Context, s *update.Session) commands.Handlers {
	shown := slices.Clone(s.Tasks)
	return commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			tasks, task, err := s.Manager.Add(s.Tasks, s.Categories, tasklist.AddInput{
				Title:      a.Title,
				DueDate:    a.DueDate,
				Priority:   a.Priority,
				Recurring:  a.Recurring,
				Categories: a.Categories,
			})
			if err != nil {
				return commands.Result{}, invalid(err)
			}
			if err := s.Commit(ctx, tasks); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("Task added: %s", task.Title)}, nil
		},
		Complete: func(a commands.SelectArgs) (commands.Result, error) {
			sel, err := resolve(s, shown, a)
			if err != nil {
				return commands.Result{}, err
			}
			tasks, res, err := s.Manager.Toggle(s.Tasks, sel.ids)
			if saveErr := s.Commit(ctx, tasks); saveErr != nil {
				return commands.Result{}, saveErr
			}
			msg := fmt.Sprintf("Completed %d, reopened %d", len(res.Completed), len(res.Reopened))
			for _, next := range res.Spawned {
				msg += fmt.Sprintf("\nNext occurrence of %q due %s", next.Title, next.DueDate)
			}
			return commands.Result{Message: msg}, selectionErr(tasklist.JoinErrors(sel.skipped, err))
		},
		Remove: func(a commands.SelectArgs) (commands.Result, error) {
			sel, err := resolve(s, shown, a)
			if err != nil {
				return commands.Result{}, err
			}
			kept, removed, err := s.Manager.Remove(s.Tasks, sel.ids)
			if saveErr := s.Commit(ctx, kept); saveErr != nil {
				return commands.Result{}, saveErr
			}
			return commands.Result{Message: fmt.Sprintf("Removed %d task(s)", len(removed))},
				selectionErr(tasklist.JoinErrors(sel.skipped, err))
		},
		Archive: func() (commands.Result, error) {
			archived, err := s.ArchiveCompleted(ctx)
			if err != nil {
				return commands.Result{}, err
			}
			if len(archived) == 0 {
				return commands.Result{Message: "No completed tasks to archive."}, nil
			}
			return commands.Result{Message: fmt.Sprintf("Archived %d task(s)", len(archived))}, nil
		},
		List: func(a commands.ViewArgs) (commands.Result, error) {
			q, err := s.Query(a.All, a.Search, a.Category, a.Sort)
			if err != nil {
				return commands.Result{}, invalid(err)
			}
			return commands.Result{Message: views.RenderList(s.View(q), s.Categories)}, nil
		},
		Report: func() (commands.Result, error) {
			return commands.Result{Message: jobs.Summarize(s.Tasks, s.Today()).String()}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			format, err := jobs.ParseFormat(a.Format)
			if err != nil {
				return commands.Result{}, invalid(err)
			}
			path, err := jobs.ExportFile(a.Output, format, s.Tasks)
			if err != nil {
				return commands.Result{}, err
			}
			s.Log.Info("exported tasks", "format", format, "path", path, "count", len(s.Tasks))
			return commands.Result{Message: fmt.Sprintf("Exported %d task(s) to %s", len(s.Tasks), path)}, nil
		},
	}
}

type selection struct {
	ids []string
	// skipped holds the per-item failures of a partly valid selection.
	skipped error
}

// resolve maps display numbers onto ids against the view of shown that the
// same flags would list. A selection with no valid number is an error.
func resolve(s *update.Session, shown []model.Task, a commands.SelectArgs) (selection, error) {
	q, err := s.Query(a.View.All, a.View.Search, a.View.Category, a.View.Sort)
	if err != nil {
		return selection{}, invalid(err)
	}
	ids, err := tasklist.Resolve(views.Tasks(views.Render(shown, q, s.Today())), a.Selection)
	if len(ids) == 0 {
		return selection{}, invalid(err)
	}
	return selection{ids: ids, skipped: err}, nil
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
}

func selectionErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("some selections failed: %w", err)
}
