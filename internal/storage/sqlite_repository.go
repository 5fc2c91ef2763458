package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/todo/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

const taskColumns = `position, id, title, completed, due_date, priority, recurring, categories, completion_timestamp`

// SQLiteStore implements Gateway on a single SQLite database. The
// tasks_backup table holds the previous content of tasks, one generation deep.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if err := MigrateUp(ctx, db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadTasks(ctx context.Context) ([]model.Task, error) {
	return s.listTasks(ctx, "tasks")
}

func (s *SQLiteStore) SaveTasks(ctx context.Context, tasks []model.Task) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks_backup`); err != nil {
			return fmt.Errorf("clear backup: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO tasks_backup (`+taskColumns+`) SELECT `+taskColumns+` FROM tasks`); err != nil {
			return fmt.Errorf("copy backup: %w", err)
		}
		return replaceTasks(ctx, tx, "tasks", normalizeTasks(tasks))
	})
}

// LoadBackup returns the task list as it was before the last SaveTasks.
func (s *SQLiteStore) LoadBackup(ctx context.Context) ([]model.Task, error) {
	return s.listTasks(ctx, "tasks_backup")
}

func (s *SQLiteStore) LoadArchive(ctx context.Context) ([]model.Task, error) {
	return s.listTasks(ctx, "archived_tasks")
}

func (s *SQLiteStore) SaveArchive(ctx context.Context, tasks []model.Task) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return replaceTasks(ctx, tx, "archived_tasks", normalizeTasks(tasks))
	})
}

func (s *SQLiteStore) LoadCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description FROM categories ORDER BY id ASC`)
	if err != nil {
		return model.SeedCategories(), err
	}
	defer rows.Close()

	out := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return model.SeedCategories(), err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return model.SeedCategories(), err
	}
	if len(out) == 0 {
		return model.SeedCategories(), nil
	}
	return out, nil
}

func (s *SQLiteStore) SaveCategories(ctx context.Context, cats []model.Category) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
			return err
		}
		for _, c := range cats {
			if _, err := tx.ExecContext(ctx, `INSERT INTO categories (id, name, description) VALUES (?, ?, ?)`,
				c.ID, c.Name, c.Description); err != nil {
				return fmt.Errorf("insert category %d: %w", c.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) listTasks(ctx context.Context, table string) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM `+table+` ORDER BY position ASC`)
	if err != nil {
		return []model.Task{}, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return []model.Task{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, table, scanErr)
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return []model.Task{}, err
	}
	return out, nil
}

func replaceTasks(ctx context.Context, tx *sql.Tx, table string, tasks []model.Task) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO `+table+` (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range tasks {
		cats, err := json.Marshal(t.Categories)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx,
			i, t.ID, t.Title, boolInt(t.Completed), nullDate(t.DueDate), string(t.Priority),
			nullRecurrence(t.Recurring), string(cats), nullTime(t.CompletionTimestamp),
		); err != nil {
			return fmt.Errorf("insert %s row %d: %w", table, i, err)
		}
	}
	return nil
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func nullDate(v *model.Date) any {
	if v == nil {
		return nil
	}
	return v.String()
}

func nullRecurrence(r model.Recurrence) any {
	if !r.IsSet() {
		return nil
	}
	return string(r)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var position int
	var completed int
	var due, recurring, completedAt sql.NullString
	var priority, cats string
	if err := s.Scan(&position, &out.ID, &out.Title, &completed, &due, &priority, &recurring, &cats, &completedAt); err != nil {
		return model.Task{}, err
	}
	out.Completed = completed == 1

	if due.Valid && due.String != "" {
		d, err := model.ParseDate(due.String)
		if err != nil {
			return model.Task{}, err
		}
		out.DueDate = &d
	}
	p, err := model.ParsePriority(priority)
	if err != nil {
		return model.Task{}, err
	}
	out.Priority = p

	rec, err := model.ParseRecurrence(recurring.String)
	if err != nil {
		return model.Task{}, err
	}
	out.Recurring = rec

	out.Categories = []int{}
	if err := json.Unmarshal([]byte(cats), &out.Categories); err != nil {
		return model.Task{}, err
	}
	if out.Categories == nil {
		out.Categories = []int{}
	}

	stamp, err := parseNullableTime(completedAt)
	if err != nil {
		return model.Task{}, err
	}
	out.CompletionTimestamp = stamp
	return out, nil
}
