package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandeepkv93/todo/internal/model"
)

// JSONStore keeps each list in its own JSON array file under Dir.
type JSONStore struct {
	Dir string
}

func NewJSONStore(dir string) (*JSONStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONStore{Dir: dir}, nil
}

func (s *JSONStore) path(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s *JSONStore) LoadTasks(ctx context.Context) ([]model.Task, error) {
	return s.loadTaskFile(ctx, TasksFile)
}

// SaveTasks copies the current store to the backup file, replacing any
// older backup, and then writes tasks.
func (s *JSONStore) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	current, err := os.ReadFile(s.path(TasksFile))
	switch {
	case err == nil:
		if err := writeFileAtomic(s.path(BackupFile), current); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read tasks for backup: %w", err)
	}
	return writeJSON(s.path(TasksFile), normalizeTasks(tasks))
}

func (s *JSONStore) LoadArchive(ctx context.Context) ([]model.Task, error) {
	return s.loadTaskFile(ctx, ArchiveFile)
}

func (s *JSONStore) SaveArchive(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeJSON(s.path(ArchiveFile), normalizeTasks(tasks))
}

func (s *JSONStore) LoadCategories(ctx context.Context) ([]model.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path(CategoriesFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.SeedCategories(), nil
		}
		return model.SeedCategories(), fmt.Errorf("read categories: %w", err)
	}
	var cats []model.Category
	if err := json.Unmarshal(raw, &cats); err != nil {
		return model.SeedCategories(), fmt.Errorf("%w: %s: %v", ErrCorrupt, CategoriesFile, err)
	}
	return cats, nil
}

func (s *JSONStore) SaveCategories(ctx context.Context, cats []model.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cats == nil {
		cats = []model.Category{}
	}
	return writeJSON(s.path(CategoriesFile), cats)
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) loadTaskFile(ctx context.Context, name string) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return []model.Task{}, err
	}
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return []model.Task{}, fmt.Errorf("read %s: %w", name, err)
	}
	tasks, err := decodeTasks(raw)
	if err != nil {
		return []model.Task{}, fmt.Errorf("load %s: %w", name, err)
	}
	return tasks, nil
}

func writeJSON(path string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := writeFileAtomic(path, append(payload, '\n')); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
