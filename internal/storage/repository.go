package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/todo/internal/model"
)

var ErrCorrupt = errors.New("storage: corrupt store")

// Gateway is the only writer of on-disk state. Load methods return an
// empty list for a missing store; on ErrCorrupt they return an empty list
// together with the error so the caller can report it and carry on.
type Gateway interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error

	LoadArchive(ctx context.Context) ([]model.Task, error)
	SaveArchive(ctx context.Context, tasks []model.Task) error

	LoadCategories(ctx context.Context) ([]model.Category, error)
	SaveCategories(ctx context.Context, cats []model.Category) error

	Close() error
}
