package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/todo/internal/model"
)

func setupSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "todo-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteTaskRoundTrip(t *testing.T) {
	store := setupSQLite(t)
	ctx := context.Background()
	want := sampleTasks(t)

	empty, err := store.LoadTasks(ctx)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty tasks, got %v %v", empty, err)
	}

	if err := store.SaveTasks(ctx, want); err != nil {
		t.Fatalf("save tasks: %v", err)
	}
	got, err := store.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	assertSameTasks(t, got, want)

	if err := store.SaveTasks(ctx, got); err != nil {
		t.Fatalf("resave tasks: %v", err)
	}
	again, err := store.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("reload tasks: %v", err)
	}
	assertSameTasks(t, again, got)
}

func TestSQLiteSaveKeepsOneBackupGeneration(t *testing.T) {
	store := setupSQLite(t)
	ctx := context.Background()
	tasks := sampleTasks(t)

	if err := store.SaveTasks(ctx, tasks[:1]); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.SaveTasks(ctx, tasks); err != nil {
		t.Fatalf("second save: %v", err)
	}
	backup, err := store.LoadBackup(ctx)
	if err != nil {
		t.Fatalf("load backup: %v", err)
	}
	assertSameTasks(t, backup, tasks[:1])

	if err := store.SaveTasks(ctx, tasks[1:]); err != nil {
		t.Fatalf("third save: %v", err)
	}
	backup, err = store.LoadBackup(ctx)
	if err != nil {
		t.Fatalf("load backup: %v", err)
	}
	assertSameTasks(t, backup, tasks)
}

func TestSQLitePreservesOrder(t *testing.T) {
	store := setupSQLite(t)
	ctx := context.Background()
	tasks := sampleTasks(t)
	reversed := []model.Task{tasks[1], tasks[0]}

	if err := store.SaveTasks(ctx, reversed); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertSameTasks(t, got, reversed)
}

func TestSQLiteArchiveAndCategories(t *testing.T) {
	store := setupSQLite(t)
	ctx := context.Background()
	tasks := sampleTasks(t)

	if err := store.SaveArchive(ctx, tasks); err != nil {
		t.Fatalf("save archive: %v", err)
	}
	archive, err := store.LoadArchive(ctx)
	if err != nil {
		t.Fatalf("load archive: %v", err)
	}
	assertSameTasks(t, archive, tasks)

	cats, err := store.LoadCategories(ctx)
	if err != nil || len(cats) != 5 {
		t.Fatalf("expected seed categories, got %v %v", cats, err)
	}
	cats = append(cats, model.Category{ID: 6, Name: "Garden", Description: "Outdoor jobs"})
	if err := store.SaveCategories(ctx, cats); err != nil {
		t.Fatalf("save categories: %v", err)
	}
	got, err := store.LoadCategories(ctx)
	if err != nil || len(got) != 6 || got[5].Description != "Outdoor jobs" {
		t.Fatalf("unexpected categories: %v %v", got, err)
	}
}

func TestSQLiteRejectsDuplicateCategoryNames(t *testing.T) {
	store := setupSQLite(t)
	ctx := context.Background()
	cats := []model.Category{{ID: 1, Name: "Work"}, {ID: 2, Name: "Work"}}
	if err := store.SaveCategories(ctx, cats); err == nil {
		t.Fatal("expected unique constraint error")
	}
	got, err := store.LoadCategories(ctx)
	if err != nil || len(got) != 5 {
		t.Fatalf("failed save must roll back, got %v %v", got, err)
	}
}

func TestNewSQLiteStoreNilDB(t *testing.T) {
	var db *sql.DB
	if _, err := NewSQLiteStore(context.Background(), db); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	gw, err := Open(ctx, "json", dir)
	if err != nil {
		t.Fatalf("open json: %v", err)
	}
	if _, ok := gw.(*JSONStore); !ok {
		t.Fatalf("expected *JSONStore, got %T", gw)
	}

	gw, err = Open(ctx, "sqlite", dir)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer gw.Close()
	if _, ok := gw.(*SQLiteStore); !ok {
		t.Fatalf("expected *SQLiteStore, got %T", gw)
	}

	if _, err := Open(ctx, "postgres", dir); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
