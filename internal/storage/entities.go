package storage

import (
	"github.com/google/uuid"

	"github.com/sandeepkv93/todo/internal/model"
)

const (
	TasksFile      = "todo_list.json"
	BackupFile     = "todo_list_backup.json"
	ArchiveFile    = "archive_list.json"
	CategoriesFile = "categories.json"
	SQLiteFile     = "todo.db"
)

// normalizeTasks fills fields older stores may lack: ids, priority and a
// non-nil category set.
func normalizeTasks(tasks []model.Task) []model.Task {
	if tasks == nil {
		return []model.Task{}
	}
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
		if tasks[i].Priority == "" {
			tasks[i].Priority = model.PriorityMedium
		}
		if tasks[i].Categories == nil {
			tasks[i].Categories = []int{}
		}
	}
	return tasks
}
