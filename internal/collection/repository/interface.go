package repository

import (
	"context"

	"todo-sync/internal/model"
)

// Repository stores the collection in insertion order.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	InsertTask(ctx context.Context, task model.Task) (model.Task, error)
	ReplaceTask(ctx context.Context, id model.TaskID, task model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, id model.TaskID) error
}
