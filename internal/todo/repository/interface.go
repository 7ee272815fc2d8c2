package repository

import (
	"context"

	"todo-sync/internal/model"
)

// Repository is the remote task collection.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	// CreateTask posts the task. The returned task carries the id the server
	// assigned when the response contains one, otherwise it is the input.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id model.TaskID) error
	// UpdateTask replaces the task and returns the server's copy verbatim.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
}
