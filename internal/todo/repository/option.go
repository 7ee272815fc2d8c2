package repository

import "todo-sync/internal/model"

// CreateTaskOptions holds the task to post to the collection.
type CreateTaskOptions struct {
	Task model.Task
}

// UpdateTaskOptions holds the full task to PUT at /todo/{Task.ID}.
type UpdateTaskOptions struct {
	Task model.Task
}
