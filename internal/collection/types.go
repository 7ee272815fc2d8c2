package collection

import "todo-sync/internal/model"

// CreateTaskInput is the body of POST /todo. A zero ID gets a generated one.
type CreateTaskInput struct {
	Task model.Task
}

// ReplaceTaskInput is PUT /todo/{ID}. The path id wins over the body id.
type ReplaceTaskInput struct {
	ID   model.TaskID
	Task model.Task
}
