package rest

import (
	"fmt"

	"todo-sync/internal/model"
)

// Todo is the wire shape of a task: {id, title, time, done}.
type Todo struct {
	ID    model.TaskID   `json:"id"`
	Title string         `json:"title"`
	Time  model.Estimate `json:"time"`
	Done  bool           `json:"done"`
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("todo API %s error %d: %s", e.Op, e.Code, e.Body)
}

// SchemaError reports a response that does not match the task shape.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("todo response schema: %s", e.Message)
	}
	return fmt.Sprintf("todo response schema: %s: %s", e.Path, e.Message)
}
