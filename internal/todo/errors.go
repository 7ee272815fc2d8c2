package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyTime    = errors.New("time is required")
)
