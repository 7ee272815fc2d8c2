package collection

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrDuplicateID  = errors.New("task id already exists")
)
