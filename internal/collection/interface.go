package collection

import (
	"context"

	"todo-sync/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (model.Task, error)
	Replace(ctx context.Context, input ReplaceTaskInput) (model.Task, error)
	Delete(ctx context.Context, id model.TaskID) error
}
