package usecase

import (
	"context"

	"todo-sync/internal/collection"
	"todo-sync/internal/model"
)

// List returns the whole collection in insertion order.
func (uc *implUseCase) List(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Create stores the task as sent, generating an id when the body has none.
func (uc *implUseCase) Create(ctx context.Context, input collection.CreateTaskInput) (model.Task, error) {
	task := input.Task
	if task.ID.IsZero() {
		task.ID = model.NewTaskID()
	}

	created, err := uc.repo.InsertTask(ctx, task)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertTask: %v", err)
		return model.Task{}, err
	}
	return created, nil
}

// Replace overwrites the task at input.ID. The stored entry keeps its id, so a
// body id that disagrees with the path is ignored.
func (uc *implUseCase) Replace(ctx context.Context, input collection.ReplaceTaskInput) (model.Task, error) {
	updated, err := uc.repo.ReplaceTask(ctx, input.ID, input.Task)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Replace ReplaceTask: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}

// Delete removes the task with the given id.
func (uc *implUseCase) Delete(ctx context.Context, id model.TaskID) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
