package usecase

import (
	"context"

	"todo-sync/internal/model"
	"todo-sync/internal/todo"
	"todo-sync/internal/todo/repository"
)

// Create posts a new task, then appends it and clears the drafts whatever the
// server answered. The returned error is informational: local state is
// already updated.
func (uc *implUseCase) Create(ctx context.Context, title, time string) (model.Task, error) {
	task := model.NewTask(title, model.EstimateText(time))

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{Task: task})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		created = task
	}

	uc.mu.Lock()
	uc.tasks = append(uc.tasks, created)
	uc.draftTitle = ""
	uc.draftTime = ""
	uc.mu.Unlock()
	uc.notify()

	return created, err
}

// Submit creates a task from the draft fields. Both are required.
func (uc *implUseCase) Submit(ctx context.Context) (model.Task, error) {
	uc.mu.Lock()
	title, time := uc.draftTitle, uc.draftTime
	uc.mu.Unlock()

	if title == "" {
		return model.Task{}, todo.ErrEmptyTitle
	}
	if time == "" {
		return model.Task{}, todo.ErrEmptyTime
	}
	return uc.Create(ctx, title, time)
}
