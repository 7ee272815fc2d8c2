package memory

import (
	"context"
	"sync"

	"todo-sync/internal/collection"
	"todo-sync/internal/collection/repository"
	"todo-sync/internal/model"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks []model.Task
}

// New creates an empty in-memory collection, optionally seeded.
func New(seed ...model.Task) repository.Repository {
	return &implRepository{
		tasks: append([]model.Task(nil), seed...),
	}
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks, nil
}

func (r *implRepository) InsertTask(ctx context.Context, task model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexLocked(task.ID) >= 0 {
		return model.Task{}, collection.ErrDuplicateID
	}
	r.tasks = append(r.tasks, task)
	return task, nil
}

func (r *implRepository) ReplaceTask(ctx context.Context, id model.TaskID, task model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return model.Task{}, collection.ErrTaskNotFound
	}
	task.ID = r.tasks[idx].ID
	r.tasks[idx] = task
	return task, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id model.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return collection.ErrTaskNotFound
	}
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	return nil
}

func (r *implRepository) indexLocked(id model.TaskID) int {
	for i, t := range r.tasks {
		if t.ID.Equal(id) {
			return i
		}
	}
	return -1
}
