package rest

import (
	"context"

	"todo-sync/internal/model"
	"todo-sync/internal/todo/repository"
	pkgLog "todo-sync/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a repository backed by the remote /todo collection.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	todos, err := r.client.ListTodos(ctx)
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to list todos: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(todos))
	for _, t := range todos {
		tasks = append(tasks, todoToTask(t))
	}
	return tasks, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	created, err := r.client.CreateTodo(ctx, taskToTodo(opt.Task))
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to create todo %s: %v", opt.Task.ID, err)
		return opt.Task, err
	}

	task := opt.Task
	if created != nil && !created.ID.Equal(task.ID) {
		r.l.Debugf(ctx, "rest repository: server assigned id %s to todo %s", created.ID, task.ID)
		task.ID = created.ID
	}
	return task, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id model.TaskID) error {
	if err := r.client.DeleteTodo(ctx, id.String()); err != nil {
		r.l.Errorf(ctx, "rest repository: failed to delete todo %s: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	updated, err := r.client.UpdateTodo(ctx, taskToTodo(opt.Task))
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to update todo %s: %v", opt.Task.ID, err)
		return model.Task{}, err
	}
	return todoToTask(*updated), nil
}

func todoToTask(t Todo) model.Task {
	return model.Task{
		ID:    t.ID,
		Title: t.Title,
		Time:  t.Time,
		Done:  t.Done,
	}
}

func taskToTodo(t model.Task) Todo {
	return Todo{
		ID:    t.ID,
		Title: t.Title,
		Time:  t.Time,
		Done:  t.Done,
	}
}
