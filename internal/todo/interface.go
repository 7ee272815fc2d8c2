package todo

import (
	"context"

	"todo-sync/internal/model"
)

// UseCase is the task list synchronizer: it owns the client-side state and
// mirrors every change onto the remote collection.
type UseCase interface {
	// LoadAll replaces the collection with the remote one.
	LoadAll(ctx context.Context) error
	// Create appends a new task and posts it.
	Create(ctx context.Context, title, time string) (model.Task, error)
	// Submit creates a task from the draft fields.
	Submit(ctx context.Context) (model.Task, error)
	// Remove deletes the task remotely and drops it locally.
	Remove(ctx context.Context, id model.TaskID) error
	// ToggleDone flips the done flag optimistically and confirms it remotely.
	ToggleDone(ctx context.Context, id model.TaskID) (model.Task, error)

	SetDraftTitle(title string)
	SetDraftTime(time string)

	Snapshot() Snapshot
	Subscribe(fn func(Snapshot)) (unsubscribe func())
}
