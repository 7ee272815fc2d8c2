package usecase

import (
	"context"

	"todo-sync/internal/model"
)

// Remove deletes the task remotely and drops it locally regardless of the
// outcome.
func (uc *implUseCase) Remove(ctx context.Context, id model.TaskID) error {
	err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Remove DeleteTask: %v", err)
	}

	uc.mu.Lock()
	kept := uc.tasks[:0:0]
	for _, t := range uc.tasks {
		if !t.ID.Equal(id) {
			kept = append(kept, t)
		}
	}
	uc.tasks = kept
	delete(uc.pending, id.String())
	uc.mu.Unlock()
	uc.notify()

	return err
}
