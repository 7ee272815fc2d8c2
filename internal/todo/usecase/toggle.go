package usecase

import (
	"context"

	"todo-sync/internal/model"
	"todo-sync/internal/todo"
	"todo-sync/internal/todo/repository"
)

// ToggleDone records the negated done value as pending, PUTs the task and
// replaces the local copy with the server's answer. The confirmed task is
// never mutated before the answer arrives, so a failed update leaves it as it
// was.
func (uc *implUseCase) ToggleDone(ctx context.Context, id model.TaskID) (model.Task, error) {
	key := id.String()

	uc.mu.Lock()
	idx := uc.indexLocked(id)
	if idx < 0 {
		uc.mu.Unlock()
		return model.Task{}, todo.ErrTaskNotFound
	}
	outgoing := uc.tasks[idx]
	current := outgoing.Done
	if p, ok := uc.pending[key]; ok {
		current = p.done
	}
	outgoing.Done = !current
	uc.seq++
	seq := uc.seq
	uc.pending[key] = pendingToggle{done: outgoing.Done, seq: seq}
	uc.mu.Unlock()
	uc.notify()

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{Task: outgoing})

	uc.mu.Lock()
	if p, ok := uc.pending[key]; ok && p.seq == seq {
		delete(uc.pending, key)
	}
	if err == nil {
		for i := range uc.tasks {
			if uc.tasks[i].ID.Equal(updated.ID) {
				uc.tasks[i] = updated
			}
		}
	}
	uc.mu.Unlock()
	uc.notify()

	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleDone UpdateTask: %v", err)
		return model.Task{}, err
	}
	return updated, nil
}
