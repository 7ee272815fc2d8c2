package usecase

import (
	"todo-sync/internal/model"
	"todo-sync/internal/todo"
)

func (uc *implUseCase) Snapshot() todo.Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

func (uc *implUseCase) snapshotLocked() todo.Snapshot {
	items := make([]todo.Item, len(uc.tasks))
	for i, t := range uc.tasks {
		items[i] = todo.Item{Task: t}
		if p, ok := uc.pending[t.ID.String()]; ok {
			done := p.done
			items[i].Pending = &done
		}
	}
	return todo.Snapshot{
		Items:      items,
		DraftTitle: uc.draftTitle,
		DraftTime:  uc.draftTime,
		Loading:    uc.loading,
	}
}

// Subscribe registers fn to receive a snapshot after every state change.
// fn runs on the goroutine that caused the change and must not block or call
// back into the synchronizer.
func (uc *implUseCase) Subscribe(fn func(todo.Snapshot)) func() {
	uc.subMu.Lock()
	id := uc.nextSub
	uc.nextSub++
	uc.subs[id] = fn
	uc.subMu.Unlock()

	return func() {
		uc.subMu.Lock()
		delete(uc.subs, id)
		uc.subMu.Unlock()
	}
}

func (uc *implUseCase) notify() {
	uc.notifyMu.Lock()
	defer uc.notifyMu.Unlock()

	snap := uc.Snapshot()

	uc.subMu.Lock()
	subs := make([]func(todo.Snapshot), 0, len(uc.subs))
	for _, fn := range uc.subs {
		subs = append(subs, fn)
	}
	uc.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (uc *implUseCase) indexLocked(id model.TaskID) int {
	for i, t := range uc.tasks {
		if t.ID.Equal(id) {
			return i
		}
	}
	return -1
}
