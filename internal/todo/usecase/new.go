package usecase

import (
	"sync"

	"todo-sync/internal/model"
	"todo-sync/internal/todo"
	"todo-sync/internal/todo/repository"
	pkgLog "todo-sync/pkg/log"
)

// pendingToggle is the optimistic done value of an unconfirmed toggle. seq
// identifies the toggle that wrote it.
type pendingToggle struct {
	done bool
	seq  uint64
}

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	// mu guards the state below; it is never held across a network call.
	mu         sync.Mutex
	tasks      []model.Task
	pending    map[string]pendingToggle
	draftTitle string
	draftTime  string
	loading    bool
	seq        uint64

	// notifyMu serializes snapshot+dispatch so observers see transitions in order.
	notifyMu sync.Mutex
	subMu    sync.Mutex
	subs     map[int]func(todo.Snapshot)
	nextSub  int
}

// New creates the task list synchronizer.
func New(l pkgLog.Logger, repo repository.Repository) todo.UseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		pending: make(map[string]pendingToggle),
		subs:    make(map[int]func(todo.Snapshot)),
	}
}
