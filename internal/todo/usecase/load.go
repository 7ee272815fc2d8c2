package usecase

import "context"

// LoadAll replaces the collection with the server's. On failure the current
// tasks are kept; loading is cleared either way.
func (uc *implUseCase) LoadAll(ctx context.Context) error {
	uc.mu.Lock()
	uc.loading = true
	uc.mu.Unlock()
	uc.notify()

	tasks, err := uc.repo.ListTasks(ctx)

	uc.mu.Lock()
	if err == nil {
		uc.tasks = tasks
	}
	uc.loading = false
	uc.mu.Unlock()
	uc.notify()

	if err != nil {
		uc.l.Errorf(ctx, "uc.LoadAll ListTasks: %v", err)
		return err
	}
	uc.l.Debugf(ctx, "uc.LoadAll: loaded %d tasks", len(tasks))
	return nil
}
