package todo

import "todo-sync/internal/model"

// Item is a task as seen by the render layer.
type Item struct {
	Task model.Task // Last value confirmed by (or sent to) the server
	// Pending holds the optimistic done value of an unconfirmed toggle.
	Pending *bool
}

// Done returns the value to display: the pending guess when a toggle is in
// flight, the confirmed value otherwise.
func (i Item) Done() bool {
	if i.Pending != nil {
		return *i.Pending
	}
	return i.Task.Done
}

// IsPending reports whether a toggle for this task is awaiting the server.
func (i Item) IsPending() bool {
	return i.Pending != nil
}

// Snapshot is a read-only copy of the synchronizer state.
type Snapshot struct {
	Items      []Item
	DraftTitle string
	DraftTime  string
	Loading    bool
}

// Tasks returns the confirmed tasks in collection order.
func (s Snapshot) Tasks() []model.Task {
	tasks := make([]model.Task, len(s.Items))
	for i, it := range s.Items {
		tasks[i] = it.Task
	}
	return tasks
}

// Find returns the item with the given id.
func (s Snapshot) Find(id model.TaskID) (Item, bool) {
	for _, it := range s.Items {
		if it.Task.ID.Equal(id) {
			return it, true
		}
	}
	return Item{}, false
}
