package model

// Task is a single entry of the task collection.
type Task struct {
	ID    TaskID
	Title string
	Time  Estimate // Free-form duration estimate, in hours when numeric
	Done  bool
}

// NewTask builds a not-yet-done task with a freshly generated id.
func NewTask(title string, time Estimate) Task {
	return Task{
		ID:    NewTaskID(),
		Title: title,
		Time:  time,
		Done:  false,
	}
}
