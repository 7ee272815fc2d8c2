package http

import (
	"todo-sync/internal/collection"
	"todo-sync/internal/model"
)

// --- Request DTOs ---

type taskReq struct {
	ID    model.TaskID   `json:"id"    swaggertype:"string"`
	Title string         `json:"title"`
	Time  model.Estimate `json:"time"  swaggertype:"string"`
	Done  bool           `json:"done"`
}

func (r taskReq) toTask() model.Task {
	return model.Task{
		ID:    r.ID,
		Title: r.Title,
		Time:  r.Time,
		Done:  r.Done,
	}
}

func (r taskReq) toCreateInput() collection.CreateTaskInput {
	return collection.CreateTaskInput{Task: r.toTask()}
}

func (r taskReq) toReplaceInput(id string) collection.ReplaceTaskInput {
	return collection.ReplaceTaskInput{
		ID:   model.StringID(id),
		Task: r.toTask(),
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID    model.TaskID   `json:"id"    swaggertype:"string"`
	Title string         `json:"title"`
	Time  model.Estimate `json:"time"  swaggertype:"string"`
	Done  bool           `json:"done"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:    t.ID,
		Title: t.Title,
		Time:  t.Time,
		Done:  t.Done,
	}
}

func newListResp(tasks []model.Task) []taskResp {
	resp := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, newTaskResp(t))
	}
	return resp
}
