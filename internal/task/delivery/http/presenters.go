package http

import (
	"errors"
	"time"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
)

var errMissingID = errors.New("task id is required")

type createReq struct {
	Title    string     `json:"title" binding:"required"`
	Priority string     `json:"priority,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

func (r createReq) validate() error {
	if r.Priority != "" && !model.Priority(r.Priority).Valid() {
		return task.ErrInvalidPriority
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:    r.Title,
		Priority: model.Priority(r.Priority),
		DueDate:  r.DueDate,
	}
}

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
}

func (r listReq) validate() error {
	if r.Priority != "" && !model.Priority(r.Priority).Valid() {
		return task.ErrInvalidPriority
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status:   task.StatusFilter(r.Status),
		Priority: model.Priority(r.Priority),
	}
}

type updateReq struct {
	ID       string     `json:"-"`
	Title    *string    `json:"title,omitempty"`
	Priority *string    `json:"priority,omitempty"`
	DueDate  *time.Time `json:"due_date,omitempty"`
}

func (r updateReq) validate() error {
	if r.ID == "" {
		return errMissingID
	}
	if r.Priority != nil && !model.Priority(*r.Priority).Valid() {
		return task.ErrInvalidPriority
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:      r.ID,
		Title:   r.Title,
		DueDate: r.DueDate,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		input.Priority = &p
	}
	return input
}

type taskItem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Priority  string     `json:"priority"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newTaskItem(t model.Task) taskItem {
	return taskItem{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  string(t.Priority),
		DueDate:   t.DueDate,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type listResp struct {
	Items []taskItem `json:"items"`
	Total int        `json:"total"`
}

func newListResp(tasks []model.Task) listResp {
	items := make([]taskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, newTaskItem(t))
	}
	return listResp{Items: items, Total: len(items)}
}
