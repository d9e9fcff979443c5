package repository

import (
	"context"

	"conversational-task-management/internal/model"
)

// Repository is the task storage interface.
type Repository interface {
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, sc model.Scope, opt ListTasksOptions) ([]model.Task, error)
	GetTask(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	UpdateTask(ctx context.Context, sc model.Scope, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, sc model.Scope, id string) error
}
