package task

import (
	"context"

	"conversational-task-management/internal/model"
)

// Service is the task CRUD contract consumed by delivery layers and by the
// dialogue engine's tool dispatch. Every call is scoped to the caller's own
// task set via sc.
type Service interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
