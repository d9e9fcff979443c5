package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task/repository"
)

// CreateTask inserts a new task for the scoped user.
func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	t := model.Task{
		ID:        uuid.NewString(),
		Title:     opt.Title,
		Priority:  opt.Priority,
		DueDate:   opt.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if r.tasks[sc.UserID] == nil {
		r.tasks[sc.UserID] = make(map[string]model.Task)
	}
	r.tasks[sc.UserID][t.ID] = t
	r.order[sc.UserID] = append(r.order[sc.UserID], t.ID)

	return t, nil
}

// ListTasks returns the scoped user's tasks in insertion order, filtered by opt.
func (r *implRepository) ListTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.order[sc.UserID]))
	for _, id := range r.order[sc.UserID] {
		t, ok := r.tasks[sc.UserID][id]
		if !ok {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		if opt.Priority != "" && t.Priority != opt.Priority {
			continue
		}
		if opt.DueBefore != nil {
			if t.DueDate == nil || t.DueDate.After(*opt.DueBefore) {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

// GetTask fetches one task by id within the scoped user's set.
func (r *implRepository) GetTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[sc.UserID][id]
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return t, nil
}

// UpdateTask applies the non-nil fields of opt to an existing task.
func (r *implRepository) UpdateTask(ctx context.Context, sc model.Scope, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[sc.UserID][opt.ID]
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}

	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.DueDate != nil {
		t.DueDate = opt.DueDate
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	t.UpdatedAt = time.Now()

	r.tasks[sc.UserID][opt.ID] = t
	return t, nil
}

// DeleteTask removes a task by id within the scoped user's set.
func (r *implRepository) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[sc.UserID][id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks[sc.UserID], id)

	ids := r.order[sc.UserID]
	for i, existing := range ids {
		if existing == id {
			r.order[sc.UserID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
