package repository

import (
	"time"

	"conversational-task-management/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	Title    string
	Priority model.Priority
	DueDate  *time.Time
}

// ListTasksOptions holds filter parameters for listing tasks.
// All set fields are applied as AND conditions.
type ListTasksOptions struct {
	Completed *bool
	Priority  model.Priority
	DueBefore *time.Time
}

// UpdateTaskOptions holds parameters for updating an existing task.
// Nil pointer fields are left untouched.
type UpdateTaskOptions struct {
	ID        string
	Title     *string
	Priority  *model.Priority
	DueDate   *time.Time
	Completed *bool
}
