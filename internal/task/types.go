package task

import (
	"time"

	"conversational-task-management/internal/model"
)

// StatusFilter narrows a listing by completion state.
type StatusFilter string

const (
	StatusComplete   StatusFilter = "COMPLETE"
	StatusIncomplete StatusFilter = "INCOMPLETE"
	StatusAll        StatusFilter = "ALL"
)

// CreateInput holds parameters for creating a task.
// Priority is optional; the usecase applies the MEDIUM default so callers
// (including the dialogue engine) never have to.
type CreateInput struct {
	Title    string
	Priority model.Priority
	DueDate  *time.Time
}

// ListInput holds filter parameters for listing tasks.
// All non-empty fields combine with logical AND.
type ListInput struct {
	Status    StatusFilter
	Priority  model.Priority
	DueBefore *time.Time
}

// UpdateInput holds parameters for updating a task.
// Nil pointer fields are left untouched.
type UpdateInput struct {
	ID       string
	Title    *string
	Priority *model.Priority
	DueDate  *time.Time
}
