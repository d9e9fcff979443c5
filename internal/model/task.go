package model

import "time"

// Priority is the task priority level.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Valid reports whether the priority is one of the known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task represents a single task belonging to one user.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Priority  Priority   `json:"priority"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
