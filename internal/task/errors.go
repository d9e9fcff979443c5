package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound        = errors.New("task not found")
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrTitleTooLong    = errors.New("task title exceeds maximum length")
	ErrInvalidPriority = errors.New("invalid priority")
)
