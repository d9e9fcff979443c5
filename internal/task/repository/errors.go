package repository

import "errors"

// ErrTaskNotFound is returned when a task id does not exist within the
// caller's scope.
var ErrTaskNotFound = errors.New("task not found in repository")
