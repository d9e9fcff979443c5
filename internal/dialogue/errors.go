package dialogue

import "errors"

// Domain-specific errors for the dialogue package.
var (
	ErrEmptyUtterance = errors.New("utterance is empty")
	ErrNilTaskService = errors.New("task service is required")
)
