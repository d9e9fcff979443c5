package memory

import (
	"sync"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task/repository"
	pkgLog "conversational-task-management/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	mu sync.RWMutex

	// tasks maps user id → task id → task. Insertion order per user is
	// tracked separately so listings are stable.
	tasks map[string]map[string]model.Task
	order map[string][]string
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-memory task repository.
func New(l pkgLog.Logger) *implRepository {
	return &implRepository{
		l:     l,
		tasks: make(map[string]map[string]model.Task),
		order: make(map[string][]string),
	}
}
