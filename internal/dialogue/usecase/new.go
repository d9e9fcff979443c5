package usecase

import (
	"time"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/task"
	pkgLog "conversational-task-management/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	classifier dialogue.IntentClassifier
	extractor  dialogue.EntityExtractor
	taskUC     task.Service
	pendingTTL time.Duration
}

var _ dialogue.Engine = (*implUseCase)(nil)

// Option tweaks engine construction.
type Option func(*implUseCase)

// WithPendingTTL overrides how long a pending confirmation or
// disambiguation stays valid.
func WithPendingTTL(ttl time.Duration) Option {
	return func(uc *implUseCase) {
		uc.pendingTTL = ttl
	}
}

// New creates a new dialogue Engine instance.
func New(l pkgLog.Logger, classifier dialogue.IntentClassifier, extractor dialogue.EntityExtractor, taskUC task.Service, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:          l,
		classifier: classifier,
		extractor:  extractor,
		taskUC:     taskUC,
		pendingTTL: defaultPendingTTL,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
