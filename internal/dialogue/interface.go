package dialogue

import (
	"context"
	"time"

	"conversational-task-management/internal/model"
)

// Engine is the per-turn dialogue orchestrator. Stateless: the same input
// always yields the same output, so one instance may serve any number of
// sessions concurrently.
type Engine interface {
	Handle(ctx context.Context, sc model.Scope, input HandleInput) (HandleOutput, error)
}

// IntentClassifier maps an utterance to an Intent. Implementations may be
// rule-based (deterministic) or model-backed; the engine is agnostic.
type IntentClassifier interface {
	Classify(ctx context.Context, utterance string) (Intent, error)
}

// EntityExtractor parses an utterance plus its detected intent into
// structured fields. now anchors relative date expressions.
type EntityExtractor interface {
	Extract(ctx context.Context, utterance string, intent Intent, now time.Time) (ExtractedEntities, error)
}
