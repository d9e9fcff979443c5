package classifier

import (
	"context"
	"strings"

	"conversational-task-management/internal/dialogue"
)

// RuleBased classifies intents by ordered trigger-phrase matching.
// Deterministic and side-effect free: same utterance, same intent.
type RuleBased struct{}

var _ dialogue.IntentClassifier = (*RuleBased)(nil)

// NewRuleBased creates a rule-based classifier.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Classify returns the first intent whose trigger-phrase set matches the
// utterance, or UNKNOWN. Matching is case-insensitive, whitespace-normalized
// and word-boundary aware ("create" never matches inside "procreated").
func (c *RuleBased) Classify(_ context.Context, utterance string) (dialogue.Intent, error) {
	norm := Normalize(utterance)
	if norm == "" {
		return dialogue.IntentUnknown, nil
	}

	for _, set := range triggerSets {
		for _, phrase := range set.phrases {
			if ContainsPhrase(norm, phrase) {
				return set.intent, nil
			}
		}
	}
	return dialogue.IntentUnknown, nil
}

// Normalize lowercases, strips sentence punctuation and collapses whitespace.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ',', '.', '!', '?', ';', ':':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ContainsPhrase reports whether the normalized utterance contains the
// phrase as a whole-word sequence.
func ContainsPhrase(norm, phrase string) bool {
	return strings.Contains(" "+norm+" ", " "+phrase+" ")
}
