package planner

import (
	"regexp"
	"sort"
	"strings"

	"conversational-task-management/internal/dialogue"
)

// rank fixes execution order for compound requests. Creations run before
// completions so a task created in the same message can be acted on,
// deletes run after mutations, and a list at the end reflects every change.
// Unintelligible fragments sort last so their clarifications trail the
// executed work.
var rank = map[dialogue.Intent]int{
	dialogue.IntentAdd:      0,
	dialogue.IntentComplete: 1,
	dialogue.IntentUpdate:   2,
	dialogue.IntentDelete:   3,
	dialogue.IntentList:     4,
	dialogue.IntentUnknown:  5,
}

var splitRe = regexp.MustCompile(`\s+and\s+|\s*;\s*|\s*,\s*|\s+then\s+`)

// Split breaks a message into intent-bearing fragments. Parts that carry
// no recognizable intent of their own are folded back into the preceding
// fragment, so "add buy milk and eggs" stays one creation.
func Split(message string, classify func(string) dialogue.Intent) []dialogue.Fragment {
	parts := splitRe.Split(message, -1)

	var frags []dialogue.Fragment
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		intent := classify(part)
		if intent == dialogue.IntentUnknown && len(frags) > 0 {
			last := &frags[len(frags)-1]
			last.Text = last.Text + " and " + part
			continue
		}
		frags = append(frags, dialogue.Fragment{Intent: intent, Text: part})
	}

	if len(frags) == 0 {
		return []dialogue.Fragment{{Intent: dialogue.IntentUnknown, Text: strings.TrimSpace(message)}}
	}
	return frags
}

// Order sorts fragments into canonical execution order. The sort is
// stable so fragments sharing an intent keep their utterance order.
func Order(frags []dialogue.Fragment) []dialogue.Fragment {
	ordered := make([]dialogue.Fragment, len(frags))
	copy(ordered, frags)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rank[ordered[i].Intent] < rank[ordered[j].Intent]
	})
	return ordered
}

// Plan splits and orders a message in one step.
func Plan(message string, classify func(string) dialogue.Intent) []dialogue.Fragment {
	return Order(Split(message, classify))
}
