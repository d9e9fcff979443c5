package resolver

import (
	"regexp"
	"strconv"
	"strings"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/dialogue/classifier"
	"conversational-task-management/internal/model"
)

// Outcome is the result category of a reference resolution.
type Outcome string

const (
	OutcomeResolved     Outcome = "RESOLVED"
	OutcomeAmbiguous    Outcome = "AMBIGUOUS"
	OutcomeNotFound     Outcome = "NOT_FOUND"
	OutcomeNeedsContext Outcome = "NEEDS_CONTEXT"
)

// Resolution is the outcome of resolving one task reference.
// Resolved with multiple ids means a bulk target ("delete everything").
// Ambiguous carries the candidate ids in candidate-task order.
type Resolution struct {
	Outcome Outcome
	TaskIDs []string
}

// Resolve maps a task-reference string against the caller's task set and
// conversation context to zero, one or many task ids.
func Resolve(reference string, cctx dialogue.ConversationContext, candidates []model.Task) Resolution {
	ref := classifier.Normalize(reference)

	// Pronouns resolve through the most recently mentioned task.
	if ref == "" || dialogue.IsPronounReference(ref) {
		if cctx.LastMentionedTaskID != "" {
			return Resolution{Outcome: OutcomeResolved, TaskIDs: []string{cctx.LastMentionedTaskID}}
		}
		return Resolution{Outcome: OutcomeNeedsContext}
	}

	// "all"/"everything" targets the whole candidate set.
	if dialogue.IsBulkReference(ref) {
		if len(candidates) == 0 {
			return Resolution{Outcome: OutcomeNotFound}
		}
		ids := make([]string, 0, len(candidates))
		for _, t := range candidates {
			ids = append(ids, t.ID)
		}
		return Resolution{Outcome: OutcomeResolved, TaskIDs: ids}
	}

	// Positional replies ("2", "the second one") select from a prior
	// ambiguous or LIST result.
	if idx, ok := ParseSelection(ref); ok {
		if id, found := selectPositional(cctx, idx); found {
			return Resolution{Outcome: OutcomeResolved, TaskIDs: []string{id}}
		}
	}

	// Title match, case-insensitive, in candidate order.
	matches := matchTitles(ref, candidates)
	switch len(matches) {
	case 0:
		return Resolution{Outcome: OutcomeNotFound}
	case 1:
		return Resolution{Outcome: OutcomeResolved, TaskIDs: matches}
	default:
		return Resolution{Outcome: OutcomeAmbiguous, TaskIDs: matches}
	}
}

// matchTitles returns ids of candidates whose title matches the reference.
// An exact title match short-circuits to a single result; otherwise
// substring matches (either direction) and whole-word overlap count.
func matchTitles(ref string, candidates []model.Task) []string {
	var matches []string
	for _, t := range candidates {
		title := classifier.Normalize(t.Title)
		if title == ref {
			return []string{t.ID}
		}
		if strings.Contains(title, ref) || strings.Contains(ref, title) || wordsOverlap(ref, title) {
			matches = append(matches, t.ID)
		}
	}
	return matches
}

// wordsOverlap reports whether every word of the reference occurs in the
// title. Keeps "report task" matching "quarterly report".
func wordsOverlap(ref, title string) bool {
	titleWords := make(map[string]bool)
	for _, w := range strings.Fields(title) {
		titleWords[w] = true
	}
	refWords := strings.Fields(ref)
	if len(refWords) == 0 {
		return false
	}
	for _, w := range refWords {
		if !titleWords[w] {
			return false
		}
	}
	return true
}

// selectPositional picks the idx-th (1-based) id from the disambiguation
// candidates, falling back to the last LIST result.
func selectPositional(cctx dialogue.ConversationContext, idx int) (string, bool) {
	var pool []string
	if cctx.Disambiguation != nil {
		pool = cctx.Disambiguation.Candidates
	} else if len(cctx.LastMentionedTaskIDs) > 0 {
		pool = cctx.LastMentionedTaskIDs
	}
	if idx == -1 {
		idx = len(pool)
	}
	if idx < 1 || idx > len(pool) {
		return "", false
	}
	return pool[idx-1], true
}

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"last": -1,
}

var selectionRe = regexp.MustCompile(`^(?:(?:the\s+)?(\d+|first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth|last)(?:\s+one)?|number\s+(\d+)|option\s+(\d+))$`)

// ParseSelection parses a positional/numeric selection reply into a
// 1-based index. "last" yields -1; callers translate it against the pool.
func ParseSelection(reply string) (int, bool) {
	norm := classifier.Normalize(reply)
	m := selectionRe.FindStringSubmatch(norm)
	if m == nil {
		return 0, false
	}

	token := m[1]
	if token == "" {
		token = m[2]
	}
	if token == "" {
		token = m[3]
	}

	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	if n, ok := ordinalWords[token]; ok {
		return n, true
	}
	return 0, false
}
