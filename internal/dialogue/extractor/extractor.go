package extractor

import (
	"context"
	"strings"
	"time"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/dialogue/classifier"
	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/pkg/datemath"
)

// RuleBased extracts structured entities from utterance fragments.
// Pure and deterministic: same (utterance, intent, now), same output.
// Absent fields stay absent — decisions about defaults or clarification
// belong to the orchestrator and the task service.
type RuleBased struct {
	dateMath *datemath.Parser
}

var _ dialogue.EntityExtractor = (*RuleBased)(nil)

// New creates a rule-based entity extractor.
func New(dateMath *datemath.Parser) *RuleBased {
	return &RuleBased{dateMath: dateMath}
}

// Extract parses the utterance according to the detected intent.
func (e *RuleBased) Extract(_ context.Context, utterance string, intent dialogue.Intent, now time.Time) (dialogue.ExtractedEntities, error) {
	norm := classifier.Normalize(utterance)

	switch intent {
	case dialogue.IntentAdd:
		return e.extractAdd(norm, now), nil
	case dialogue.IntentList:
		return e.extractList(norm, now), nil
	case dialogue.IntentComplete, dialogue.IntentUpdate, dialogue.IntentDelete:
		return e.extractTarget(norm, intent, now), nil
	default:
		return dialogue.ExtractedEntities{}, nil
	}
}

// extractAdd pulls title, priority and due date out of an ADD fragment.
func (e *RuleBased) extractAdd(norm string, now time.Time) dialogue.ExtractedEntities {
	var ent dialogue.ExtractedEntities

	text := removeTrigger(norm, dialogue.IntentAdd)
	ent.Priority, text = takePriority(text)
	ent.DueDate, text = e.takeDate(text, now)

	title := stripEdgeWords(text, fillerWords)
	if runes := []rune(title); len(runes) > MaxTitleLength {
		title = strings.TrimSpace(string(runes[:MaxTitleLength]))
		ent.TitleTruncated = true
	}
	ent.Title = title

	return ent
}

// extractList pulls status/priority/date filters out of a LIST fragment.
// Filters are independent; the task service ANDs them together.
func (e *RuleBased) extractList(norm string, now time.Time) dialogue.ExtractedEntities {
	var ent dialogue.ExtractedEntities

	text := removeTrigger(norm, dialogue.IntentList)
	ent.StatusFilter, text = takeStatus(text)
	ent.PriorityFilter, text = takePriority(text)

	if due, _ := e.takeDate(text, now); due != nil {
		end := e.dateMath.EndOfDay(*due)
		ent.DueBefore = &end
	}

	return ent
}

// extractTarget pulls the task reference (and, for UPDATE, the new field
// values) out of a COMPLETE/UPDATE/DELETE fragment. Pronoun references are
// preserved verbatim for the resolver.
func (e *RuleBased) extractTarget(norm string, intent dialogue.Intent, now time.Time) dialogue.ExtractedEntities {
	var ent dialogue.ExtractedEntities

	text := removeTrigger(norm, intent)

	if intent == dialogue.IntentUpdate {
		ent.Priority, text = takePriority(text)
		ent.DueDate, text = e.takeDate(text, now)

		// "rename groceries to shopping list" — the last " to " splits
		// reference from replacement title. Connective residue left behind
		// by priority/date removal does not count as a title.
		if idx := strings.LastIndex(text, " to "); idx > 0 {
			left := strings.TrimSpace(text[:idx])
			right := stripEdgeWords(strings.TrimSpace(text[idx+len(" to "):]), referenceEdgeWords)
			if left != "" && right != "" {
				text = left
				ent.Title = right
			}
		}
	}

	if intent == dialogue.IntentComplete {
		text = completionTail.ReplaceAllString(strings.TrimSpace(text), "")
	}

	trimmed := strings.TrimSpace(text)
	if dialogue.IsPronounReference(trimmed) {
		ent.TaskReference = trimmed
		return ent
	}

	ent.TaskReference = stripEdgeWords(trimmed, referenceEdgeWords)
	return ent
}

// referenceEdgeWords extends fillers with connective leftovers that removal
// of priority/date phrases can strand at reference edges.
var referenceEdgeWords = func() map[string]bool {
	m := map[string]bool{"with": true, "and": true, "as": true, "at": true, "is": true, "be": true}
	for w := range fillerWords {
		m[w] = true
	}
	return m
}()

// removeTrigger removes the first matching trigger phrase of the intent.
func removeTrigger(norm string, intent dialogue.Intent) string {
	for _, phrase := range classifier.TriggerPhrases(intent) {
		if out, ok := removePhrase(norm, phrase); ok {
			return out
		}
	}
	return norm
}

// removePhrase removes one whole-word occurrence of phrase.
func removePhrase(text, phrase string) (string, bool) {
	padded := " " + text + " "
	needle := " " + phrase + " "
	idx := strings.Index(padded, needle)
	if idx < 0 {
		return text, false
	}
	out := padded[:idx] + " " + padded[idx+len(needle):]
	return strings.Join(strings.Fields(out), " "), true
}

// takePriority finds and consumes the first priority keyword phrase.
func takePriority(text string) (model.Priority, string) {
	for _, entry := range priorityPhrases {
		if out, ok := removePhrase(text, entry.phrase); ok {
			return entry.priority, out
		}
	}
	return "", text
}

// takeStatus finds and consumes the first status filter keyword.
func takeStatus(text string) (task.StatusFilter, string) {
	for _, entry := range statusPhrases {
		if out, ok := removePhrase(text, entry.phrase); ok {
			return entry.status, out
		}
	}
	return "", text
}

// takeDate finds, parses and consumes the first date expression, including
// its connective prefix ("by", "due", ...). Unparsable expressions are left
// in place and the field stays absent.
func (e *RuleBased) takeDate(text string, now time.Time) (*time.Time, string) {
	loc := dateExpr.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, text
	}

	// Group 1 or group 2, depending on which alternative matched.
	start, end := loc[2], loc[3]
	if start < 0 {
		start, end = loc[4], loc[5]
	}
	expr := text[start:end]
	parsed, err := e.dateMath.Parse(expr, now)
	if err != nil {
		return nil, text
	}

	rest := strings.Join(strings.Fields(text[:loc[0]]+" "+text[loc[1]:]), " ")
	return &parsed, rest
}

// stripEdgeWords trims words from both edges while they are in the set.
// Interior words are never touched.
func stripEdgeWords(text string, set map[string]bool) string {
	words := strings.Fields(text)
	for len(words) > 0 && set[words[0]] {
		words = words[1:]
	}
	for len(words) > 0 && set[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
