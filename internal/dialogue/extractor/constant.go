package extractor

import (
	"regexp"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
)

// MaxTitleLength mirrors the task service cap; longer titles are truncated
// here with the truncation surfaced, never silently dropped.
const MaxTitleLength = task.MaxTitleLength

// fillerWords are stripped from the edges of extracted titles and
// references. Interior words stay untouched ("go to gym" keeps its "to").
var fillerWords = map[string]bool{
	"a": true, "the": true, "my": true, "to": true, "task": true, "item": true,
	"please": true, "with": true,
}

// priorityPhrases maps keyword phrases to priority levels. Longer phrases
// are listed first so they are consumed before their single-word parts.
var priorityPhrases = []struct {
	phrase   string
	priority model.Priority
}{
	{"high priority", model.PriorityHigh},
	{"priority high", model.PriorityHigh},
	{"top priority", model.PriorityHigh},
	{"medium priority", model.PriorityMedium},
	{"priority medium", model.PriorityMedium},
	{"normal priority", model.PriorityMedium},
	{"low priority", model.PriorityLow},
	{"priority low", model.PriorityLow},
	{"urgent", model.PriorityHigh},
	{"important", model.PriorityHigh},
	{"asap", model.PriorityHigh},
	{"whenever", model.PriorityLow},
}

// statusPhrases maps keyword phrases to LIST status filters.
var statusPhrases = []struct {
	phrase string
	status task.StatusFilter
}{
	{"completed", task.StatusComplete},
	{"complete", task.StatusComplete},
	{"done", task.StatusComplete},
	{"finished", task.StatusComplete},
	{"incomplete", task.StatusIncomplete},
	{"unfinished", task.StatusIncomplete},
	{"pending", task.StatusIncomplete},
	{"open", task.StatusIncomplete},
	{"outstanding", task.StatusIncomplete},
	{"remaining", task.StatusIncomplete},
	{"todo", task.StatusIncomplete},
	{"all", task.StatusAll},
	{"everything", task.StatusAll},
}

// dateExpr matches one relative or absolute date expression, optionally
// prefixed by a connective ("by", "due", "on", "for", "until"). A bare
// weekday name counts only after a connective, so "prepare monday agenda"
// keeps its weekday in the title. The captured group is the expression
// handed to pkg/datemath.
var dateExpr = regexp.MustCompile(
	`(?:\b(?:by|due|on|for|until|before)\s+)?\b(today|tonight|tomorrow|yesterday|` +
		`next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|week)|` +
		`in\s+\d+\s+(?:days?|weeks?|months?)|` +
		`\d{4}-\d{2}-\d{2})\b` +
		`|\b(?:by|due|on|for|until|before|to)\s+` +
		`(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

// completionTail strips trailing completion words off COMPLETE references
// ("mark groceries as done" → "groceries").
var completionTail = regexp.MustCompile(`\s+(?:as\s+)?(?:done|complete|completed|finished|off)$`)
