package telegram

import (
	"fmt"
	"strings"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/model"
)

// renderDirectives turns the engine's presentation directives into one
// Telegram message. Wording lives here; the engine only says what kind of
// thing to present.
func renderDirectives(directives []dialogue.ResponseDirective) string {
	var parts []string
	for _, d := range directives {
		if s := renderDirective(d); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func renderDirective(d dialogue.ResponseDirective) string {
	switch d.Kind {
	case dialogue.DirectiveConfirm:
		return renderConfirm(d.Operation)
	case dialogue.DirectiveDisambiguate:
		return renderDisambiguate(d.Candidates)
	case dialogue.DirectiveResult:
		return renderResult(d)
	case dialogue.DirectiveClarify:
		return renderClarify(d)
	case dialogue.DirectiveTitleTruncated:
		return "⚠️ That title was quite long, so I shortened it."
	default:
		return ""
	}
}

func renderConfirm(op *dialogue.PendingOperation) string {
	if op == nil {
		return "Should I go ahead? (yes/no)"
	}

	var action string
	switch op.Kind {
	case dialogue.IntentDelete:
		action = "delete"
	case dialogue.IntentComplete:
		action = "complete"
	case dialogue.IntentUpdate:
		action = "update"
	default:
		action = "run"
	}

	if n := len(op.TargetIDs); n > 1 {
		return fmt.Sprintf("This will %s *%d tasks*. Are you sure? (yes/no)", action, n)
	}
	return fmt.Sprintf("Should I %s that task? (yes/no)", action)
}

func renderDisambiguate(candidates []dialogue.Candidate) string {
	var b strings.Builder
	b.WriteString("Which one did you mean?\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Title)
	}
	b.WriteString("Reply with a number.")
	return b.String()
}

func renderResult(d dialogue.ResponseDirective) string {
	if d.Error != dialogue.ErrKindNone {
		return fmt.Sprintf("❌ That didn't work: %s", d.Detail)
	}
	if d.Detail == "cancelled" {
		return "Okay, cancelled."
	}
	if d.Tasks != nil {
		return renderTaskList(d.Tasks)
	}
	if d.Task != nil {
		if d.Detail == "deleted" {
			return fmt.Sprintf("🗑 Deleted *%s*.", d.Task.Title)
		}
		if d.Task.Completed {
			return fmt.Sprintf("✅ Done: *%s*", d.Task.Title)
		}
		return fmt.Sprintf("📝 *%s*%s", d.Task.Title, renderTaskMeta(d.Task))
	}
	return ""
}

func renderTaskList(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "Nothing here. Enjoy the quiet!"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You have *%d task(s)*:\n", len(tasks))
	for i, t := range tasks {
		mark := "◻️"
		if t.Completed {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%d. %s %s%s\n", i+1, mark, t.Title, renderTaskMeta(&t))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTaskMeta(t *model.Task) string {
	var meta []string
	if t.Priority != "" && t.Priority != model.PriorityMedium {
		meta = append(meta, strings.ToLower(string(t.Priority))+" priority")
	}
	if t.DueDate != nil {
		meta = append(meta, "due "+t.DueDate.Format("Mon Jan 2"))
	}
	if len(meta) == 0 {
		return ""
	}
	return " (" + strings.Join(meta, ", ") + ")"
}

func renderClarify(d dialogue.ResponseDirective) string {
	switch d.Error {
	case dialogue.ErrKindUnrecognized:
		return "I didn't catch that. Try something like `add buy milk` or `show my tasks`."
	case dialogue.ErrKindMissingRequiredField:
		return "What should the task be called?"
	case dialogue.ErrKindReferenceNotFound:
		if d.Detail == "no task in context" {
			return "Which task do you mean?"
		}
		return fmt.Sprintf("I couldn't find a task matching *%s*.", d.Detail)
	default:
		return "Could you rephrase that?"
	}
}
