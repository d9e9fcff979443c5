package confirm

import (
	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/dialogue/classifier"
)

// State is the conversational state derived from the caller's context.
type State string

const (
	StateIdle                   State = "IDLE"
	StateAwaitingConfirmation   State = "AWAITING_CONFIRMATION"
	StateAwaitingDisambiguation State = "AWAITING_DISAMBIGUATION"
)

// Reply is the interpretation of an utterance while awaiting confirmation.
type Reply string

const (
	ReplyYes   Reply = "YES"
	ReplyNo    Reply = "NO"
	ReplyOther Reply = "OTHER"
)

// StateOf derives the current state from pending context. A context never
// holds both a pending operation and a disambiguation at once.
func StateOf(cctx dialogue.ConversationContext) State {
	if cctx.Disambiguation != nil {
		return StateAwaitingDisambiguation
	}
	if cctx.PendingOperation != nil {
		return StateAwaitingConfirmation
	}
	return StateIdle
}

var yesWords = map[string]bool{
	"yes": true, "y": true, "yeah": true, "yep": true,
	"confirm": true, "ok": true, "okay": true, "sure": true,
	"do it": true, "go ahead": true,
}

var noWords = map[string]bool{
	"no": true, "n": true, "nope": true, "cancel": true,
	"nevermind": true, "never mind": true, "don t": true, "dont": true,
	"stop": true,
}

// ParseReply classifies a confirmation-turn utterance as yes, no or
// something else entirely.
func ParseReply(utterance string) Reply {
	norm := classifier.Normalize(utterance)
	switch {
	case yesWords[norm]:
		return ReplyYes
	case noWords[norm]:
		return ReplyNo
	default:
		return ReplyOther
	}
}

// RequiresConfirmation reports whether an operation is destructive enough
// to confirm before executing. Deletes always confirm. Completing more
// than one task at once confirms. An update touching two or more fields
// confirms.
func RequiresConfirmation(intent dialogue.Intent, targetCount int, entities dialogue.ExtractedEntities) bool {
	switch intent {
	case dialogue.IntentDelete:
		return true
	case dialogue.IntentComplete:
		return targetCount > 1
	case dialogue.IntentUpdate:
		fields := 0
		if entities.Title != "" {
			fields++
		}
		if entities.Priority != "" {
			fields++
		}
		if entities.DueDate != nil {
			fields++
		}
		return fields >= 2
	default:
		return false
	}
}
