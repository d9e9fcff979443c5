package classifier

import "conversational-task-management/internal/dialogue"

// Log prefixes
const (
	LogPrefixClassify = "internal.dialogue.classifier.Classify"
)

// triggerSet binds one intent to its trigger phrases.
type triggerSet struct {
	intent  dialogue.Intent
	phrases []string
}

// triggerSets is the ordered trigger-phrase table. The first category with a
// matching phrase wins, so earlier entries shadow later ones on overlap.
var triggerSets = []triggerSet{
	{dialogue.IntentAdd, []string{
		"add", "create", "remind me to", "new task", "i need to", "note down",
	}},
	{dialogue.IntentList, []string{
		"list", "show", "display", "view", "what do i have", "what are my", "what's on",
	}},
	{dialogue.IntentComplete, []string{
		"complete", "mark", "finish", "finished", "done with", "check off", "i did",
	}},
	{dialogue.IntentUpdate, []string{
		"update", "change", "rename", "modify", "edit", "reschedule", "move", "postpone", "set",
	}},
	{dialogue.IntentDelete, []string{
		"delete", "remove", "cancel", "drop", "clear", "get rid of", "scrap",
	}},
}

// TriggerPhrases returns the trigger phrases for an intent. The entity
// extractor uses these to strip intent keywords before extracting fields.
func TriggerPhrases(intent dialogue.Intent) []string {
	for _, set := range triggerSets {
		if set.intent == intent {
			return set.phrases
		}
	}
	return nil
}
