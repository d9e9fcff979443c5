package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/pkg/gemini"
	pkgLog "conversational-task-management/pkg/log"
)

const promptClassify = `You are an intent classifier for a task manager.
Classify the following message into exactly one intent.

Message: %q

Possible intents:
1. ADD: create a new task or reminder
2. LIST: list, show or query existing tasks
3. COMPLETE: mark a task as done
4. UPDATE: change a task's title, priority or due date
5. DELETE: remove a task
6. UNKNOWN: anything else

Return JSON: {"intent": "ADD|LIST|COMPLETE|UPDATE|DELETE|UNKNOWN"}`

const classifyTemperature = 0.1

// LLMBacked classifies intents via an LLM call, falling back to the
// rule-based classifier whenever the model errs or returns junk. It
// satisfies the same contract as RuleBased; the engine does not care
// which one is plugged in.
type LLMBacked struct {
	llm      gemini.IGemini
	fallback *RuleBased
	l        pkgLog.Logger
}

var _ dialogue.IntentClassifier = (*LLMBacked)(nil)

// NewLLMBacked creates a model-backed classifier.
func NewLLMBacked(llm gemini.IGemini, l pkgLog.Logger) *LLMBacked {
	return &LLMBacked{
		llm:      llm,
		fallback: NewRuleBased(),
		l:        l,
	}
}

// Classify asks the model for the intent. Any failure degrades to the
// deterministic rule-based result rather than surfacing an error.
func (c *LLMBacked) Classify(ctx context.Context, utterance string) (dialogue.Intent, error) {
	resp, err := c.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: fmt.Sprintf(promptClassify, utterance)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{Temperature: classifyTemperature},
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: LLM call failed, using rule-based fallback: %v", LogPrefixClassify, err)
		return c.fallback.Classify(ctx, utterance)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		c.l.Warnf(ctx, "%s: empty LLM response, using rule-based fallback", LogPrefixClassify)
		return c.fallback.Classify(ctx, utterance)
	}

	var out struct {
		Intent dialogue.Intent `json:"intent"`
	}
	text := stripCodeFences(resp.Candidates[0].Content.Parts[0].Text)
	if jsonErr := json.Unmarshal([]byte(text), &out); jsonErr != nil || !out.Intent.Valid() {
		c.l.Warnf(ctx, "%s: unparsable LLM response %q, using rule-based fallback", LogPrefixClassify, text)
		return c.fallback.Classify(ctx, utterance)
	}

	return out.Intent, nil
}

// stripCodeFences removes markdown code fences LLMs often wrap JSON in.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
