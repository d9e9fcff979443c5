package usecase

import (
	"context"
	"strings"
	"time"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/dialogue/confirm"
	"conversational-task-management/internal/dialogue/planner"
	"conversational-task-management/internal/dialogue/resolver"
	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
)

// turn carries the working state of one Handle call. tasks is updated as
// fragments execute so later fragments in a compound request see the
// effects of earlier ones.
type turn struct {
	sc          model.Scope
	now         time.Time
	tasks       []model.Task
	cctx        dialogue.ConversationContext
	invocations []dialogue.ToolInvocation
	directives  []dialogue.ResponseDirective
}

func (t *turn) directive(d dialogue.ResponseDirective) {
	t.directives = append(t.directives, d)
}

func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, input dialogue.HandleInput) (dialogue.HandleOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return dialogue.HandleOutput{}, dialogue.ErrEmptyUtterance
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	// The caller keeps ownership of its context and task slices; the turn
	// works on copies so nothing is written through shared backing arrays.
	cctx := input.Context
	cctx.LastMentionedTaskIDs = append([]string(nil), cctx.LastMentionedTaskIDs...)
	uc.expirePending(&cctx, now)

	tasks := input.Tasks
	if tasks == nil {
		var err error
		tasks, err = uc.taskUC.List(ctx, sc, task.ListInput{Status: task.StatusAll})
		if err != nil {
			uc.l.Errorf(ctx, "%s: list tasks: %v", logPrefixHandle, err)
			return dialogue.HandleOutput{}, err
		}
	} else {
		tasks = append([]model.Task(nil), input.Tasks...)
	}

	t := &turn{sc: sc, now: now, tasks: tasks, cctx: cctx}

	switch confirm.StateOf(t.cctx) {
	case confirm.StateAwaitingConfirmation:
		uc.handleConfirmationReply(ctx, t, msg)
	case confirm.StateAwaitingDisambiguation:
		uc.handleDisambiguationReply(ctx, t, msg)
	default:
		uc.handleFresh(ctx, t, msg)
	}

	return dialogue.HandleOutput{
		Invocations: t.invocations,
		Context:     t.cctx,
		Directives:  t.directives,
	}, nil
}

// expirePending drops pending state older than the TTL so a stale "yes"
// cannot trigger an operation the user has forgotten about.
func (uc *implUseCase) expirePending(cctx *dialogue.ConversationContext, now time.Time) {
	if cctx.PendingOperation != nil && now.Sub(cctx.PendingOperation.CreatedAt) > uc.pendingTTL {
		cctx.PendingOperation = nil
	}
	if cctx.Disambiguation != nil && now.Sub(cctx.Disambiguation.Op.CreatedAt) > uc.pendingTTL {
		cctx.Disambiguation = nil
	}
}

func (uc *implUseCase) handleConfirmationReply(ctx context.Context, t *turn, msg string) {
	op := *t.cctx.PendingOperation

	switch confirm.ParseReply(msg) {
	case confirm.ReplyYes:
		t.cctx.PendingOperation = nil
		uc.executePending(ctx, t, op)
		uc.resume(ctx, t, op.Remaining)
	case confirm.ReplyNo:
		t.cctx.PendingOperation = nil
		t.directive(dialogue.ResponseDirective{
			Kind:      dialogue.DirectiveResult,
			Operation: &op,
			Detail:    "cancelled",
		})
		uc.resume(ctx, t, op.Remaining)
	default:
		// A reply carrying a recognizable intent supersedes the pending
		// operation; anything else re-prompts.
		if uc.classify(ctx, msg) != dialogue.IntentUnknown {
			t.cctx.PendingOperation = nil
			uc.handleFresh(ctx, t, msg)
			return
		}
		t.directive(dialogue.ResponseDirective{
			Kind:      dialogue.DirectiveConfirm,
			Operation: &op,
		})
	}
}

func (uc *implUseCase) handleDisambiguationReply(ctx context.Context, t *turn, msg string) {
	d := *t.cctx.Disambiguation

	res := resolver.Resolve(msg, t.cctx, tasksByID(t.tasks, d.Candidates))
	if res.Outcome == resolver.OutcomeResolved {
		t.cctx.Disambiguation = nil
		op := d.Op
		op.TargetIDs = res.TaskIDs

		if confirm.RequiresConfirmation(op.Kind, len(op.TargetIDs), op.Payload) {
			op.CreatedAt = t.now
			t.cctx.PendingOperation = &op
			t.directive(dialogue.ResponseDirective{
				Kind:      dialogue.DirectiveConfirm,
				Operation: &op,
			})
			return
		}

		uc.executePending(ctx, t, op)
		uc.resume(ctx, t, op.Remaining)
		return
	}

	if uc.classify(ctx, msg) != dialogue.IntentUnknown {
		t.cctx.Disambiguation = nil
		uc.handleFresh(ctx, t, msg)
		return
	}

	t.directive(dialogue.ResponseDirective{
		Kind:       dialogue.DirectiveDisambiguate,
		Candidates: candidatesOf(t.tasks, d.Candidates),
	})
}

func (uc *implUseCase) handleFresh(ctx context.Context, t *turn, msg string) {
	frags := planner.Plan(msg, func(s string) dialogue.Intent {
		return uc.classify(ctx, s)
	})
	uc.runFragments(ctx, t, frags)
}

// resume re-runs fragments that were suspended behind a confirmation or
// disambiguation. They carry only text, so intents are re-derived.
func (uc *implUseCase) resume(ctx context.Context, t *turn, texts []string) {
	if len(texts) == 0 {
		return
	}
	frags := make([]dialogue.Fragment, 0, len(texts))
	for _, txt := range texts {
		frags = append(frags, dialogue.Fragment{Intent: uc.classify(ctx, txt), Text: txt})
	}
	uc.runFragments(ctx, t, frags)
}

func (uc *implUseCase) runFragments(ctx context.Context, t *turn, frags []dialogue.Fragment) {
	for i, frag := range frags {
		remaining := fragmentTexts(frags[i+1:])
		if suspended := uc.runFragment(ctx, t, frag, remaining); suspended {
			return
		}
	}
}

// runFragment executes one fragment. It returns true when the turn must
// suspend (awaiting confirmation or disambiguation), in which case the
// caller stops and the remaining fragments travel inside the pending op.
func (uc *implUseCase) runFragment(ctx context.Context, t *turn, frag dialogue.Fragment, remaining []string) bool {
	if frag.Intent == dialogue.IntentUnknown {
		t.directive(dialogue.ResponseDirective{
			Kind:   dialogue.DirectiveClarify,
			Error:  dialogue.ErrKindUnrecognized,
			Detail: frag.Text,
		})
		return false
	}

	ent, err := uc.extractor.Extract(ctx, frag.Text, frag.Intent, t.now)
	if err != nil {
		uc.l.Warnf(ctx, "%s: extract %q: %v", logPrefixHandle, frag.Text, err)
		t.directive(dialogue.ResponseDirective{
			Kind:   dialogue.DirectiveClarify,
			Error:  dialogue.ErrKindUnrecognized,
			Detail: frag.Text,
		})
		return false
	}

	switch frag.Intent {
	case dialogue.IntentAdd:
		if ent.Title == "" {
			t.directive(dialogue.ResponseDirective{
				Kind:   dialogue.DirectiveClarify,
				Error:  dialogue.ErrKindMissingRequiredField,
				Detail: "title",
			})
			return false
		}
		uc.execCreate(ctx, t, ent)
		return false

	case dialogue.IntentList:
		uc.execList(ctx, t, ent)
		return false
	}

	res := resolver.Resolve(ent.TaskReference, t.cctx, t.tasks)
	switch res.Outcome {
	case resolver.OutcomeNeedsContext:
		t.directive(dialogue.ResponseDirective{
			Kind:   dialogue.DirectiveClarify,
			Error:  dialogue.ErrKindReferenceNotFound,
			Detail: "no task in context",
		})
		return false

	case resolver.OutcomeNotFound:
		t.directive(dialogue.ResponseDirective{
			Kind:   dialogue.DirectiveClarify,
			Error:  dialogue.ErrKindReferenceNotFound,
			Detail: ent.TaskReference,
		})
		return false

	case resolver.OutcomeAmbiguous:
		op := dialogue.PendingOperation{
			Kind:      frag.Intent,
			Payload:   ent,
			Remaining: remaining,
			CreatedAt: t.now,
		}
		t.cctx.Disambiguation = &dialogue.Disambiguation{Candidates: res.TaskIDs, Op: op}
		t.cctx.PendingOperation = nil
		t.directive(dialogue.ResponseDirective{
			Kind:       dialogue.DirectiveDisambiguate,
			Candidates: candidatesOf(t.tasks, res.TaskIDs),
		})
		return true
	}

	op := dialogue.PendingOperation{
		Kind:      frag.Intent,
		TargetIDs: res.TaskIDs,
		Payload:   ent,
		Remaining: remaining,
		CreatedAt: t.now,
	}

	if confirm.RequiresConfirmation(frag.Intent, len(res.TaskIDs), ent) {
		t.cctx.PendingOperation = &op
		t.cctx.Disambiguation = nil
		t.directive(dialogue.ResponseDirective{
			Kind:      dialogue.DirectiveConfirm,
			Operation: &op,
		})
		return true
	}

	uc.executePending(ctx, t, op)
	return false
}

func (uc *implUseCase) classify(ctx context.Context, utterance string) dialogue.Intent {
	intent, err := uc.classifier.Classify(ctx, utterance)
	if err != nil {
		uc.l.Warnf(ctx, "%s: classify %q: %v", logPrefixHandle, utterance, err)
		return dialogue.IntentUnknown
	}
	return intent
}

func fragmentTexts(frags []dialogue.Fragment) []string {
	if len(frags) == 0 {
		return nil
	}
	texts := make([]string, 0, len(frags))
	for _, f := range frags {
		texts = append(texts, f.Text)
	}
	return texts
}

func tasksByID(tasks []model.Task, ids []string) []model.Task {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Task
	for _, t := range tasks {
		if want[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func candidatesOf(tasks []model.Task, ids []string) []dialogue.Candidate {
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	out := make([]dialogue.Candidate, 0, len(ids))
	for _, id := range ids {
		out = append(out, dialogue.Candidate{ID: id, Title: byID[id].Title})
	}
	return out
}
