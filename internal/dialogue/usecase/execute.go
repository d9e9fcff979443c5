package usecase

import (
	"context"
	"errors"
	"time"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/task"
)

// executePending runs a fully resolved operation, one tool invocation per
// target task.
func (uc *implUseCase) executePending(ctx context.Context, t *turn, op dialogue.PendingOperation) {
	for _, id := range op.TargetIDs {
		switch op.Kind {
		case dialogue.IntentComplete:
			uc.execComplete(ctx, t, id)
		case dialogue.IntentUpdate:
			uc.execUpdate(ctx, t, id, op.Payload)
		case dialogue.IntentDelete:
			uc.execDelete(ctx, t, id)
		}
	}
}

func (uc *implUseCase) execCreate(ctx context.Context, t *turn, ent dialogue.ExtractedEntities) {
	params := map[string]any{"title": ent.Title}
	if ent.Priority != "" {
		params["priority"] = string(ent.Priority)
	}
	if ent.DueDate != nil {
		params["due_date"] = ent.DueDate.Format(time.RFC3339)
	}
	inv := dialogue.ToolInvocation{
		ToolName:   dialogue.ToolCreateTask,
		Parameters: params,
		Status:     dialogue.StatusPending,
	}

	created, err := uc.taskUC.Create(ctx, t.sc, task.CreateInput{
		Title:    ent.Title,
		Priority: ent.Priority,
		DueDate:  ent.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: create: %v", logPrefixExecute, err)
		uc.failInvocation(t, inv, err)
		return
	}

	inv.Status = dialogue.StatusSuccess
	t.invocations = append(t.invocations, inv)
	t.tasks = append(t.tasks, created)
	t.cctx.LastMentionedTaskID = created.ID
	t.directive(dialogue.ResponseDirective{
		Kind: dialogue.DirectiveResult,
		Task: &created,
	})
	if ent.TitleTruncated {
		t.directive(dialogue.ResponseDirective{
			Kind: dialogue.DirectiveTitleTruncated,
			Task: &created,
		})
	}
}

func (uc *implUseCase) execList(ctx context.Context, t *turn, ent dialogue.ExtractedEntities) {
	status := ent.StatusFilter
	if status == "" {
		status = task.StatusIncomplete
	}

	params := map[string]any{"status": string(status)}
	if ent.PriorityFilter != "" {
		params["priority"] = string(ent.PriorityFilter)
	}
	if ent.DueBefore != nil {
		params["due_before"] = ent.DueBefore.Format(time.RFC3339)
	}
	inv := dialogue.ToolInvocation{
		ToolName:   dialogue.ToolListTasks,
		Parameters: params,
		Status:     dialogue.StatusPending,
	}

	listed, err := uc.taskUC.List(ctx, t.sc, task.ListInput{
		Status:    status,
		Priority:  ent.PriorityFilter,
		DueBefore: ent.DueBefore,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: list: %v", logPrefixExecute, err)
		uc.failInvocation(t, inv, err)
		return
	}

	inv.Status = dialogue.StatusSuccess
	t.invocations = append(t.invocations, inv)

	ids := make([]string, 0, len(listed))
	for _, lt := range listed {
		ids = append(ids, lt.ID)
	}
	t.cctx.LastMentionedTaskIDs = ids
	if len(ids) == 1 {
		t.cctx.LastMentionedTaskID = ids[0]
	}
	t.directive(dialogue.ResponseDirective{
		Kind:  dialogue.DirectiveResult,
		Tasks: listed,
	})
}

func (uc *implUseCase) execComplete(ctx context.Context, t *turn, id string) {
	inv := dialogue.ToolInvocation{
		ToolName:   dialogue.ToolCompleteTask,
		Parameters: map[string]any{"id": id},
		Status:     dialogue.StatusPending,
	}

	completed, err := uc.taskUC.Complete(ctx, t.sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "%s: complete %s: %v", logPrefixExecute, id, err)
		uc.failInvocation(t, inv, err)
		return
	}

	inv.Status = dialogue.StatusSuccess
	t.invocations = append(t.invocations, inv)
	t.replaceTask(completed)
	t.cctx.LastMentionedTaskID = id
	t.directive(dialogue.ResponseDirective{
		Kind: dialogue.DirectiveResult,
		Task: &completed,
	})
}

func (uc *implUseCase) execUpdate(ctx context.Context, t *turn, id string, ent dialogue.ExtractedEntities) {
	input := task.UpdateInput{ID: id}
	params := map[string]any{"id": id}
	if ent.Title != "" {
		title := ent.Title
		input.Title = &title
		params["title"] = title
	}
	if ent.Priority != "" {
		prio := ent.Priority
		input.Priority = &prio
		params["priority"] = string(prio)
	}
	if ent.DueDate != nil {
		input.DueDate = ent.DueDate
		params["due_date"] = ent.DueDate.Format(time.RFC3339)
	}

	if input.Title == nil && input.Priority == nil && input.DueDate == nil {
		t.directive(dialogue.ResponseDirective{
			Kind:   dialogue.DirectiveClarify,
			Error:  dialogue.ErrKindMissingRequiredField,
			Detail: "nothing to change",
		})
		return
	}

	inv := dialogue.ToolInvocation{
		ToolName:   dialogue.ToolUpdateTask,
		Parameters: params,
		Status:     dialogue.StatusPending,
	}

	updated, err := uc.taskUC.Update(ctx, t.sc, input)
	if err != nil {
		uc.l.Errorf(ctx, "%s: update %s: %v", logPrefixExecute, id, err)
		uc.failInvocation(t, inv, err)
		return
	}

	inv.Status = dialogue.StatusSuccess
	t.invocations = append(t.invocations, inv)
	t.replaceTask(updated)
	t.cctx.LastMentionedTaskID = id
	t.directive(dialogue.ResponseDirective{
		Kind: dialogue.DirectiveResult,
		Task: &updated,
	})
}

func (uc *implUseCase) execDelete(ctx context.Context, t *turn, id string) {
	inv := dialogue.ToolInvocation{
		ToolName:   dialogue.ToolDeleteTask,
		Parameters: map[string]any{"id": id},
		Status:     dialogue.StatusPending,
	}

	snapshot := t.findTask(id)

	if err := uc.taskUC.Delete(ctx, t.sc, id); err != nil {
		uc.l.Errorf(ctx, "%s: delete %s: %v", logPrefixExecute, id, err)
		uc.failInvocation(t, inv, err)
		return
	}

	inv.Status = dialogue.StatusSuccess
	t.invocations = append(t.invocations, inv)
	t.removeTask(id)
	t.directive(dialogue.ResponseDirective{
		Kind:   dialogue.DirectiveResult,
		Task:   snapshot,
		Detail: "deleted",
	})
}

// failInvocation records a failed invocation and surfaces its error kind.
func (uc *implUseCase) failInvocation(t *turn, inv dialogue.ToolInvocation, err error) {
	inv.Status = dialogue.StatusFailed
	inv.Error = mapTaskErr(err)
	t.invocations = append(t.invocations, inv)
	t.directive(dialogue.ResponseDirective{
		Kind:   dialogue.DirectiveResult,
		Error:  inv.Error,
		Detail: err.Error(),
	})
}

func mapTaskErr(err error) dialogue.ErrorKind {
	switch {
	case errors.Is(err, task.ErrNotFound):
		return dialogue.ErrKindReferenceNotFound
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrTitleTooLong),
		errors.Is(err, task.ErrInvalidPriority):
		return dialogue.ErrKindToolPermanent
	default:
		return dialogue.ErrKindToolTransient
	}
}
