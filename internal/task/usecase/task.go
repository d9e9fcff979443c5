package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/repository"
	"conversational-task-management/pkg/gcalendar"
)

// Create validates input, applies the MEDIUM priority default and stores the
// task. When a calendar client is configured and a due date is set, an
// all-day event is created best-effort.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	// Length is counted in runes to match the truncation done upstream;
	// multi-byte titles within the cap must not be rejected.
	if utf8.RuneCountInString(title) > task.MaxTitleLength {
		return model.Task{}, task.ErrTitleTooLong
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return model.Task{}, task.ErrInvalidPriority
	}

	created, err := uc.repo.CreateTask(ctx, sc, repository.CreateTaskOptions{
		Title:    title,
		Priority: priority,
		DueDate:  input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: CreateTask: %v", err)
		return model.Task{}, err
	}

	if uc.calendar != nil && created.DueDate != nil {
		link, calErr := uc.calendar.CreateEvent(ctx, uc.calendarID, gcalendar.EventInput{
			Title: created.Title,
			Due:   *created.DueDate,
		})
		if calErr != nil {
			uc.l.Warnf(ctx, "task.usecase.Create: calendar sync failed for %s: %v", created.ID, calErr)
		} else {
			uc.l.Infof(ctx, "task.usecase.Create: calendar event created: %s", link)
		}
	}

	return created, nil
}

// List returns the caller's tasks filtered by input.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	opt := repository.ListTasksOptions{
		DueBefore: input.DueBefore,
	}

	switch input.Status {
	case task.StatusComplete:
		done := true
		opt.Completed = &done
	case task.StatusIncomplete:
		done := false
		opt.Completed = &done
	case task.StatusAll, "":
		// no completion filter
	}

	if input.Priority != "" {
		if !input.Priority.Valid() {
			return nil, task.ErrInvalidPriority
		}
		opt.Priority = input.Priority
	}

	return uc.repo.ListTasks(ctx, sc, opt)
}

// Get fetches one task by id.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	found, err := uc.repo.GetTask(ctx, sc, id)
	if err != nil {
		return model.Task{}, uc.mapRepoErr(ctx, "Get", err)
	}
	return found, nil
}

// Complete marks a task done.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	done := true
	updated, err := uc.repo.UpdateTask(ctx, sc, repository.UpdateTaskOptions{ID: id, Completed: &done})
	if err != nil {
		return model.Task{}, uc.mapRepoErr(ctx, "Complete", err)
	}
	return updated, nil
}

// Update applies the set fields of input to an existing task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
		if utf8.RuneCountInString(trimmed) > task.MaxTitleLength {
			return model.Task{}, task.ErrTitleTooLong
		}
		input.Title = &trimmed
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return model.Task{}, task.ErrInvalidPriority
	}

	updated, err := uc.repo.UpdateTask(ctx, sc, repository.UpdateTaskOptions{
		ID:       input.ID,
		Title:    input.Title,
		Priority: input.Priority,
		DueDate:  input.DueDate,
	})
	if err != nil {
		return model.Task{}, uc.mapRepoErr(ctx, "Update", err)
	}
	return updated, nil
}

// Delete removes a task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.DeleteTask(ctx, sc, id); err != nil {
		return uc.mapRepoErr(ctx, "Delete", err)
	}
	return nil
}

func (uc *implUseCase) mapRepoErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return task.ErrNotFound
	}
	uc.l.Errorf(ctx, "task.usecase.%s: %v", op, err)
	return err
}
