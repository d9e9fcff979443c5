package usecase

import (
	"conversational-task-management/internal/task"
	"conversational-task-management/internal/task/repository"
	"conversational-task-management/pkg/gcalendar"
	pkgLog "conversational-task-management/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   *gcalendar.Client // optional, nil when not configured
	calendarID string
}

var _ task.Service = (*implUseCase)(nil)

// New creates a new task Service instance. calendar may be nil; due-date
// event sync is then skipped.
func New(l pkgLog.Logger, repo repository.Repository, calendar *gcalendar.Client, calendarID string) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
	}
}
