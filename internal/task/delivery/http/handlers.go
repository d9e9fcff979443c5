package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/model"
	"conversational-task-management/internal/task"
	"conversational-task-management/pkg/response"
)

func scopeFrom(c *gin.Context) (model.Scope, bool) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		return model.Scope{}, false
	}
	return model.Scope{UserID: userID}, true
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task with an optional priority and due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskItem
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskItem(created))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks with optional status and priority filters.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       status   query string false "COMPLETE, INCOMPLETE or ALL"
// @Param       priority query string false "HIGH, MEDIUM or LOW"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(tasks))
}

// Get godoc
// @Summary     Get a task
// @Description Returns a single task by id.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       id path string true "Task id"
// @Success     200 {object} taskItem
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	found, err := h.uc.Get(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "task.http.Get: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskItem(found))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a task as completed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       id path string true "Task id"
// @Success     200 {object} taskItem
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	completed, err := h.uc.Complete(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "task.http.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskItem(completed))
}

// Update godoc
// @Summary     Update a task
// @Description Updates title, priority and/or due date. Absent fields are untouched.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       id path string true "Task id"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} taskItem
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskItem(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Description Deletes a task permanently.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Param       id path string true "Task id"
// @Success     200 {object} map[string]string
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "task.http.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, map[string]string{"status": "deleted"})
}

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrTitleTooLong),
		errors.Is(err, task.ErrInvalidPriority):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
