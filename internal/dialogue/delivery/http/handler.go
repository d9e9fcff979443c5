package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/model"
	pkgResponse "conversational-task-management/pkg/response"
)

// turnRequest is one dialogue turn. The client owns the conversation
// context and must echo back the one returned by the previous turn.
type turnRequest struct {
	Message string                       `json:"message" binding:"required"`
	Context dialogue.ConversationContext `json:"context"`
}

type turnResponse struct {
	Invocations []dialogue.ToolInvocation    `json:"invocations"`
	Context     dialogue.ConversationContext `json:"context"`
	Directives  []dialogue.ResponseDirective `json:"directives"`
}

// HandleTurn processes one dialogue turn
// @Summary Dialogue Turn
// @Description Process one conversational message against the caller's task list
// @Tags Dialogue
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Param request body turnRequest true "Message and conversation context"
// @Success 200 {object} turnResponse "Turn result"
// @Router /api/v1/dialogue [post]
func (h *handler) HandleTurn(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		pkgResponse.Unauthorized(c)
		return
	}

	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "dialogue.http.HandleTurn: bind: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: userID}

	out, err := h.engine.Handle(ctx, sc, dialogue.HandleInput{
		Message: req.Message,
		Context: req.Context,
	})
	if err != nil {
		if errors.Is(err, dialogue.ErrEmptyUtterance) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "dialogue.http.HandleTurn: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, turnResponse{
		Invocations: out.Invocations,
		Context:     out.Context,
		Directives:  out.Directives,
	})
}
