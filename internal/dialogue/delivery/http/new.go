package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/dialogue"
	pkgLog "conversational-task-management/pkg/log"
)

// Handler is the interface for the dialogue HTTP delivery handler.
type Handler interface {
	HandleTurn(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	engine dialogue.Engine
}

// New creates a new dialogue HTTP handler.
func New(l pkgLog.Logger, engine dialogue.Engine) Handler {
	return &handler{
		l:      l,
		engine: engine,
	}
}
