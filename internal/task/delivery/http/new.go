package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/task"
	pkgLog "conversational-task-management/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Complete(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.Service
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.Service) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Get)
		tasks.POST("/:id/complete", h.Complete)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
