package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	dialogueHTTP "conversational-task-management/internal/dialogue/delivery/http"
	tgDelivery "conversational-task-management/internal/dialogue/delivery/telegram"
	"conversational-task-management/internal/middleware"
	taskHTTP "conversational-task-management/internal/task/delivery/http"
	"conversational-task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	dialogueHandler dialogueHTTP.Handler
	taskHandler     taskHTTP.Handler
	telegramHandler tgDelivery.Handler
	rateLimiter     *middleware.RateLimiter
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DialogueHandler dialogueHTTP.Handler
	TaskHandler     taskHTTP.Handler
	TelegramHandler tgDelivery.Handler
	RateLimiter     *middleware.RateLimiter
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		dialogueHandler: cfg.DialogueHandler,
		taskHandler:     cfg.TaskHandler,
		telegramHandler: cfg.TelegramHandler,
		rateLimiter:     cfg.RateLimiter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dialogueHandler == nil {
		return errors.New("dialogue handler is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
