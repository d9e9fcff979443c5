package telegram

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"conversational-task-management/internal/dialogue"
	pkgLog "conversational-task-management/pkg/log"
	pkgTelegram "conversational-task-management/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	engine   dialogue.Engine
	bot      *pkgTelegram.Bot
	contexts *contextStore
}

// New creates a new Telegram delivery handler. Conversation contexts are
// held per chat in an expiring in-memory store; an idle chat simply starts
// a fresh conversation.
func New(l pkgLog.Logger, engine dialogue.Engine, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:        l,
		engine:   engine,
		bot:      bot,
		contexts: newContextStore(maxTrackedChats, contextTTL),
	}
}

const (
	maxTrackedChats = 1000
	contextTTL      = 30 * time.Minute
)

// contextStore keeps the engine's caller-owned conversation context per
// Telegram chat.
type contextStore struct {
	lru *expirable.LRU[int64, dialogue.ConversationContext]
}

func newContextStore(size int, ttl time.Duration) *contextStore {
	return &contextStore{
		lru: expirable.NewLRU[int64, dialogue.ConversationContext](size, nil, ttl),
	}
}

func (s *contextStore) Get(chatID int64) dialogue.ConversationContext {
	cctx, ok := s.lru.Get(chatID)
	if !ok {
		return dialogue.ConversationContext{}
	}
	return cctx
}

func (s *contextStore) Put(chatID int64, cctx dialogue.ConversationContext) {
	s.lru.Add(chatID, cctx)
}
