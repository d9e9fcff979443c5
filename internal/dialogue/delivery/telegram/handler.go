package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/model"
	pkgResponse "conversational-task-management/pkg/response"
	pkgTelegram "conversational-task-management/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine; Telegram expects an ack within a few seconds and
// a turn may involve slow tool calls.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "dialogue.telegram.HandleWebhook: parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot before spawning the goroutine; the gin context is recycled
	// once the handler returns.
	msg := update.Message

	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "dialogue.telegram.HandleWebhook: process message: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, "Something went wrong handling that. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs one dialogue turn for a Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID,
			"👋 Welcome! Tell me about your tasks in plain language.\n\n"+
				"_Examples:_\n"+
				"• `add buy milk tomorrow`\n"+
				"• `show my tasks`\n"+
				"• `mark groceries done`",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID,
			"*What I understand:*\n\n"+
				"• adding tasks, with optional priority and due date\n"+
				"• listing tasks, filtered by status or priority\n"+
				"• completing, updating and deleting tasks\n\n"+
				"You can chain requests: `add buy milk and show my tasks`",
			"Markdown",
		)
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	out, err := h.engine.Handle(ctx, sc, dialogue.HandleInput{
		Message: msg.Text,
		Context: h.contexts.Get(msg.Chat.ID),
	})
	if err != nil {
		return err
	}

	h.contexts.Put(msg.Chat.ID, out.Context)

	reply := renderDirectives(out.Directives)
	if reply == "" {
		return nil
	}
	return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, reply, "Markdown")
}
