package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"conversational-task-management/internal/dialogue"
	"conversational-task-management/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeEngine struct {
	handleFunc func(ctx context.Context, sc model.Scope, input dialogue.HandleInput) (dialogue.HandleOutput, error)
}

func (f *fakeEngine) Handle(ctx context.Context, sc model.Scope, input dialogue.HandleInput) (dialogue.HandleOutput, error) {
	return f.handleFunc(ctx, sc, input)
}

func newRouter(engine dialogue.Engine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, engine)
	r.POST("/api/v1/dialogue", h.HandleTurn)
	return r
}

func TestHandleTurn(t *testing.T) {
	t.Run("passes scope and message through", func(t *testing.T) {
		var gotScope model.Scope
		var gotMessage string
		engine := &fakeEngine{
			handleFunc: func(ctx context.Context, sc model.Scope, input dialogue.HandleInput) (dialogue.HandleOutput, error) {
				gotScope = sc
				gotMessage = input.Message
				return dialogue.HandleOutput{
					Directives: []dialogue.ResponseDirective{{Kind: dialogue.DirectiveResult}},
				}, nil
			},
		}
		r := newRouter(engine)

		body, _ := json.Marshal(map[string]any{"message": "add buy milk"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dialogue", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		if gotScope.UserID != "u1" {
			t.Errorf("scope user = %q, want u1", gotScope.UserID)
		}
		if gotMessage != "add buy milk" {
			t.Errorf("message = %q", gotMessage)
		}
	})

	t.Run("missing user header is unauthorized", func(t *testing.T) {
		r := newRouter(&fakeEngine{})

		body, _ := json.Marshal(map[string]any{"message": "add buy milk"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dialogue", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("missing message is a bad request", func(t *testing.T) {
		r := newRouter(&fakeEngine{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/dialogue", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("context round-trips", func(t *testing.T) {
		engine := &fakeEngine{
			handleFunc: func(ctx context.Context, sc model.Scope, input dialogue.HandleInput) (dialogue.HandleOutput, error) {
				out := dialogue.HandleOutput{Context: input.Context}
				out.Context.LastMentionedTaskID = "42"
				return out, nil
			},
		}
		r := newRouter(engine)

		body, _ := json.Marshal(turnRequest{
			Message: "mark it done",
			Context: dialogue.ConversationContext{LastMentionedTaskID: "7"},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dialogue", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp struct {
			Data turnResponse `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Data.Context.LastMentionedTaskID != "42" {
			t.Errorf("context id = %q, want 42", resp.Data.Context.LastMentionedTaskID)
		}
	})
}
