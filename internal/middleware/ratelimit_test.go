package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter(t *testing.T) {
	t.Run("allows within budget", func(t *testing.T) {
		rl := NewRateLimiter(600)
		for i := 0; i < 10; i++ {
			if !rl.Allow("u1") {
				t.Fatalf("request %d denied within burst", i)
			}
		}
	})

	t.Run("denies past the burst", func(t *testing.T) {
		rl := NewRateLimiter(60)
		for i := 0; i < 6; i++ {
			rl.Allow("u1")
		}
		if rl.Allow("u1") {
			t.Error("request past burst should be denied")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		rl := NewRateLimiter(60)
		for i := 0; i < 6; i++ {
			rl.Allow("u1")
		}
		if !rl.Allow("u2") {
			t.Error("second caller should have its own budget")
		}
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(60)
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	do := func(userID string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if userID != "" {
			req.Header.Set("X-User-ID", userID)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		do("u1")
	}
	if code := do("u1"); code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", code)
	}
	if code := do("u2"); code != http.StatusOK {
		t.Errorf("fresh caller status = %d, want 200", code)
	}
}
