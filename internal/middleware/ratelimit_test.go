package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRouter(cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(mockLogger{}, cfg)

	r := gin.New()
	r.Use(mw.RequestID())
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doGet(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("burst then throttle", func(t *testing.T) {
		// 10 rpm gives a burst of 1: first request passes, second is rejected.
		r := newTestRouter(Config{RateLimitPerMin: 10})

		if w := doGet(r); w.Code != http.StatusOK {
			t.Fatalf("first request status = %d, want 200", w.Code)
		}
		if w := doGet(r); w.Code != http.StatusTooManyRequests {
			t.Fatalf("second request status = %d, want 429", w.Code)
		}
	})

	t.Run("disabled when limit is zero", func(t *testing.T) {
		r := newTestRouter(Config{RateLimitPerMin: 0})

		for i := 0; i < 20; i++ {
			if w := doGet(r); w.Code != http.StatusOK {
				t.Fatalf("request %d status = %d, want 200", i, w.Code)
			}
		}
	})

	t.Run("per-source buckets are independent", func(t *testing.T) {
		r := newTestRouter(Config{RateLimitPerMin: 10})

		reqA := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqA.RemoteAddr = "10.0.0.1:1234"
		wA := httptest.NewRecorder()
		r.ServeHTTP(wA, reqA)

		reqB := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqB.RemoteAddr = "10.0.0.2:1234"
		wB := httptest.NewRecorder()
		r.ServeHTTP(wB, reqB)

		if wA.Code != http.StatusOK || wB.Code != http.StatusOK {
			t.Errorf("statuses = %d/%d, want 200/200", wA.Code, wB.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generated when absent", func(t *testing.T) {
		r := newTestRouter(Config{})
		w := doGet(r)

		if w.Header().Get(HeaderRequestID) == "" {
			t.Error("no request ID header on response")
		}
	})

	t.Run("caller-supplied ID is kept", func(t *testing.T) {
		r := newTestRouter(Config{})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "req-123" {
			t.Errorf("request ID = %q, want req-123", got)
		}
	})
}
