package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
)

func TestWithRateLimit_PerIP(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	limited := h.withRateLimit(newVisitorLimiter(1, 2))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/breach", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		limited.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))

	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"), "other clients keep their own bucket")
	assert.Equal(t, http.StatusOK, call("no-port"), "remote address without a port is used as is")
}

func TestWithRateLimit_DisabledPassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	for _, limiter := range []*visitorLimiter{nil, newVisitorLimiter(0, 10), newVisitorLimiter(5, 0)} {
		handler := h.withRateLimit(limiter)(next)
		for i := 0; i < 50; i++ {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
			assert.Equal(t, http.StatusOK, rr.Code)
		}
	}
}

func TestVisitorLimiter_SweepsIdleVisitors(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	l := newVisitorLimiter(1, 1)
	l.now = func() time.Time { return now }

	l.get("a")
	l.get("b")
	assert.Len(t, l.visitors, 2)

	now = now.Add(visitorTTL + time.Second)
	l.get("b")

	assert.Len(t, l.visitors, 1)
	assert.Contains(t, l.visitors, "b")
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(5))
	assert.Equal(t, 1, retryAfterSeconds(1))
	assert.Equal(t, 2, retryAfterSeconds(0.5))
	assert.Equal(t, 4, retryAfterSeconds(0.25))
}
