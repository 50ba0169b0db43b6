// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpBreachAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, disablePadding bool) *httpBreachAdapter {
	t.Helper()
	cfg := config.Breach{
		BaseURL:        serverURL,
		Timeout:        2 * time.Second,
		UserAgent:      "go-pass-gen-test",
		DisablePadding: disablePadding,
	}

	a, err := NewHTTPBreachAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBreachAdapter)
}

// ── NewHTTPBreachAdapter ──────────────────────────────────────────────────────

func TestNewHTTPBreachAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPBreachAdapter(config.Breach{BaseURL: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://api.pwnedpasswords.com", want: "https://api.pwnedpasswords.com"},
		{name: "trailing slash", raw: "http://127.0.0.1:8080/", want: "http://127.0.0.1:8080"},
		{name: "no scheme", raw: "api.pwnedpasswords.com", want: "https://api.pwnedpasswords.com"},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Range ─────────────────────────────────────────────────────────────────────

func TestRange_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/range/5BAA6", r.URL.Path)
		assert.Equal(t, "true", r.Header.Get("Add-Padding"))
		assert.Equal(t, "go-pass-gen-test", r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte("1E4C9B93F3F0682250B6CF8331B7EE68FD8:9545824\r\n" +
			"011053FD0102E94D6AE2F8B83D76FAF94F6:1\r\n" +
			"00D4F6E8FA6EECAD2A3AA415EEC418D38EC:0\r\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, false)
	got, err := a.Range(context.Background(), "5baa6")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"1E4C9B93F3F0682250B6CF8331B7EE68FD8": 9545824,
		"011053FD0102E94D6AE2F8B83D76FAF94F6": 1,
		"00D4F6E8FA6EECAD2A3AA415EEC418D38EC": 0,
	}, got)
}

func TestRange_PaddingDisabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Add-Padding"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, true)
	got, err := a.Range(context.Background(), "ABCDE")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRange_InvalidPrefix_NoRequest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, false)
	for _, prefix := range []string{"", "ABCD", "ABCDEF", "GHIJK", "12 34"} {
		_, err := a.Range(context.Background(), prefix)
		assert.ErrorIs(t, err, ErrInvalidPrefix, prefix)
	}
	assert.Zero(t, calls)
}

func TestRange_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, false)
			_, err := a.Range(context.Background(), "5BAA6")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRange_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, false)
	_, err := a.Range(context.Background(), "5BAA6")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestRange_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL, false)
	_, err := a.Range(ctx, "5BAA6")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRange_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, false)
	_, err := a.Range(context.Background(), "5BAA6")

	assert.Error(t, err)
}
