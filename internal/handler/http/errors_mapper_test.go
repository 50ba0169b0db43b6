package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid data", err: fmt.Errorf("%w: length", service.ErrInvalidDataProvided), want: http.StatusBadRequest},
		{name: "preset not found", err: service.ErrPresetNotFound, want: http.StatusNotFound},
		{name: "unrepresentable", err: service.ErrUnrepresentable, want: http.StatusUnprocessableEntity},
		{name: "wrong passphrase", err: service.ErrWrongPassphrase, want: http.StatusUnprocessableEntity},
		{name: "passphrase required", err: service.ErrPassphraseRequired, want: http.StatusBadRequest},
		{name: "query failed", err: fmt.Errorf("list: %w", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Run("client error keeps message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, service.ErrPresetNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), service.ErrPresetNotFound.Error())
	})

	t.Run("server error is masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, fmt.Errorf("%w: pq: relation presets does not exist", store.ErrExecutingQuery))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, app.MsgInternalServerError+"\n", rec.Body.String())
	})
}
