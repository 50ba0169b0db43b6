// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildCheckMethodRouter() *chi.Mux {
	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }
	}

	router := chi.NewRouter()
	router.Get("/flat", ok(http.StatusOK))
	router.Route("/api", func(r chi.Router) {
		r.Post("/items", ok(http.StatusCreated))
		r.Get("/items/{id}", ok(http.StatusOK))
		r.Delete("/items/{id}", ok(http.StatusNoContent))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildCheckMethodRouter()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "flat route", method: http.MethodGet, path: "/flat", want: http.StatusOK},
		{name: "flat route wrong method", method: http.MethodPost, path: "/flat", want: http.StatusNotFound},
		{name: "nested route", method: http.MethodPost, path: "/api/items", want: http.StatusCreated},
		{name: "nested route wrong method", method: http.MethodGet, path: "/api/items", want: http.StatusNotFound},
		{name: "param route", method: http.MethodGet, path: "/api/items/7", want: http.StatusOK},
		{name: "param route second method", method: http.MethodDelete, path: "/api/items/7", want: http.StatusNoContent},
		{name: "param route wrong method", method: http.MethodPut, path: "/api/items/7", want: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
