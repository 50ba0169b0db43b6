package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.generate)

		r.Post("/strength", h.assessConfig)
		r.Post("/strength/secret", h.assessSecret)

		r.With(h.withRateLimit(h.breachLimiter)).Post("/breach", h.checkBreach)

		r.Post("/export", h.exportSecrets)
		r.Post("/import", h.importSecrets)

		r.Get("/presets", h.listPresets)
		r.Get("/presets/{name}", h.getPreset)
		r.Put("/presets/{name}", h.savePreset)
		r.Delete("/presets/{name}", h.deletePreset)

		r.Get("/version/", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
