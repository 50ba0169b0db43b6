package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
)

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var cfg models.GenerationConfig
	if err := decodeJSON(w, r, &cfg); err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg(ErrInvalidJSON.Error())
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.services.GeneratorService.Generate(r.Context(), cfg)
	if err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg("error generating secrets")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
