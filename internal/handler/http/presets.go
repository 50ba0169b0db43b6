package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
)

func (h *Handler) listPresets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	presets, err := h.services.PresetService.ListPresets(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPresets").Msg("error listing presets")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, presets, http.StatusOK)
}

func (h *Handler) getPreset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	preset, err := h.services.PresetService.GetPreset(r.Context(), name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPreset").Str("name", name).Msg("error getting preset")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, preset, http.StatusOK)
}

func (h *Handler) savePreset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	var cfg models.GenerationConfig
	if err := decodeJSON(w, r, &cfg); err != nil {
		log.Err(err).Str("func", "*Handler.savePreset").Msg(ErrInvalidJSON.Error())
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	preset, err := h.services.PresetService.SavePreset(r.Context(), name, cfg)
	if err != nil {
		log.Err(err).Str("func", "*Handler.savePreset").Str("name", name).Msg("error saving preset")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, preset, http.StatusOK)
}

func (h *Handler) deletePreset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	if err := h.services.PresetService.DeletePreset(r.Context(), name); err != nil {
		log.Err(err).Str("func", "*Handler.deletePreset").Str("name", name).Msg("error deleting preset")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
