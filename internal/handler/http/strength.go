package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
)

func (h *Handler) assessConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var cfg models.GenerationConfig
	if err := decodeJSON(w, r, &cfg); err != nil {
		log.Err(err).Str("func", "*Handler.assessConfig").Msg(ErrInvalidJSON.Error())
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Validator.Validate(ctx, cfg); err != nil {
		log.Err(err).Str("func", "*Handler.assessConfig").Msg(app.MsgInvalidDataProvided)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.services.StrengthService.Assess(ctx, cfg), http.StatusOK)
}

func (h *Handler) assessSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SecretRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.assessSecret").Msg(ErrInvalidJSON.Error())
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.assessSecret").Msg(app.MsgInvalidDataProvided)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.services.StrengthService.AssessSecret(ctx, req.Password), http.StatusOK)
}
