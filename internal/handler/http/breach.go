package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
)

// checkBreach always answers 200 once the request is valid: a failed upstream
// lookup is reported as zero occurrences by the service.
func (h *Handler) checkBreach(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SecretRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.checkBreach").Msg(ErrInvalidJSON.Error())
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.checkBreach").Msg(app.MsgInvalidDataProvided)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, h.services.BreachService.Check(ctx, req.Password), http.StatusOK)
}
