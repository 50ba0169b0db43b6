package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
)

const passphraseHeader = "X-Passphrase"

func (h *Handler) exportSecrets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ExportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.exportSecrets").Msg(ErrInvalidJSON.Error())
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	file, err := h.services.ExportService.Export(r.Context(), req.Format, req.Passwords, req.Passphrase)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportSecrets").Msg("error exporting secrets")
		writeError(w, err)
		return
	}

	utils.WriteAttachment(w, file.Name, file.MimeType, file.Data)
}

// importSecrets parses an uploaded export. The format comes from the query
// string and an optional passphrase from the X-Passphrase header.
func (h *Handler) importSecrets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	format := r.URL.Query().Get("format")
	if format == "" {
		http.Error(w, ErrMissingFormat.Error(), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.importSecrets").Msg("error reading request body")
		http.Error(w, app.MsgCannotReadBody, http.StatusBadRequest)
		return
	}

	secrets, err := h.services.ExportService.Import(r.Context(), models.ExportFormat(format), data, r.Header.Get(passphraseHeader))
	if err != nil {
		log.Err(err).Str("func", "*Handler.importSecrets").Msg("error importing secrets")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, secrets, http.StatusOK)
}
