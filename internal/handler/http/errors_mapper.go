package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	service.ErrPresetNotFound:        http.StatusNotFound,
	service.ErrUnknownExportFormat:   http.StatusBadRequest,
	service.ErrUnrepresentable:       http.StatusUnprocessableEntity,
	service.ErrMalformedImport:       http.StatusBadRequest,
	service.ErrPassphraseRequired:    http.StatusBadRequest,
	service.ErrWrongPassphrase:       http.StatusUnprocessableEntity,

	store.ErrPresetNotFound: http.StatusNotFound,
	store.ErrPresetNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes err with its mapped status. Errors mapped to 500 are
// reported with a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = app.MsgInternalServerError
	}
	http.Error(w, msg, status)
}
