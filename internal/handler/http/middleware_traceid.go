package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pass-gen/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// maxTraceIDLength caps client supplied trace ids; longer ones are replaced.
const maxTraceIDLength = 128

// withTraceID reuses the caller's X-Trace-ID or mints a UUIDv7. The id is
// echoed in the response, stored in the request context and attached to a
// request-scoped child logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = newTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

var traceIDs = utils.NewUUIDGenerator()

func newTraceID() string {
	return traceIDs.Generate()
}
