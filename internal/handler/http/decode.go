package http

import (
	"encoding/json"
	"net/http"
)

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(body).Decode(dst)
}
