package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

const (
	// requestTimeout bounds every store round trip made by a handler.
	requestTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20

	MsgInvalidBody = "Invalid request body"
)

type errorResponse struct {
	Error         string   `json:"error"`
	InvalidFields []string `json:"invalidFields,omitempty"`
}

// writeJSON encodes v before writing the header so an unencodable value
// becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Error: "Failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched so
// that missing fields surface as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
