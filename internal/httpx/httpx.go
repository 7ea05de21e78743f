// Package httpx holds the JSON request/response helpers shared by handlers and middleware.
package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/utilityportal/internal/apperr"
)

// maxBodyBytes caps request bodies accepted by DecodeJSON.
const maxBodyBytes = 1 << 20

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// OKBody acknowledges a successful write.
type OKBody struct {
	OK bool `json:"ok"`
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindInvalidInput:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

// WriteError writes err as {error: message} with the status of its kind.
// Causes of server errors are never written.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusFor(apperr.KindOf(err)), ErrorBody{Error: apperr.MessageOf(err)})
}

// WriteCreated acknowledges an insert with 201 {ok: true}.
func WriteCreated(w http.ResponseWriter) {
	WriteJSON(w, http.StatusCreated, OKBody{OK: true})
}

// ErrInvalidBody is returned by DecodeJSON for bodies that are not a JSON object
// matching the destination.
var ErrInvalidBody = errors.New("invalid request body")

// DecodeJSON decodes a single JSON value from the request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return errors.Join(ErrInvalidBody, err)
	}
	return nil
}
