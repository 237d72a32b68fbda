package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/desertthunder/lyrx/internal/shared"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// StatusFor maps a lookup error to the HTTP status returned to the client.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, shared.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrMissingCredentials):
		return http.StatusInternalServerError
	case errors.Is(err, shared.ErrTrackNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, shared.ErrServiceUnavailable),
		errors.Is(err, shared.ErrAPIRequest),
		errors.Is(err, shared.ErrDecode),
		errors.Is(err, shared.ErrNoArtists):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, ErrorResponse{Error: msg, Status: status})
}
