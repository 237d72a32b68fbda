package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
)

// TrackHandler serves lyrics candidates for a catalog track ID.
//
// Responds with a JSON array of [models.LyricsRecord], which is empty when the provider has no match.
type TrackHandler struct {
	engine tasks.Engine
	logger *log.Logger
}

// NewTrackHandler creates a handler backed by the given lookup engine.
func NewTrackHandler(engine tasks.Engine, logger *log.Logger) *TrackHandler {
	return &TrackHandler{engine: engine, logger: logger}
}

func (h *TrackHandler) Routes() []string {
	return []string{"/track/{id}"}
}

func (h *TrackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := LoggerFrom(r.Context(), h.logger)

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, shared.ErrInvalidInput.Error()+": empty track ID")
		return
	}

	result, err := h.engine.Lookup(r.Context(), id, nil)
	if err != nil {
		status := StatusFor(err)
		switch {
		case errors.Is(err, shared.ErrMissingCredentials):
			logger.Error("relay is misconfigured", "track_id", id, "error", err)
		case status >= 500:
			logger.Warn("lookup failed", "track_id", id, "status", status, "error", err)
		default:
			logger.Debug("lookup rejected", "track_id", id, "status", status, "error", err)
		}
		writeError(w, status, err.Error())
		return
	}

	records := result.Records
	if records == nil {
		records = []models.LyricsRecord{}
	}

	logger.Info("lookup complete", "track_id", id, "query", result.Query.String(), "results", len(records))

	if err := writeJSON(w, http.StatusOK, records); err != nil {
		logger.Error("failed to write response", "track_id", id, "error", err)
	}
}

// NotFoundHandler answers unmatched paths with a JSON 404.
type NotFoundHandler struct{}

func (NotFoundHandler) Routes() []string {
	return []string{"/"}
}

func (NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "no route for "+r.URL.Path)
}
