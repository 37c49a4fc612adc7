package playerhandlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sindicato-golf/rounds/app/shared/attr"
)

// historyWindow is how far back history and chart endpoints look when the
// caller does not pass ?since=.
const historyWindow = 365 * 24 * time.Hour

type setHandicapRequest struct {
	HandicapIndex float64 `json:"handicap_index"`
}

// HandleSetHandicap manually overrides a profile's handicap index.
func (h *PlayerHandlers) HandleSetHandicap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := chi.URLParam(r, "profileID")

	var req setHandicapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SetHandicap(ctx, profileID, req.HandicapIndex)
	if err != nil {
		h.logger.ErrorContext(ctx, "Set handicap failed",
			attr.Error(err),
			attr.String("profile_id", profileID),
		)
		http.Error(w, "failed to set handicap", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success.Entry)
}

// HandleGetHandicapHistory returns the profile's handicap history, newest
// last. ?since= accepts an ISO date.
func (h *PlayerHandlers) HandleGetHandicapHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := chi.URLParam(r, "profileID")

	since, err := sinceParam(r)
	if err != nil {
		http.Error(w, "invalid since date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	result, err := h.service.GetHandicapHistory(ctx, profileID, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "Get handicap history failed",
			attr.Error(err),
			attr.String("profile_id", profileID),
		)
		http.Error(w, "failed to fetch handicap history", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success)
}

// HandleHandicapChart renders the profile's handicap history as a PNG.
func (h *PlayerHandlers) HandleHandicapChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := chi.URLParam(r, "profileID")

	since, err := sinceParam(r)
	if err != nil {
		http.Error(w, "invalid since date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	png, err := h.service.HandicapChart(ctx, profileID, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "Handicap chart failed",
			attr.Error(err),
			attr.String("profile_id", profileID),
		)
		http.Error(w, "failed to render handicap chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		h.logger.ErrorContext(ctx, "Failed to write handicap chart",
			attr.Error(err),
			attr.String("profile_id", profileID),
		)
	}
}

func sinceParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return time.Now().Add(-historyWindow), nil
	}
	return time.Parse("2006-01-02", raw)
}
