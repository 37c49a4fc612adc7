package roundhandlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	roundservice "github.com/sindicato-golf/rounds/app/modules/round/application"
	"github.com/sindicato-golf/rounds/app/shared/attr"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleGetScorecard returns the hole-by-hole scorecard view.
func (h *RoundHandlers) HandleGetScorecard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roundID := chi.URLParam(r, "roundID")

	result, err := h.service.GetScorecard(ctx, roundID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Get scorecard failed",
			attr.Error(err),
			attr.RoundID("round_id", roundID),
		)
		http.Error(w, "failed to fetch scorecard", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "round not found", http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success)
}

// HandleGetStandings returns the mode-dependent standings view.
func (h *RoundHandlers) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roundID := chi.URLParam(r, "roundID")

	result, err := h.service.GetStandings(ctx, roundID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Get standings failed",
			attr.Error(err),
			attr.RoundID("round_id", roundID),
		)
		http.Error(w, "failed to fetch standings", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "round not found", http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success)
}

// HandleGetMatchStatus returns the match play state for a match round.
func (h *RoundHandlers) HandleGetMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roundID := chi.URLParam(r, "roundID")

	result, err := h.service.GetStandings(ctx, roundID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Get match status failed",
			attr.Error(err),
			attr.RoundID("round_id", roundID),
		)
		http.Error(w, "failed to fetch match status", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "round not found", http.StatusNotFound)
		return
	}
	if result.Success.Match == nil {
		http.Error(w, "round is not a match play round", http.StatusBadRequest)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success.Match)
}

// HandleExportScorecard streams the scorecard as an xlsx download.
func (h *RoundHandlers) HandleExportScorecard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roundID := chi.URLParam(r, "roundID")

	data, filename, err := h.service.ExportScorecardXLSX(ctx, roundID)
	if err != nil {
		if errors.Is(err, roundservice.ErrUnknownRound) {
			http.Error(w, "round not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "Scorecard export failed",
			attr.Error(err),
			attr.RoundID("round_id", roundID),
		)
		http.Error(w, "failed to export scorecard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "Failed to write scorecard export",
			attr.Error(err),
			attr.RoundID("round_id", roundID),
		)
	}
}
