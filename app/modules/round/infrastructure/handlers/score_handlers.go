package roundhandlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	roundservice "github.com/sindicato-golf/rounds/app/modules/round/application"
	"github.com/sindicato-golf/rounds/app/shared/attr"
)

// HandleRecordScore saves one player's score on one hole. The round ID in the
// URL wins over any round ID in the body.
func (h *RoundHandlers) HandleRecordScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input roundservice.RecordScoreInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	input.RoundID = chi.URLParam(r, "roundID")

	result, err := h.service.RecordScore(ctx, input)
	if err != nil {
		h.logger.ErrorContext(ctx, "Record score failed",
			attr.Error(err),
			attr.RoundID("round_id", input.RoundID),
		)
		http.Error(w, "failed to record score", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		status := http.StatusBadRequest
		switch {
		case result.Failure.NotFound:
			status = http.StatusNotFound
		case result.Failure.Conflict:
			status = http.StatusConflict
		}
		http.Error(w, result.Failure.Reason, status)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success.Round)
}
