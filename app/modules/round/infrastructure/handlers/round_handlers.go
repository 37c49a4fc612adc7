package roundhandlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	roundservice "github.com/sindicato-golf/rounds/app/modules/round/application"
	"github.com/sindicato-golf/rounds/app/shared/attr"
)

// HandleCreateRound sets up a new round.
func (h *RoundHandlers) HandleCreateRound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input roundservice.CreateRoundInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CreateRound(ctx, input)
	if err != nil {
		h.logger.ErrorContext(ctx, "Create round failed", attr.Error(err))
		http.Error(w, "failed to create round", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, result.Failure.Reason, http.StatusBadRequest)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, result.Success.Round)
}

// HandleGetRound returns one round by ID.
func (h *RoundHandlers) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roundID := chi.URLParam(r, "roundID")

	result, err := h.service.GetRound(ctx, roundID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Get round failed",
			attr.Error(err),
			attr.RoundID("round_id", roundID),
		)
		http.Error(w, "failed to fetch round", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "round not found", http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success)
}

// HandleListRounds returns the rounds belonging to an owner.
func (h *RoundHandlers) HandleListRounds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id is required", http.StatusBadRequest)
		return
	}

	rounds, err := h.service.ListRounds(ctx, ownerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "List rounds failed", attr.Error(err))
		http.Error(w, "failed to fetch rounds", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, r, http.StatusOK, rounds)
}

// HandleDeleteRound removes a round and everything recorded on it.
func (h *RoundHandlers) HandleDeleteRound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roundID := chi.URLParam(r, "roundID")

	result, err := h.service.DeleteRound(ctx, roundID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Delete round failed",
			attr.Error(err),
			attr.RoundID("round_id", roundID),
		)
		http.Error(w, "failed to delete round", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "round not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleFinishRound closes the round for further scoring.
func (h *RoundHandlers) HandleFinishRound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roundID := chi.URLParam(r, "roundID")

	result, err := h.service.FinishRound(ctx, roundID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Finish round failed",
			attr.Error(err),
			attr.RoundID("round_id", roundID),
		)
		http.Error(w, "failed to finish round", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		status := http.StatusConflict
		if result.Failure.NotFound {
			status = http.StatusNotFound
		}
		http.Error(w, result.Failure.Reason, status)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success.Round)
}
