package playerhandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	playerservice "github.com/sindicato-golf/rounds/app/modules/player/application"
	playertypes "github.com/sindicato-golf/rounds/app/modules/player/domain/types"
	"github.com/sindicato-golf/rounds/app/shared/attr"
)

// PlayerHandlers serves the player profile HTTP API.
type PlayerHandlers struct {
	service playerservice.Service
	logger  *slog.Logger
}

// NewPlayerHandlers creates a new PlayerHandlers instance.
func NewPlayerHandlers(service playerservice.Service, logger *slog.Logger) *PlayerHandlers {
	return &PlayerHandlers{
		service: service,
		logger:  logger,
	}
}

func (h *PlayerHandlers) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response",
			attr.Error(err),
		)
	}
}

// HandleCreateProfile registers a new player profile.
func (h *PlayerHandlers) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var profile playertypes.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CreateProfile(ctx, &profile)
	if err != nil {
		h.logger.ErrorContext(ctx, "Create profile failed", attr.Error(err))
		http.Error(w, "failed to create profile", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, result.Failure.Reason, http.StatusBadRequest)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, result.Success.Profile)
}

// HandleGetProfile returns one profile by ID.
func (h *PlayerHandlers) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID := chi.URLParam(r, "profileID")

	result, err := h.service.GetProfile(ctx, profileID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Get profile failed",
			attr.Error(err),
			attr.String("profile_id", profileID),
		)
		http.Error(w, "failed to fetch profile", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success)
}

// HandleListProfiles returns every registered profile.
func (h *PlayerHandlers) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profiles, err := h.service.ListProfiles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "List profiles failed", attr.Error(err))
		http.Error(w, "failed to fetch profiles", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, r, http.StatusOK, profiles)
}
