package roundhandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	roundservice "github.com/sindicato-golf/rounds/app/modules/round/application"
	"github.com/sindicato-golf/rounds/app/shared/attr"
)

// RoundHandlers serves the round HTTP API.
type RoundHandlers struct {
	service roundservice.Service
	logger  *slog.Logger
}

// NewRoundHandlers creates a new RoundHandlers instance.
func NewRoundHandlers(service roundservice.Service, logger *slog.Logger) *RoundHandlers {
	return &RoundHandlers{
		service: service,
		logger:  logger,
	}
}

func (h *RoundHandlers) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response",
			attr.Error(err),
		)
	}
}
