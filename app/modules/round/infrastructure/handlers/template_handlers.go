package roundhandlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	roundservice "github.com/sindicato-golf/rounds/app/modules/round/application"
	"github.com/sindicato-golf/rounds/app/shared/attr"
)

// HandleCreateTemplate saves a round setup for reuse.
func (h *RoundHandlers) HandleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input roundservice.TemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CreateTemplate(ctx, input)
	if err != nil {
		h.logger.ErrorContext(ctx, "Create template failed", attr.Error(err))
		http.Error(w, "failed to create template", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, result.Failure.Reason, http.StatusBadRequest)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, result.Success.Template)
}

// HandleListTemplates returns the templates belonging to an owner, favorites
// first.
func (h *RoundHandlers) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id is required", http.StatusBadRequest)
		return
	}

	templates, err := h.service.ListTemplates(ctx, ownerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "List templates failed", attr.Error(err))
		http.Error(w, "failed to fetch templates", http.StatusInternalServerError)
		return
	}

	h.respondJSON(w, r, http.StatusOK, templates)
}

// HandleGetTemplate returns one template by ID.
func (h *RoundHandlers) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templateID := chi.URLParam(r, "templateID")

	result, err := h.service.GetTemplate(ctx, templateID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Get template failed",
			attr.Error(err),
			attr.RoundID("template_id", templateID),
		)
		http.Error(w, "failed to fetch template", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success)
}

// HandleUpdateTemplate replaces a template's configuration.
func (h *RoundHandlers) HandleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templateID := chi.URLParam(r, "templateID")

	var input roundservice.TemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.UpdateTemplate(ctx, templateID, input)
	if err != nil {
		h.logger.ErrorContext(ctx, "Update template failed",
			attr.Error(err),
			attr.RoundID("template_id", templateID),
		)
		http.Error(w, "failed to update template", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		status := http.StatusBadRequest
		if result.Failure.NotFound {
			status = http.StatusNotFound
		}
		http.Error(w, result.Failure.Reason, status)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result.Success.Template)
}

// HandleDeleteTemplate removes a saved template.
func (h *RoundHandlers) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templateID := chi.URLParam(r, "templateID")

	result, err := h.service.DeleteTemplate(ctx, templateID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Delete template failed",
			attr.Error(err),
			attr.RoundID("template_id", templateID),
		)
		http.Error(w, "failed to delete template", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleToggleFavorite flips the favorite flag and reports the new state.
func (h *RoundHandlers) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	templateID := chi.URLParam(r, "templateID")

	result, err := h.service.ToggleTemplateFavorite(ctx, templateID)
	if err != nil {
		h.logger.ErrorContext(ctx, "Toggle favorite failed",
			attr.Error(err),
			attr.RoundID("template_id", templateID),
		)
		http.Error(w, "failed to toggle favorite", http.StatusInternalServerError)
		return
	}
	if result.IsFailure() {
		http.Error(w, "template not found", http.StatusNotFound)
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]any{
		"template_id": result.Success.TemplateID,
		"is_favorite": result.Success.IsFavorite,
	})
}
