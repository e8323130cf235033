// internal/handler/role_label.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rukunhub/rukunhub/internal/middleware"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/rukunhub/rukunhub/internal/service"
)

type RoleLabelHandler struct {
	labelService *service.RoleLabelService
}

func NewRoleLabelHandler(labelService *service.RoleLabelService) *RoleLabelHandler {
	return &RoleLabelHandler{labelService: labelService}
}

// GetMap returns the override map for the caller's RW. Roles without an
// override are absent; clients fall back to the system defaults.
func (h *RoleLabelHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	labels, err := h.labelService.Labels(r.Context(), actor.CommunityGroupID)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, labels)
}

type upsertLabelRequest struct {
	Label string `json:"label"`
}

func (h *RoleLabelHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	roleType := model.RoleType(chi.URLParam(r, "roleType"))

	var input upsertLabelRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	setting, err := h.labelService.Upsert(r.Context(), actor, roleType, input.Label)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, setting)
}

func (h *RoleLabelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	roleType := model.RoleType(chi.URLParam(r, "roleType"))

	if err := h.labelService.Delete(r.Context(), actor, roleType); err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
