// internal/handler/group.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rukunhub/rukunhub/internal/middleware"
	"github.com/rukunhub/rukunhub/internal/service"
)

type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input service.CreateGroupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	group, err := h.groupService.CreateSubGroup(r.Context(), actor, input)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, group)
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	groups, err := h.groupService.Children(r.Context(), actor)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	groupID, err := parseUintParam(r, "groupID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	group, err := h.groupService.Get(r.Context(), actor, groupID)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	groupID, err := parseUintParam(r, "groupID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	if err := h.groupService.Delete(r.Context(), actor, groupID); err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func parseUintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
