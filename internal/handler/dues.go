// internal/handler/dues.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rukunhub/rukunhub/internal/middleware"
	"github.com/rukunhub/rukunhub/internal/service"
)

type DuesHandler struct {
	duesService    *service.DuesService
	accrualService *service.AccrualService
}

func NewDuesHandler(duesService *service.DuesService, accrualService *service.AccrualService) *DuesHandler {
	return &DuesHandler{
		duesService:    duesService,
		accrualService: accrualService,
	}
}

// GetEffective returns the dues rule governing a group, tagged own or
// inherited.
func (h *DuesHandler) GetEffective(w http.ResponseWriter, r *http.Request) {
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

	// Reads stay inside the caller's tenant too.
	if err := h.duesService.EnsureReadScope(r.Context(), actor, groupID); err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	rule, err := h.duesService.Effective(r.Context(), groupID)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, rule)
}

// SetConfig upserts the dues configuration for a group.
func (h *DuesHandler) SetConfig(w http.ResponseWriter, r *http.Request) {
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

	var input service.SetDuesConfigInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	rule, err := h.duesService.SetConfig(r.Context(), actor, groupID, input)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, rule)
}

// YearStatus returns the 12-month dues view for a user.
func (h *DuesHandler) YearStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	userID, err := parseUintParam(r, "userID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2200 {
		respondWithError(w, http.StatusBadRequest, "Invalid year")
		return
	}

	statuses, err := h.accrualService.YearStatus(r.Context(), actor, userID, year)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, statuses)
}
