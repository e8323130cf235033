package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rukunhub/rukunhub/internal/domain"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithServiceError maps the domain error taxonomy onto HTTP status
// codes. Messages carry the violated constraint; unexpected errors are
// logged with the request id and reported as a generic 500.
func respondWithServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrDuesRuleNotFound),
		errors.Is(err, domain.ErrRoleLabelNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrFundRequestNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrWrongTenant),
		errors.Is(err, domain.ErrOrphanedGroup):
		respondWithError(w, http.StatusForbidden, err.Error())

	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidMonths),
		errors.Is(err, domain.ErrInvalidRoleLabel),
		errors.Is(err, domain.ErrInvalidRoleType),
		errors.Is(err, domain.ErrDuesNotConfigured),
		errors.Is(err, domain.ErrNotResidentGroup):
		respondWithError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDuplicateContribution),
		errors.Is(err, domain.ErrGroupNotEmpty),
		errors.Is(err, domain.ErrFundRequestDecided):
		respondWithError(w, http.StatusConflict, err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, err.Error())

	default:
		slog.ErrorContext(ctx, "internal error", "error", err, "requestID", chimw.GetReqID(ctx))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
