// internal/handler/payment.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rukunhub/rukunhub/internal/domain"
	"github.com/rukunhub/rukunhub/internal/gateway"
	"github.com/rukunhub/rukunhub/internal/middleware"
	"github.com/rukunhub/rukunhub/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type paymentRequest struct {
	UserID uint `json:"user_id"`
	Months int  `json:"months"`
}

// Quote computes what paying N months would cover without creating a
// transaction. If a pending transaction exists its parameters are returned
// and the requested month count is ignored.
func (h *PaymentHandler) Quote(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if input.UserID == 0 {
		input.UserID = actor.ID
	}

	quote, err := h.paymentService.BuildRequest(r.Context(), actor, input.UserID, input.Months)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, quote)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if input.UserID == 0 {
		input.UserID = actor.ID
	}

	tx, err := h.paymentService.Create(r.Context(), actor, input.UserID, input.Months)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, tx)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	orderRef := chi.URLParam(r, "orderRef")

	tx, err := h.paymentService.Get(r.Context(), actor, orderRef)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, tx)
}

// Notification is the unauthenticated webhook the gateway calls with status
// transitions. Unknown order refs are acknowledged with 200 so the gateway
// stops retrying; everything else surfaces as a retryable 5xx.
func (h *PaymentHandler) Notification(w http.ResponseWriter, r *http.Request) {
	var n gateway.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid notification payload")
		return
	}
	defer r.Body.Close()

	if err := h.paymentService.HandleNotification(r.Context(), n); err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) || errors.Is(err, domain.ErrNotFound) {
			respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
			return
		}
		slog.ErrorContext(r.Context(), "payment notification failed",
			"order_ref", n.OrderRef, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Notification processing failed")
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
