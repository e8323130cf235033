// internal/handler/fund_request.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rukunhub/rukunhub/internal/middleware"
	"github.com/rukunhub/rukunhub/internal/service"
)

type FundRequestHandler struct {
	fundService *service.FundRequestService
}

func NewFundRequestHandler(fundService *service.FundRequestService) *FundRequestHandler {
	return &FundRequestHandler{fundService: fundService}
}

func (h *FundRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input service.SubmitFundRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	request, err := h.fundService.Submit(r.Context(), actor, input)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, request)
}

func (h *FundRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	requests, err := h.fundService.List(r.Context(), actor)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, requests)
}

type decideFundRequestRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

func (h *FundRequestHandler) Decide(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	requestID, err := parseUintParam(r, "requestID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var input decideFundRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	request, err := h.fundService.Decide(r.Context(), actor, requestID, input.Approve, input.Note)
	if err != nil {
		respondWithServiceError(r.Context(), w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, request)
}
