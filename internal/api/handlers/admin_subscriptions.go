package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/subscription"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// AdminSubscriptionHandler serves the back-office subscription endpoints
type AdminSubscriptionHandler struct {
	subs      *services.SubscriptionService
	validator *validator.Validator
}

// NewAdminSubscriptionHandler creates an admin subscription handler
func NewAdminSubscriptionHandler(subs *services.SubscriptionService, v *validator.Validator) *AdminSubscriptionHandler {
	return &AdminSubscriptionHandler{subs: subs, validator: v}
}

// List returns all subscription records
func (h *AdminSubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subs.List(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, subs)
}

// Get returns one subscription
func (h *AdminSubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subs.GetByID(r.Context(), chi.URLParam(r, "subscriptionID"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, sub)
}

// Create records a subscription manually
func (h *AdminSubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSubscriptionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	sub, err := h.subs.Create(r.Context(), &subscription.Subscription{
		UserID: req.UserID,
		PlanID: req.PlanID,
		Status: req.Status,
	})
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, sub)
}

// UpdateStatus changes a subscription's lifecycle state
func (h *AdminSubscriptionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSubscriptionStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	sub, err := h.subs.UpdateStatus(r.Context(), chi.URLParam(r, "subscriptionID"), req.Status)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, sub)
}

// Delete removes a subscription record
func (h *AdminSubscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.subs.Delete(r.Context(), chi.URLParam(r, "subscriptionID")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Subscription deleted", nil)
}
