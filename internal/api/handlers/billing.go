package handlers

import (
	"net/http"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/api/middleware"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// BillingHandler serves the plan purchase endpoints
type BillingHandler struct {
	payments  *services.PaymentService
	subs      *services.SubscriptionService
	validator *validator.Validator
}

// NewBillingHandler creates a billing handler
func NewBillingHandler(payments *services.PaymentService, subs *services.SubscriptionService, v *validator.Validator) *BillingHandler {
	return &BillingHandler{payments: payments, subs: subs, validator: v}
}

// Checkout starts a plan purchase and returns the hosted checkout URL
func (h *BillingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	url, err := h.payments.Checkout(r.Context(), middleware.GetUserID(r.Context()), req.PlanID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.CheckoutResponse{URL: url})
}

// Confirm finalizes a purchase and upgrades the caller's plan
func (h *BillingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmPaymentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	sub, err := h.payments.Confirm(r.Context(), middleware.GetUserID(r.Context()), req.PlanID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, sub)
}

// Manage mutates one of the caller's own subscriptions. Cancelling
// the subscription backing the current plan drops the caller to free.
func (h *BillingHandler) Manage(w http.ResponseWriter, r *http.Request) {
	var req dto.ManageSubscriptionRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	sub, err := h.payments.CancelSubscription(r.Context(), middleware.GetUserID(r.Context()), req.SubscriptionID)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, sub)
}

// Subscriptions returns the caller's own subscription history
func (h *BillingHandler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subs.ListByUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, subs)
}
