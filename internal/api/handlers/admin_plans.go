package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/plan"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// AdminPlanHandler serves the back-office plan catalog endpoints
type AdminPlanHandler struct {
	plans     *services.PlanService
	validator *validator.Validator
}

// NewAdminPlanHandler creates an admin plan handler
func NewAdminPlanHandler(plans *services.PlanService, v *validator.Validator) *AdminPlanHandler {
	return &AdminPlanHandler{plans: plans, validator: v}
}

// List returns all plans, including inactive ones
func (h *AdminPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.List(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, plans)
}

// Get returns one plan
func (h *AdminPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.plans.GetByID(r.Context(), chi.URLParam(r, "planID"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, p)
}

// Create adds a plan to the catalog
func (h *AdminPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	p, err := h.plans.Create(r.Context(), planFromRequest(&req))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, p)
}

// Update replaces a plan definition
func (h *AdminPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	p := planFromRequest(&req)
	p.ID = chi.URLParam(r, "planID")
	updated, err := h.plans.Update(r.Context(), p)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, updated)
}

// Delete removes a plan; refused while active subscriptions exist
func (h *AdminPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.plans.Delete(r.Context(), chi.URLParam(r, "planID")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Plan deleted", nil)
}

func planFromRequest(req *dto.PlanRequest) *plan.Plan {
	return &plan.Plan{
		ID:                 req.ID,
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		Currency:           req.Currency,
		Features:           req.Features,
		MessageLimit:       req.MessageLimit,
		RateLimitPerMinute: req.RateLimitPerMinute,
		Active:             req.Active,
	}
}
