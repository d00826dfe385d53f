package handlers

import (
	"net/http"

	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// PublicHandler serves the unauthenticated bootstrap endpoints the
// client loads before any session exists.
type PublicHandler struct {
	platform *services.PlatformService
	plans    *services.PlanService
}

// NewPublicHandler creates a public handler
func NewPublicHandler(platformSvc *services.PlatformService, plans *services.PlanService) *PublicHandler {
	return &PublicHandler{platform: platformSvc, plans: plans}
}

// Settings returns the platform branding and toggles
func (h *PublicHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.platform.Get(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, settings)
}

// Plans returns the plans open for sign-up
func (h *PublicHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.ListActive(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, plans)
}
