package handlers

import (
	"net/http"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/platform"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// AdminSettingsHandler serves the back-office platform settings endpoints
type AdminSettingsHandler struct {
	platform  *services.PlatformService
	validator *validator.Validator
}

// NewAdminSettingsHandler creates an admin settings handler
func NewAdminSettingsHandler(platformSvc *services.PlatformService, v *validator.Validator) *AdminSettingsHandler {
	return &AdminSettingsHandler{platform: platformSvc, validator: v}
}

// Get returns the current platform settings
func (h *AdminSettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.platform.Get(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, settings)
}

// Update replaces the platform settings
func (h *AdminSettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	settings, err := h.platform.Update(r.Context(), &platform.Settings{
		Branding: platform.Branding{
			PlatformName:   req.Branding.PlatformName,
			LogoURL:        req.Branding.LogoURL,
			PrimaryColor:   req.Branding.PrimaryColor,
			SecondaryColor: req.Branding.SecondaryColor,
			AccentColor:    req.Branding.AccentColor,
		},
		AllowRegistration: req.AllowRegistration,
		AllowOAuth:        req.AllowOAuth,
		SidebarVisibility: req.SidebarVisibility,
	})
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, settings)
}
