package handlers

import (
	"net/http"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/api/middleware"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/preference"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// UserHandler serves the authenticated user's own profile,
// preferences and model availability.
type UserHandler struct {
	users     user.Service
	prefs     *services.PreferenceService
	catalog   *services.CatalogService
	validator *validator.Validator
}

// NewUserHandler creates a user handler
func NewUserHandler(users user.Service, prefs *services.PreferenceService, catalog *services.CatalogService, v *validator.Validator) *UserHandler {
	return &UserHandler{users: users, prefs: prefs, catalog: catalog, validator: v}
}

// GetProfile returns the caller's profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByID(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.NewUserResponse(u))
}

// UpdateProfile updates the caller's profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), middleware.GetUserID(r.Context()), req.Name)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.NewUserResponse(u))
}

// GetPreferences returns the caller's preferences, creating defaults
// on first access.
func (h *UserHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefs.Get(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, prefs)
}

// UpdatePreferences replaces the caller's preferences
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req dto.PreferencesRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	prefs, err := h.prefs.Update(r.Context(), &preference.Preferences{
		UserID:        middleware.GetUserID(r.Context()),
		Theme:         req.Theme,
		FontSize:      req.FontSize,
		ResponseStyle: req.ResponseStyle,
		EnableHistory: req.EnableHistory,
	})
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, prefs)
}

// AvailableModels returns the models the caller's plan can chat with
func (h *UserHandler) AvailableModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.catalog.AvailableModels(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, models)
}
