package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/catalog"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// AdminCatalogHandler serves the back-office model catalog, provider
// settings and chat-exposure selection endpoints.
type AdminCatalogHandler struct {
	catalog   *services.CatalogService
	validator *validator.Validator
}

// NewAdminCatalogHandler creates an admin catalog handler
func NewAdminCatalogHandler(catalogSvc *services.CatalogService, v *validator.Validator) *AdminCatalogHandler {
	return &AdminCatalogHandler{catalog: catalogSvc, validator: v}
}

// ListModels returns the full model catalog
func (h *AdminCatalogHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.catalog.ListModels(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, models)
}

// GetModel returns one catalog model
func (h *AdminCatalogHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	m, err := h.catalog.GetModel(r.Context(), chi.URLParam(r, "modelID"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, m)
}

// CreateModel registers a model in the catalog
func (h *AdminCatalogHandler) CreateModel(w http.ResponseWriter, r *http.Request) {
	var req dto.ModelRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	m, err := h.catalog.CreateModel(r.Context(), &catalog.Model{
		Name:     req.Name,
		Provider: req.Provider,
		Status:   req.Status,
		Plans:    req.Plans,
	})
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, m)
}

// UpdateModel replaces a catalog model definition
func (h *AdminCatalogHandler) UpdateModel(w http.ResponseWriter, r *http.Request) {
	var req dto.ModelRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	m, err := h.catalog.UpdateModel(r.Context(), &catalog.Model{
		ID:       chi.URLParam(r, "modelID"),
		Name:     req.Name,
		Provider: req.Provider,
		Status:   req.Status,
		Plans:    req.Plans,
	})
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, m)
}

// DeleteModel removes a catalog model and its selection
func (h *AdminCatalogHandler) DeleteModel(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteModel(r.Context(), chi.URLParam(r, "modelID")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Model deleted", nil)
}

// ListProviders returns all provider settings
func (h *AdminCatalogHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	settings, err := h.catalog.ListProviders(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, settings)
}

// UpdateProvider creates or replaces one provider's settings
func (h *AdminCatalogHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	var req dto.ProviderSettingRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	setting, err := h.catalog.UpdateProvider(r.Context(), &catalog.ProviderSetting{
		Provider: chi.URLParam(r, "provider"),
		Enabled:  req.Enabled,
		APIKey:   req.APIKey,
		BaseURL:  req.BaseURL,
	})
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, setting)
}

// ListSelections returns the chat-exposure selection
func (h *AdminCatalogHandler) ListSelections(w http.ResponseWriter, r *http.Request) {
	sels, err := h.catalog.ListSelections(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, sels)
}

// ReplaceSelections swaps the full chat-exposure selection
func (h *AdminCatalogHandler) ReplaceSelections(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceSelectionsRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	sels := make([]*catalog.Selection, 0, len(req.Selections))
	for _, entry := range req.Selections {
		sels = append(sels, &catalog.Selection{ModelID: entry.ModelID, Plans: entry.Plans})
	}
	if err := h.catalog.ReplaceSelections(r.Context(), sels); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Selection replaced", sels)
}
