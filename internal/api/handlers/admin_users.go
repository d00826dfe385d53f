package handlers

import (
	"net/http"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
)

// AdminUserHandler serves the back-office user management endpoints
type AdminUserHandler struct {
	users     user.Service
	validator *validator.Validator
}

// NewAdminUserHandler creates an admin user handler
func NewAdminUserHandler(users user.Service, v *validator.Validator) *AdminUserHandler {
	return &AdminUserHandler{users: users, validator: v}
}

// List returns all users with pagination
func (h *AdminUserHandler) List(w http.ResponseWriter, r *http.Request) {
	params := utils.ParsePaginationParams(r)

	users, total, err := h.users.List(r.Context(), params.PageSize, params.Offset)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(out, params.Page, params.PageSize, total))
}

// Get returns one user
func (h *AdminUserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "userID")
	if !ok {
		return
	}
	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.NewUserResponse(u))
}

// UpdateRole changes a user's role
func (h *AdminUserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "userID")
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	u, err := h.users.UpdateRole(r.Context(), id, req.Role)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.NewUserResponse(u))
}

// UpdatePlan changes a user's plan tier
func (h *AdminUserHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "userID")
	if !ok {
		return
	}
	var req dto.UpdatePlanRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	u, err := h.users.UpdatePlan(r.Context(), id, req.Plan)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.NewUserResponse(u))
}

// UpdateStatus changes a user's account status
func (h *AdminUserHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "userID")
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}
	u, err := h.users.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.NewUserResponse(u))
}

// Delete removes a user account
func (h *AdminUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "userID")
	if !ok {
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "User deleted", nil)
}
