package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/api/middleware"
	"github.com/ilyra-ai/ilyra-sub000/internal/auth"
	"github.com/ilyra-ai/ilyra-sub000/internal/config"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// sessionCookie is the browser session cookie name
const sessionCookie = "ilyra_session"

// AuthHandler serves registration, login and session endpoints
type AuthHandler struct {
	users     user.Service
	platform  *services.PlatformService
	validator *validator.Validator
	authCfg   config.AuthConfig
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(users user.Service, platform *services.PlatformService, v *validator.Validator, authCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{users: users, platform: platform, validator: v, authCfg: authCfg}
}

// Register creates a new account when registration is open
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	settings, err := h.platform.Get(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	if !settings.AllowRegistration {
		utils.WriteError(w, errors.Forbidden("Registration is currently closed"))
		return
	}

	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	u, err := h.users.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	h.writeSession(w, r, u, http.StatusCreated)
}

// Login authenticates credentials and opens a session
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	h.writeSession(w, r, u, http.StatusOK)
}

// OAuth simulates a third-party login: it trusts the asserted email
// and provisions the account on first sight. Honors the platform
// OAuth toggle.
func (h *AuthHandler) OAuth(w http.ResponseWriter, r *http.Request) {
	settings, err := h.platform.Get(r.Context())
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	if !settings.AllowOAuth {
		utils.WriteError(w, errors.Forbidden("OAuth login is disabled"))
		return
	}

	var req struct {
		Provider string `json:"provider" validate:"required,oneof=google github"`
		Email    string `json:"email" validate:"required,email"`
		Name     string `json:"name" validate:"required,min=2,max=100"`
	}
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	u, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		u, err = h.users.Register(r.Context(), req.Email, req.Name, randomOAuthSecret())
		if err != nil {
			utils.WriteAppError(w, err)
			return
		}
	}

	h.writeSession(w, r, u, http.StatusOK)
}

// randomOAuthSecret generates an unguessable password for accounts
// provisioned through OAuth, which never log in with one.
func randomOAuthSecret() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByID(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, dto.NewUserResponse(u))
}

// Logout clears the browser session cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Logged out", nil)
}

// writeSession mints tokens, sets the session cookie and writes the
// auth response.
func (h *AuthHandler) writeSession(w http.ResponseWriter, r *http.Request, u *user.User, status int) {
	pair, err := auth.MintTokens(u.ID, u.Email, u.Role, h.authCfg.JWTSecret, h.authCfg.AccessTokenExpiry, h.authCfg.RefreshTokenExpiry)
	if err != nil {
		utils.WriteError(w, errors.Internal("Failed to mint session tokens", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   int(h.authCfg.AccessTokenExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteSuccess(w, status, dto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.NewUserResponse(u),
	})
}
