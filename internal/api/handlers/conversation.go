package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/api/middleware"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// ConversationHandler serves the caller's conversation threads
type ConversationHandler struct {
	convs     *services.ConversationService
	validator *validator.Validator
}

// NewConversationHandler creates a conversation handler
func NewConversationHandler(convs *services.ConversationService, v *validator.Validator) *ConversationHandler {
	return &ConversationHandler{convs: convs, validator: v}
}

// Create opens an empty conversation thread for the caller
func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConversationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	conv, err := h.convs.Create(r.Context(), middleware.GetUserID(r.Context()), req.Title, req.Model)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, conv)
}

// List returns the caller's conversations, newest first
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	convs, err := h.convs.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, convs)
}

// Get returns one conversation
func (h *ConversationHandler) Get(w http.ResponseWriter, r *http.Request) {
	conv, err := h.convs.Get(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "conversationID"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, conv)
}

// Messages returns a conversation's messages in order
func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.convs.Messages(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "conversationID"))
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, msgs)
}

// Rename updates a conversation title
func (h *ConversationHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req dto.RenameConversationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	conv, err := h.convs.Rename(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "conversationID"), req.Title)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, conv)
}

// Delete removes a conversation and its messages
func (h *ConversationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.convs.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "conversationID")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccessWithMessage(w, http.StatusOK, "Conversation deleted", nil)
}
