package handlers

import (
	"net/http"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/dto"
	"github.com/ilyra-ai/ilyra-sub000/internal/api/middleware"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/utils"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
)

// ChatHandler serves the message-send endpoint
type ChatHandler struct {
	chat      *services.ChatService
	validator *validator.Validator
}

// NewChatHandler creates a chat handler
func NewChatHandler(chat *services.ChatService, v *validator.Validator) *ChatHandler {
	return &ChatHandler{chat: chat, validator: v}
}

// Send processes one chat message and returns the conversation, the
// stored user message and the assistant reply. Quota exhaustion
// surfaces as 402 with code QUOTA_EXCEEDED.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMessageRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.chat.Send(r.Context(), middleware.GetUserID(r.Context()), req.ConversationID, req.Model, req.Content)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, result)
}
