package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/conversation"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/metrics"
)

// ConversationService manages conversation threads with ownership checks
type ConversationService struct {
	repo conversation.Repository
	log  *logger.Logger
}

// NewConversationService creates a new conversation service
func NewConversationService(repo conversation.Repository, log *logger.Logger) *ConversationService {
	return &ConversationService{repo: repo, log: log}
}

// defaultConversationTitle names threads opened before any message
const defaultConversationTitle = "Nova conversa"

// Create opens an empty conversation thread for the user
func (s *ConversationService) Create(ctx context.Context, userID int64, title, model string) (*conversation.Conversation, error) {
	if title == "" {
		title = defaultConversationTitle
	}
	conv := &conversation.Conversation{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  title,
		Model:  model,
	}
	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, err
	}
	s.log.With("conversation_id", conv.ID).With("user_id", userID).Info("conversation created")

	if n, err := s.repo.Count(ctx); err == nil {
		metrics.SetActiveConversations(float64(n))
	}
	return conv, nil
}

// List retrieves a user's conversations, newest first
func (s *ConversationService) List(ctx context.Context, userID int64) ([]*conversation.Conversation, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get retrieves a conversation owned by the user
func (s *ConversationService) Get(ctx context.Context, userID int64, id string) (*conversation.Conversation, error) {
	conv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conv.UserID != userID {
		return nil, errors.Forbidden("Conversation belongs to another user")
	}
	return conv, nil
}

// Messages retrieves the messages of a conversation owned by the user
func (s *ConversationService) Messages(ctx context.Context, userID int64, id string) ([]*conversation.Message, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, id)
}

// Rename updates a conversation's title
func (s *ConversationService) Rename(ctx context.Context, userID int64, id, title string) (*conversation.Conversation, error) {
	conv, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	conv.Title = title
	if err := s.repo.Update(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// Delete removes a conversation and all of its messages
func (s *ConversationService) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.With("conversation_id", id).Info("conversation deleted")

	if n, err := s.repo.Count(ctx); err == nil {
		metrics.SetActiveConversations(float64(n))
	}
	return nil
}
