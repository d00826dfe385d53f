package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/catalog"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/conversation"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/plan"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/llm"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/metrics"
	"github.com/ilyra-ai/ilyra-sub000/internal/quota"
)

// generationFailureNotice is appended as a system message when the
// provider call fails, so the failure is visible inside the
// conversation as well as in the error response.
const generationFailureNotice = "Desculpe, não foi possível gerar uma resposta agora. Tente novamente em instantes."

// SendResult is the outcome of one successful chat send.
type SendResult struct {
	Conversation *conversation.Conversation `json:"conversation"`
	UserMessage  *conversation.Message      `json:"user_message"`
	Reply        *conversation.Message      `json:"reply"`
	Used         int                        `json:"messages_used"`
	Limit        *int                       `json:"message_limit"`
}

// ChatService runs the message-send workflow: quota gate, lazy
// conversation creation, history replay and assistant generation.
type ChatService struct {
	users     user.Repository
	plans     plan.Repository
	convs     conversation.Repository
	catalog      *CatalogService
	providers    *llm.Registry
	tracker      *quota.Tracker
	defaultModel string
	log          *logger.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	users user.Repository,
	plans plan.Repository,
	convs conversation.Repository,
	catalogSvc *CatalogService,
	providers *llm.Registry,
	tracker *quota.Tracker,
	defaultModel string,
	log *logger.Logger,
) *ChatService {
	return &ChatService{
		users:        users,
		plans:        plans,
		convs:        convs,
		catalog:      catalogSvc,
		providers:    providers,
		tracker:      tracker,
		defaultModel: defaultModel,
		log:          log,
	}
}

// Send processes one user message. conversationID may be empty or
// stale: a conversation is created lazily in both cases. modelID may
// be empty: the existing conversation's model is reused, falling back
// to the configured default. The quota is charged before generation
// and rolled back when generation fails, so a failed send never burns
// a message from the user's allowance.
func (s *ChatService) Send(ctx context.Context, userID int64, conversationID, modelID, content string) (*SendResult, error) {
	if content == "" {
		return nil, errors.BadRequest("Message content is required")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if modelID == "" {
		modelID = s.defaultModel
		if conversationID != "" {
			if conv, err := s.convs.GetByID(ctx, conversationID); err == nil && conv.UserID == userID && conv.Model != "" {
				modelID = conv.Model
			}
		}
	}

	model, err := s.resolveModel(ctx, u, modelID)
	if err != nil {
		return nil, err
	}

	limit, err := s.messageLimit(ctx, u)
	if err != nil {
		return nil, err
	}
	charged := false
	if !u.IsAdmin() && u.Plan != user.PlanAdmin {
		if !s.tracker.TryConsume(userID, limit) {
			metrics.RecordQuotaDenial(u.Plan)
			return nil, errors.QuotaExceeded("Message limit reached for your plan").
				WithDetails(map[string]interface{}{"plan": u.Plan, "limit": *limit})
		}
		charged = true
	}

	conv, err := s.ensureConversation(ctx, u.ID, conversationID, model.ID, content)
	if err != nil {
		if charged {
			s.tracker.Rollback(userID)
		}
		return nil, err
	}

	userMsg := &conversation.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           conversation.RoleUser,
		Content:        content,
	}
	if err := s.convs.AppendMessage(ctx, userMsg); err != nil {
		if charged {
			s.tracker.Rollback(userID)
		}
		return nil, err
	}
	metrics.RecordChatMessage(conversation.RoleUser, model.ID)

	reply, genErr := s.generate(ctx, conv, model)
	if genErr != nil {
		s.log.WithError(genErr).With("conversation_id", conv.ID).Error("assistant generation failed")
		if charged {
			s.tracker.Rollback(userID)
		}
		// The user message stays; the failure is recorded in the
		// conversation and surfaced as the response error.
		notice := &conversation.Message{
			ID:             uuid.NewString(),
			ConversationID: conv.ID,
			Role:           conversation.RoleSystem,
			Content:        generationFailureNotice,
		}
		if err := s.convs.AppendMessage(ctx, notice); err != nil {
			return nil, err
		}
		var appErr *errors.AppError
		if stderrors.As(genErr, &appErr) {
			return nil, genErr
		}
		return nil, errors.ProviderAPIError(model.Provider, genErr)
	}
	if err := s.convs.AppendMessage(ctx, reply); err != nil {
		return nil, err
	}
	metrics.RecordChatMessage(conversation.RoleAssistant, model.ID)

	if n, err := s.convs.Count(ctx); err == nil {
		metrics.SetActiveConversations(float64(n))
	}

	return &SendResult{
		Conversation: conv,
		UserMessage:  userMsg,
		Reply:        reply,
		Used:         s.tracker.Used(userID),
		Limit:        limit,
	}, nil
}

// resolveModel checks that the model is currently available to the
// user, recomputing the provider/catalog/selection intersection.
func (s *ChatService) resolveModel(ctx context.Context, u *user.User, modelID string) (*catalog.Model, error) {
	available, err := s.catalog.AvailableModels(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range available {
		if m.ID == modelID {
			return m, nil
		}
	}
	return nil, errors.Forbidden("Model is not available on your plan")
}

// messageLimit returns the quota for the user's plan, nil for
// unlimited. Unknown plan tiers fail rather than silently granting
// unlimited sends.
func (s *ChatService) messageLimit(ctx context.Context, u *user.User) (*int, error) {
	if u.IsAdmin() || u.Plan == user.PlanAdmin {
		return nil, nil
	}
	p, err := s.plans.GetByID(ctx, u.Plan)
	if err != nil {
		return nil, errors.Internal("User plan is not in the catalog", err)
	}
	return p.MessageLimit, nil
}

// ensureConversation loads the target conversation, creating a fresh
// one when the ID is empty or no longer resolves.
func (s *ChatService) ensureConversation(ctx context.Context, userID int64, id, modelID, content string) (*conversation.Conversation, error) {
	if id != "" {
		conv, err := s.convs.GetByID(ctx, id)
		if err == nil {
			if conv.UserID != userID {
				return nil, errors.Forbidden("Conversation belongs to another user")
			}
			return conv, nil
		}
		var appErr *errors.AppError
		if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeNotFound {
			return nil, err
		}
	}

	conv := &conversation.Conversation{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  conversation.TitleFromContent(content),
		Model:  modelID,
	}
	if err := s.convs.Create(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// generate replays the conversation history to the model's provider
// and returns the assistant reply as an unsaved message.
func (s *ChatService) generate(ctx context.Context, conv *conversation.Conversation, model *catalog.Model) (*conversation.Message, error) {
	provider, err := s.providers.Get(model.Provider)
	if err != nil {
		return nil, err
	}

	history, err := s.convs.ListMessages(ctx, conv.ID)
	if err != nil {
		return nil, err
	}
	msgs := make([]llm.Message, 0, len(history))
	for _, m := range history {
		if m.Role == conversation.RoleSystem {
			continue
		}
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}

	start := time.Now()
	resp, err := provider.Complete(ctx, llm.Request{Model: model.Name, Messages: msgs})
	if err != nil {
		return nil, err
	}
	metrics.RecordGeneration(model.Provider, time.Since(start))

	return &conversation.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           conversation.RoleAssistant,
		Content:        resp.Content,
	}, nil
}
