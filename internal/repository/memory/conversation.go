package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/conversation"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
)

// ConversationRepository implements conversation.Repository over in-process
// maps. Conversation delete removes its messages under the same lock, so no
// call ordering can observe orphaned messages.
type ConversationRepository struct {
	mu            sync.RWMutex
	conversations map[string]*conversation.Conversation
	messages      map[string][]*conversation.Message
}

// NewConversationRepository creates a new in-memory conversation repository
func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		conversations: make(map[string]*conversation.Conversation),
		messages:      make(map[string][]*conversation.Message),
	}
}

// Create creates a new conversation
func (r *ConversationRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conversations[conv.ID]; exists {
		return errors.Conflict("Conversation already exists")
	}

	now := time.Now()
	conv.CreatedAt = now
	conv.UpdatedAt = now

	cp := *conv
	r.conversations[conv.ID] = &cp
	return nil
}

// GetByID retrieves a conversation by ID
func (r *ConversationRepository) GetByID(ctx context.Context, id string) (*conversation.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation")
	}
	cp := *conv
	return &cp, nil
}

// ListByUser retrieves all conversations for a user, newest activity first
func (r *ConversationRepository) ListByUser(ctx context.Context, userID int64) ([]*conversation.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*conversation.Conversation{}
	for _, conv := range r.conversations {
		if conv.UserID == userID {
			cp := *conv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

// Update updates conversation metadata
func (r *ConversationRepository) Update(ctx context.Context, conv *conversation.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[conv.ID]; !ok {
		return errors.NotFound("Conversation")
	}
	conv.UpdatedAt = time.Now()
	cp := *conv
	r.conversations[conv.ID] = &cp
	return nil
}

// Delete removes a conversation and all of its messages
func (r *ConversationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[id]; !ok {
		return errors.NotFound("Conversation")
	}
	delete(r.conversations, id)
	delete(r.messages, id)
	return nil
}

// AppendMessage appends a message and bumps the conversation timestamp
func (r *ConversationRepository) AppendMessage(ctx context.Context, msg *conversation.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[msg.ConversationID]
	if !ok {
		return errors.NotFound("Conversation")
	}

	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	cp := *msg
	r.messages[msg.ConversationID] = append(r.messages[msg.ConversationID], &cp)
	conv.UpdatedAt = time.Now()
	return nil
}

// ListMessages retrieves a conversation's messages in append order
func (r *ConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]*conversation.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.conversations[conversationID]; !ok {
		return nil, errors.NotFound("Conversation")
	}

	msgs := r.messages[conversationID]
	out := make([]*conversation.Message, 0, len(msgs))
	for _, m := range msgs {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// Count returns the number of stored conversations
func (r *ConversationRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.conversations)), nil
}
