package conversation

import "context"

// Repository defines the interface for conversation and message data access.
// Deleting a conversation removes its messages in the same call; there is no
// path that leaves orphaned messages behind.
type Repository interface {
	// Create creates a new conversation
	Create(ctx context.Context, conv *Conversation) error

	// GetByID retrieves a conversation by ID
	GetByID(ctx context.Context, id string) (*Conversation, error)

	// ListByUser retrieves all conversations for a user, newest first
	ListByUser(ctx context.Context, userID int64) ([]*Conversation, error)

	// Update updates conversation metadata (title, model, updated_at)
	Update(ctx context.Context, conv *Conversation) error

	// Delete removes a conversation and all of its messages
	Delete(ctx context.Context, id string) error

	// AppendMessage appends a message and bumps the conversation timestamp
	AppendMessage(ctx context.Context, msg *Message) error

	// ListMessages retrieves a conversation's messages in append order
	ListMessages(ctx context.Context, conversationID string) ([]*Message, error)

	// Count returns the number of stored conversations
	Count(ctx context.Context) (int64, error)
}
