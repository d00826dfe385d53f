package dto

// SendMessageRequest is the payload for one chat send. ConversationID
// may be empty to start a new thread; Model may be empty to reuse the
// conversation's model or the configured default.
type SendMessageRequest struct {
	ConversationID string `json:"conversation_id" validate:"omitempty,uuid"`
	Model          string `json:"model" validate:"omitempty"`
	Content        string `json:"content" validate:"required,max=32000"`
}

// CreateConversationRequest opens an empty thread ahead of the first
// message. All fields are optional.
type CreateConversationRequest struct {
	Title string `json:"title" validate:"omitempty,max=200"`
	Model string `json:"model" validate:"omitempty"`
}

// RenameConversationRequest is the payload for a conversation rename
type RenameConversationRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}
