package client

import "context"

// ChatClient groups the chat endpoints
type ChatClient struct {
	c *Client
}

// Send submits one message. conversationID may be empty to start a new
// thread; the created conversation comes back in the result.
func (ch *ChatClient) Send(ctx context.Context, conversationID, model, content string) (*SendResult, error) {
	var out SendResult
	err := ch.c.doRequest(ctx, "POST", "/chat/send", map[string]string{
		"conversation_id": conversationID,
		"model":           model,
		"content":         content,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ConversationClient groups the conversation endpoints
type ConversationClient struct {
	c *Client
}

// Create opens an empty conversation thread. Both arguments are
// optional; an empty title gets a server-side default.
func (cc *ConversationClient) Create(ctx context.Context, title, model string) (*Conversation, error) {
	var out Conversation
	err := cc.c.doRequest(ctx, "POST", "/user/conversations/", map[string]string{
		"title": title,
		"model": model,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the caller's conversations, newest first
func (cc *ConversationClient) List(ctx context.Context) ([]Conversation, error) {
	var out []Conversation
	if err := cc.c.doRequest(ctx, "GET", "/user/conversations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one conversation
func (cc *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	var out Conversation
	if err := cc.c.doRequest(ctx, "GET", "/user/conversations/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Messages returns a conversation's messages in order
func (cc *ConversationClient) Messages(ctx context.Context, id string) ([]Message, error) {
	var out []Message
	if err := cc.c.doRequest(ctx, "GET", "/user/conversations/"+id+"/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Rename changes a conversation's title
func (cc *ConversationClient) Rename(ctx context.Context, id, title string) (*Conversation, error) {
	var out Conversation
	if err := cc.c.doRequest(ctx, "PUT", "/user/conversations/"+id, map[string]string{"title": title}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a conversation and its messages
func (cc *ConversationClient) Delete(ctx context.Context, id string) error {
	return cc.c.doRequest(ctx, "DELETE", "/user/conversations/"+id, nil, nil)
}
