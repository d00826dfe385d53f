package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
)

// OpenAIProvider completes chats through the OpenAI API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates an OpenAI-backed provider. baseURL
// overrides the API endpoint when non-empty, which also covers
// OpenAI-compatible gateways.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg)}
}

// Name returns the vendor identifier
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// ListModels returns the model names the account can access
func (p *OpenAIProvider) ListModels(ctx context.Context) ([]string, error) {
	list, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, errors.ProviderAPIError("openai", err)
	}
	names := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		names = append(names, m.ID)
	}
	return names, nil
}

// Complete runs a chat completion and returns the first choice
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: msgs,
	})
	if err != nil {
		return nil, errors.ProviderAPIError("openai", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.ProviderAPIError("openai", fmt.Errorf("empty completion for model %s", req.Model))
	}

	return &Response{Content: resp.Choices[0].Message.Content, Model: resp.Model}, nil
}
