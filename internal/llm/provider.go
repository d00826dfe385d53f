// Package llm defines the provider abstraction for chat completion
// backends and a registry for resolving them by name.
package llm

import (
	"context"
	"sort"
	"sync"

	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
)

// Message is one turn of a chat exchange sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries the model and conversation history for a completion.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Response is the provider's completion output.
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model"`
}

// Provider is a chat completion backend for one LLM vendor.
type Provider interface {
	// Name returns the vendor identifier used in catalog records.
	Name() string
	// ListModels returns the model names the backend can serve.
	ListModels(ctx context.Context) ([]string, error)
	// Complete produces an assistant reply for the request.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Registry resolves providers by vendor name.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates a registry populated with the given providers
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// Register adds or replaces a provider
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get returns the provider for a vendor name
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, errors.BadRequest("No backend registered for provider: " + name)
	}
	return p, nil
}

// Names returns the registered vendor names sorted alphabetically
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
