// Package testutil provides shared fixtures for service and handler tests.
package testutil

import (
	"context"
	"sync"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/catalog"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/plan"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/llm"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
	"github.com/ilyra-ai/ilyra-sub000/internal/repository/memory"
)

// Logger returns a quiet logger for tests
func Logger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

// FakeProvider is a scriptable completion backend. It counts calls and
// can be told to fail.
type FakeProvider struct {
	mu       sync.Mutex
	name     string
	Reply    string
	Err      error
	calls    int
	lastReq  llm.Request
	ModelIDs []string
}

// NewFakeProvider creates a fake backend with the given vendor name
func NewFakeProvider(name string) *FakeProvider {
	return &FakeProvider{name: name, Reply: "ok", ModelIDs: []string{"fake-model"}}
}

// Name returns the vendor identifier
func (p *FakeProvider) Name() string { return p.name }

// ListModels returns the scripted model list
func (p *FakeProvider) ListModels(ctx context.Context) ([]string, error) {
	return p.ModelIDs, nil
}

// Complete returns the scripted reply or error
func (p *FakeProvider) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.lastReq = req
	if p.Err != nil {
		return nil, p.Err
	}
	return &llm.Response{Content: p.Reply, Model: req.Model}, nil
}

// Calls returns how many completions were requested
func (p *FakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// LastRequest returns the most recent completion request
func (p *FakeProvider) LastRequest() llm.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastReq
}

// Stores bundles fresh in-memory repositories for a test
type Stores struct {
	Users    *memory.UserRepository
	Prefs    *memory.PreferenceRepository
	Convs    *memory.ConversationRepository
	Plans    *memory.PlanRepository
	Catalog  *memory.CatalogRepository
	Subs     *memory.SubscriptionRepository
	Platform *memory.PlatformRepository
}

// NewStores creates empty repositories
func NewStores() *Stores {
	return &Stores{
		Users:    memory.NewUserRepository(),
		Prefs:    memory.NewPreferenceRepository(),
		Convs:    memory.NewConversationRepository(),
		Plans:    memory.NewPlanRepository(),
		Catalog:  memory.NewCatalogRepository(),
		Subs:     memory.NewSubscriptionRepository(),
		Platform: memory.NewPlatformRepository(),
	}
}

// SeedUser creates a user with the given plan and returns it
func (s *Stores) SeedUser(ctx context.Context, email, planID string) (*user.User, error) {
	u := &user.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "x",
		Role:         user.RoleUser,
		Plan:         planID,
		Status:       user.StatusActive,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SeedPlan creates a plan with the given message limit (nil for unlimited)
func (s *Stores) SeedPlan(ctx context.Context, id string, messageLimit *int) (*plan.Plan, error) {
	p := &plan.Plan{
		ID:           id,
		Name:         id,
		Price:        0,
		Currency:     "BRL",
		MessageLimit: messageLimit,
		Active:       true,
	}
	if err := s.Plans.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SeedModel creates an enabled catalog model with an enabled provider
// and a selection exposing it to the given plans.
func (s *Stores) SeedModel(ctx context.Context, provider, name string, plans []string) (*catalog.Model, error) {
	if err := s.Catalog.UpsertProviderSetting(ctx, &catalog.ProviderSetting{
		Provider: provider,
		Enabled:  true,
	}); err != nil {
		return nil, err
	}

	m := &catalog.Model{
		ID:       catalog.ModelID(provider, name),
		Name:     name,
		Provider: provider,
		Status:   catalog.StatusEnabled,
		Plans:    plans,
	}
	if err := s.Catalog.CreateModel(ctx, m); err != nil {
		return nil, err
	}

	sels, err := s.Catalog.ListSelections(ctx)
	if err != nil {
		return nil, err
	}
	sels = append(sels, &catalog.Selection{ModelID: m.ID, Plans: plans})
	if err := s.Catalog.ReplaceSelections(ctx, sels); err != nil {
		return nil, err
	}
	return m, nil
}

// IntPtr returns a pointer to n
func IntPtr(n int) *int {
	return &n
}
