package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/catalog"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
)

// CatalogRepository implements catalog.Repository. Models, provider
// settings and plan selections share one lock so that model removal
// and its selection cleanup stay atomic.
type CatalogRepository struct {
	mu         sync.RWMutex
	models     map[string]*catalog.Model
	providers  map[string]*catalog.ProviderSetting
	selections map[string]*catalog.Selection
}

// NewCatalogRepository creates a new in-memory catalog repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		models:     make(map[string]*catalog.Model),
		providers:  make(map[string]*catalog.ProviderSetting),
		selections: make(map[string]*catalog.Selection),
	}
}

// CreateModel registers a model in the catalog
func (r *CatalogRepository) CreateModel(ctx context.Context, m *catalog.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[m.ID]; exists {
		return errors.Conflict("Model already exists")
	}

	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	r.models[m.ID] = cloneModel(m)
	return nil
}

// GetModel retrieves a model by ID
func (r *CatalogRepository) GetModel(ctx context.Context, id string) (*catalog.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[id]
	if !ok {
		return nil, errors.NotFound("Model")
	}
	return cloneModel(m), nil
}

// ListModels retrieves all catalog models sorted by ID
func (r *CatalogRepository) ListModels(ctx context.Context) ([]*catalog.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*catalog.Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, cloneModel(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateModel replaces a model definition
func (r *CatalogRepository) UpdateModel(ctx context.Context, m *catalog.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.models[m.ID]; !ok {
		return errors.NotFound("Model")
	}
	m.UpdatedAt = time.Now()
	r.models[m.ID] = cloneModel(m)
	return nil
}

// DeleteModel removes a model and any plan selection referencing it
func (r *CatalogRepository) DeleteModel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.models[id]; !ok {
		return errors.NotFound("Model")
	}
	delete(r.models, id)
	delete(r.selections, id)
	return nil
}

// GetProviderSetting retrieves the settings for a provider
func (r *CatalogRepository) GetProviderSetting(ctx context.Context, provider string) (*catalog.ProviderSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.providers[provider]
	if !ok {
		return nil, errors.NotFound("Provider setting")
	}
	cp := *s
	return &cp, nil
}

// ListProviderSettings retrieves all provider settings sorted by provider name
func (r *CatalogRepository) ListProviderSettings(ctx context.Context) ([]*catalog.ProviderSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*catalog.ProviderSetting, 0, len(r.providers))
	for _, s := range r.providers {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Provider < out[j].Provider })
	return out, nil
}

// UpsertProviderSetting creates or replaces a provider's settings
func (r *CatalogRepository) UpsertProviderSetting(ctx context.Context, s *catalog.ProviderSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.UpdatedAt = time.Now()
	cp := *s
	r.providers[s.Provider] = &cp
	return nil
}

// ListSelections retrieves all model plan selections sorted by model ID
func (r *CatalogRepository) ListSelections(ctx context.Context) ([]*catalog.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*catalog.Selection, 0, len(r.selections))
	for _, sel := range r.selections {
		out = append(out, cloneSelection(sel))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModelID < out[j].ModelID })
	return out, nil
}

// ReplaceSelections swaps the full selection set atomically. Selections
// naming unknown models are rejected so the visible set never points at
// models that are not in the catalog.
func (r *CatalogRepository) ReplaceSelections(ctx context.Context, sels []*catalog.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	next := make(map[string]*catalog.Selection, len(sels))
	for _, sel := range sels {
		if _, ok := r.models[sel.ModelID]; !ok {
			return errors.BadRequest("Unknown model in selection: " + sel.ModelID)
		}
		cp := cloneSelection(sel)
		cp.UpdatedAt = now
		next[sel.ModelID] = cp
	}
	r.selections = next
	return nil
}

func cloneModel(m *catalog.Model) *catalog.Model {
	cp := *m
	cp.Plans = append([]string(nil), m.Plans...)
	return &cp
}

func cloneSelection(s *catalog.Selection) *catalog.Selection {
	cp := *s
	cp.Plans = append([]string(nil), s.Plans...)
	return &cp
}
