package services

import (
	"context"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/catalog"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
)

// CatalogService manages the model catalog, provider settings and the
// chat exposure selection, and computes per-user model availability.
type CatalogService struct {
	repo  catalog.Repository
	users user.Repository
	log   *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo catalog.Repository, users user.Repository, log *logger.Logger) *CatalogService {
	return &CatalogService{repo: repo, users: users, log: log}
}

// CreateModel registers a catalog model. The ID is derived from
// provider and name when empty.
func (s *CatalogService) CreateModel(ctx context.Context, m *catalog.Model) (*catalog.Model, error) {
	if m.ID == "" {
		m.ID = catalog.ModelID(m.Provider, m.Name)
	}
	if m.Status == "" {
		m.Status = catalog.StatusEnabled
	}
	if err := s.repo.CreateModel(ctx, m); err != nil {
		return nil, err
	}
	s.log.With("model_id", m.ID).Info("catalog model created")
	return m, nil
}

// GetModel retrieves a catalog model
func (s *CatalogService) GetModel(ctx context.Context, id string) (*catalog.Model, error) {
	return s.repo.GetModel(ctx, id)
}

// ListModels retrieves the full catalog
func (s *CatalogService) ListModels(ctx context.Context) ([]*catalog.Model, error) {
	return s.repo.ListModels(ctx)
}

// UpdateModel replaces a catalog model definition
func (s *CatalogService) UpdateModel(ctx context.Context, m *catalog.Model) (*catalog.Model, error) {
	if m.Status != catalog.StatusEnabled && m.Status != catalog.StatusDisabled {
		return nil, errors.BadRequest("Invalid model status: " + m.Status)
	}
	if err := s.repo.UpdateModel(ctx, m); err != nil {
		return nil, err
	}
	s.log.With("model_id", m.ID).Info("catalog model updated")
	return m, nil
}

// DeleteModel removes a catalog model and its selection
func (s *CatalogService) DeleteModel(ctx context.Context, id string) error {
	if err := s.repo.DeleteModel(ctx, id); err != nil {
		return err
	}
	s.log.With("model_id", id).Info("catalog model deleted")
	return nil
}

// ListProviders retrieves all provider settings
func (s *CatalogService) ListProviders(ctx context.Context) ([]*catalog.ProviderSetting, error) {
	return s.repo.ListProviderSettings(ctx)
}

// GetProvider retrieves one provider's settings
func (s *CatalogService) GetProvider(ctx context.Context, provider string) (*catalog.ProviderSetting, error) {
	return s.repo.GetProviderSetting(ctx, provider)
}

// UpdateProvider creates or replaces a provider's settings
func (s *CatalogService) UpdateProvider(ctx context.Context, setting *catalog.ProviderSetting) (*catalog.ProviderSetting, error) {
	if err := s.repo.UpsertProviderSetting(ctx, setting); err != nil {
		return nil, err
	}
	s.log.With("provider", setting.Provider).With("enabled", setting.Enabled).Info("provider settings updated")
	return setting, nil
}

// ListSelections retrieves the chat exposure selection
func (s *CatalogService) ListSelections(ctx context.Context) ([]*catalog.Selection, error) {
	return s.repo.ListSelections(ctx)
}

// ReplaceSelections swaps the chat exposure selection atomically
func (s *CatalogService) ReplaceSelections(ctx context.Context, sels []*catalog.Selection) error {
	if err := s.repo.ReplaceSelections(ctx, sels); err != nil {
		return err
	}
	s.log.With("count", len(sels)).Info("chat model selection replaced")
	return nil
}

// AvailableModels computes the models a user may chat with. A model
// qualifies only when its provider is enabled, its catalog status is
// enabled, and the user's plan appears in its selection. Recomputed
// from the live records on every call.
func (s *CatalogService) AvailableModels(ctx context.Context, userID int64) ([]*catalog.Model, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.ListProviderSettings(ctx)
	if err != nil {
		return nil, err
	}
	enabled := make(map[string]bool, len(settings))
	for _, ps := range settings {
		enabled[ps.Provider] = ps.Enabled
	}

	sels, err := s.repo.ListSelections(ctx)
	if err != nil {
		return nil, err
	}
	selected := make(map[string][]string, len(sels))
	for _, sel := range sels {
		selected[sel.ModelID] = sel.Plans
	}

	models, err := s.repo.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*catalog.Model, 0, len(models))
	for _, m := range models {
		if !enabled[m.Provider] {
			continue
		}
		if m.Status != catalog.StatusEnabled {
			continue
		}
		plans, ok := selected[m.ID]
		if !ok || !catalog.HasPlan(plans, u.Plan) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
