package catalog

import "context"

// Repository defines the interface for the model catalog, provider settings
// and chat-exposure selection
type Repository interface {
	// CreateModel adds a model to the catalog
	CreateModel(ctx context.Context, m *Model) error

	// GetModel retrieves a catalog model by ID
	GetModel(ctx context.Context, id string) (*Model, error)

	// ListModels retrieves all catalog models
	ListModels(ctx context.Context) ([]*Model, error)

	// UpdateModel replaces a catalog model definition
	UpdateModel(ctx context.Context, m *Model) error

	// DeleteModel removes a model, along with any selection referencing it
	DeleteModel(ctx context.Context, id string) error

	// GetProviderSetting retrieves a provider's settings, or nil when unknown
	GetProviderSetting(ctx context.Context, provider string) (*ProviderSetting, error)

	// ListProviderSettings retrieves settings for all known providers
	ListProviderSettings(ctx context.Context) ([]*ProviderSetting, error)

	// UpsertProviderSetting creates or replaces a provider's settings
	UpsertProviderSetting(ctx context.Context, s *ProviderSetting) error

	// ListSelections retrieves the admin-selected chat exposure entries
	ListSelections(ctx context.Context) ([]*Selection, error)

	// ReplaceSelections atomically replaces the selection set
	ReplaceSelections(ctx context.Context, sels []*Selection) error
}
