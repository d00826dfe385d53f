package platform

import "context"

// Repository defines the interface for the platform settings singleton
type Repository interface {
	// Get retrieves the current platform settings
	Get(ctx context.Context) (*Settings, error)

	// Update replaces the platform settings
	Update(ctx context.Context, s *Settings) error
}
