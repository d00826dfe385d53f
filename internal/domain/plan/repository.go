package plan

import "context"

// Repository defines the interface for plan catalog data access
type Repository interface {
	// Create adds a plan to the catalog
	Create(ctx context.Context, p *Plan) error

	// GetByID retrieves a plan by ID
	GetByID(ctx context.Context, id string) (*Plan, error)

	// List retrieves all plans in catalog order
	List(ctx context.Context) ([]*Plan, error)

	// Update replaces a plan definition
	Update(ctx context.Context, p *Plan) error

	// Delete removes a plan from the catalog
	Delete(ctx context.Context, id string) error
}
