package subscription

import "context"

// Repository defines the interface for subscription data access
type Repository interface {
	// Create creates a new subscription
	Create(ctx context.Context, sub *Subscription) error

	// GetByID retrieves a subscription by ID
	GetByID(ctx context.Context, id string) (*Subscription, error)

	// List retrieves all subscriptions
	List(ctx context.Context) ([]*Subscription, error)

	// ListByUser retrieves all subscriptions for a user
	ListByUser(ctx context.Context, userID int64) ([]*Subscription, error)

	// CountActiveByPlan returns the number of active subscriptions on a plan
	CountActiveByPlan(ctx context.Context, planID string) (int64, error)

	// Update replaces a subscription record
	Update(ctx context.Context, sub *Subscription) error

	// Delete removes a subscription record
	Delete(ctx context.Context, id string) error
}
