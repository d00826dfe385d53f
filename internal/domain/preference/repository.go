package preference

import "context"

// Repository defines the interface for preference data access
type Repository interface {
	// Get retrieves preferences for a user, or nil when none exist yet
	Get(ctx context.Context, userID int64) (*Preferences, error)

	// Upsert creates or replaces preferences for a user
	Upsert(ctx context.Context, prefs *Preferences) error

	// Delete removes preferences for a user
	Delete(ctx context.Context, userID int64) error
}
