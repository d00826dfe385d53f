package user

import "context"

// Service defines the interface for user business logic
type Service interface {
	// Register creates a new user with a hashed password
	Register(ctx context.Context, email, name, password string) (*User, error)

	// Authenticate verifies credentials and returns the user
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdateProfile updates a user's mutable profile fields
	UpdateProfile(ctx context.Context, id int64, name string) (*User, error)

	// List retrieves users with pagination
	List(ctx context.Context, limit, offset int) ([]*User, int64, error)

	// UpdateRole changes a user's role
	UpdateRole(ctx context.Context, id int64, role string) (*User, error)

	// UpdatePlan changes a user's plan tier
	UpdatePlan(ctx context.Context, id int64, plan string) (*User, error)

	// UpdateStatus changes a user's account status
	UpdateStatus(ctx context.Context, id int64, status string) (*User, error)

	// Delete removes a user account. Conversations are intentionally left
	// in place; see the conversation service for the cleanup contract.
	Delete(ctx context.Context, id int64) error
}
