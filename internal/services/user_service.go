// Package services holds the business logic layer wiring domain
// repositories to the HTTP and CLI surfaces.
package services

import (
	"context"
	"strings"

	"github.com/ilyra-ai/ilyra-sub000/internal/auth"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
)

// UserService implements user.Service
type UserService struct {
	repo       user.Repository
	bcryptCost int
	log        *logger.Logger
}

// NewUserService creates a new user service. bcryptCost zero means
// the bcrypt default.
func NewUserService(repo user.Repository, bcryptCost int, log *logger.Logger) *UserService {
	return &UserService{repo: repo, bcryptCost: bcryptCost, log: log}
}

// Register creates a new user on the free plan with a hashed password
func (s *UserService) Register(ctx context.Context, email, name, password string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, errors.Conflict("Email already registered")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	u := &user.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         user.RoleUser,
		Plan:         user.PlanFree,
		Status:       user.StatusActive,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.With("user_id", u.ID).Info("user registered")
	return u, nil
}

// Authenticate verifies credentials and account status
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Hide whether the account exists
		return nil, errors.Unauthorized("Invalid email or password")
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, errors.Unauthorized("Invalid email or password")
	}

	switch u.Status {
	case user.StatusBanned:
		return nil, errors.Forbidden("Account is banned")
	case user.StatusInactive:
		return nil, errors.Forbidden("Account is inactive")
	}

	return u, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// UpdateProfile updates a user's name
func (s *UserService) UpdateProfile(ctx context.Context, id int64, name string) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Name = name
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// List retrieves users with pagination
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	return s.repo.List(ctx, limit, offset)
}

// UpdateRole changes a user's role
func (s *UserService) UpdateRole(ctx context.Context, id int64, role string) (*user.User, error) {
	if !user.ValidRole(role) {
		return nil, errors.BadRequest("Invalid role: " + role)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Role = role
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	s.log.With("user_id", id).With("role", role).Info("user role updated")
	return u, nil
}

// UpdatePlan changes a user's plan tier
func (s *UserService) UpdatePlan(ctx context.Context, id int64, plan string) (*user.User, error) {
	if !user.ValidPlan(plan) {
		return nil, errors.BadRequest("Invalid plan: " + plan)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Plan = plan
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	s.log.With("user_id", id).With("plan", plan).Info("user plan updated")
	return u, nil
}

// UpdateStatus changes a user's account status
func (s *UserService) UpdateStatus(ctx context.Context, id int64, status string) (*user.User, error) {
	if !user.ValidStatus(status) {
		return nil, errors.BadRequest("Invalid status: " + status)
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Status = status
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	s.log.With("user_id", id).With("status", status).Info("user status updated")
	return u, nil
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.With("user_id", id).Info("user deleted")
	return nil
}
