package services

import (
	"context"
	"time"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/plan"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/subscription"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
)

// SubscriptionService manages subscription records. Admin edits here do
// not touch User.Plan; only the payment flow mirrors plan changes onto
// the user record.
type SubscriptionService struct {
	repo  subscription.Repository
	plans plan.Repository
	log   *logger.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(repo subscription.Repository, plans plan.Repository, log *logger.Logger) *SubscriptionService {
	return &SubscriptionService{repo: repo, plans: plans, log: log}
}

// Create records a subscription after validating the plan exists
func (s *SubscriptionService) Create(ctx context.Context, sub *subscription.Subscription) (*subscription.Subscription, error) {
	if _, err := s.plans.GetByID(ctx, sub.PlanID); err != nil {
		return nil, err
	}
	if sub.Status == "" {
		sub.Status = subscription.StatusActive
	}
	if !subscription.ValidStatus(sub.Status) {
		return nil, errors.BadRequest("Invalid subscription status: " + sub.Status)
	}
	if sub.StartDate.IsZero() {
		sub.StartDate = time.Now()
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	s.log.With("subscription_id", sub.ID).With("plan_id", sub.PlanID).Info("subscription created")
	return sub, nil
}

// GetByID retrieves a subscription
func (s *SubscriptionService) GetByID(ctx context.Context, id string) (*subscription.Subscription, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all subscriptions
func (s *SubscriptionService) List(ctx context.Context) ([]*subscription.Subscription, error) {
	return s.repo.List(ctx)
}

// ListByUser retrieves a user's subscriptions
func (s *SubscriptionService) ListByUser(ctx context.Context, userID int64) ([]*subscription.Subscription, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus changes a subscription's status, stamping the end date
// when it leaves the active state.
func (s *SubscriptionService) UpdateStatus(ctx context.Context, id, status string) (*subscription.Subscription, error) {
	if !subscription.ValidStatus(status) {
		return nil, errors.BadRequest("Invalid subscription status: " + status)
	}
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sub.Status = status
	if status != subscription.StatusActive && sub.EndDate == nil {
		now := time.Now()
		sub.EndDate = &now
	}
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	s.log.With("subscription_id", id).With("status", status).Info("subscription status updated")
	return sub, nil
}

// Delete removes a subscription record
func (s *SubscriptionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.With("subscription_id", id).Info("subscription deleted")
	return nil
}
