package services

import (
	"context"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/plan"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/subscription"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
)

// PlanService manages the plan catalog
type PlanService struct {
	repo plan.Repository
	subs subscription.Repository
	log  *logger.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(repo plan.Repository, subs subscription.Repository, log *logger.Logger) *PlanService {
	return &PlanService{repo: repo, subs: subs, log: log}
}

// Create adds a plan to the catalog
func (s *PlanService) Create(ctx context.Context, p *plan.Plan) (*plan.Plan, error) {
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.With("plan_id", p.ID).Info("plan created")
	return p, nil
}

// GetByID retrieves a plan
func (s *PlanService) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all plans
func (s *PlanService) List(ctx context.Context) ([]*plan.Plan, error) {
	return s.repo.List(ctx)
}

// ListActive retrieves plans offered for sign-up
func (s *PlanService) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	plans, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := plans[:0]
	for _, p := range plans {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update replaces a plan definition
func (s *PlanService) Update(ctx context.Context, p *plan.Plan) (*plan.Plan, error) {
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.log.With("plan_id", p.ID).Info("plan updated")
	return p, nil
}

// Delete removes a plan. Refused while active subscriptions still
// reference it.
func (s *PlanService) Delete(ctx context.Context, id string) error {
	active, err := s.subs.CountActiveByPlan(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return errors.Conflict("Plan has active subscriptions and cannot be deleted")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.With("plan_id", id).Info("plan deleted")
	return nil
}
