package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/plan"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
)

// PlanRepository implements plan.Repository over an in-process map
type PlanRepository struct {
	mu    sync.RWMutex
	plans map[string]*plan.Plan
	order []string
}

// NewPlanRepository creates a new in-memory plan repository
func NewPlanRepository() *PlanRepository {
	return &PlanRepository{
		plans: make(map[string]*plan.Plan),
	}
}

// Create adds a plan to the catalog
func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plans[p.ID]; exists {
		return errors.Conflict("Plan already exists")
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	cp := clonePlan(p)
	r.plans[p.ID] = cp
	r.order = append(r.order, p.ID)
	return nil
}

// GetByID retrieves a plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plans[id]
	if !ok {
		return nil, errors.NotFound("Plan")
	}
	return clonePlan(p), nil
}

// List retrieves all plans in catalog order
func (r *PlanRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*plan.Plan, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.plans[id]; ok {
			out = append(out, clonePlan(p))
		}
	}
	return out, nil
}

// Update replaces a plan definition
func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[p.ID]; !ok {
		return errors.NotFound("Plan")
	}
	p.UpdatedAt = time.Now()
	r.plans[p.ID] = clonePlan(p)
	return nil
}

// Delete removes a plan from the catalog
func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[id]; !ok {
		return errors.NotFound("Plan")
	}
	delete(r.plans, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func clonePlan(p *plan.Plan) *plan.Plan {
	cp := *p
	cp.Features = append([]string(nil), p.Features...)
	if p.MessageLimit != nil {
		v := *p.MessageLimit
		cp.MessageLimit = &v
	}
	if p.RateLimitPerMinute != nil {
		v := *p.RateLimitPerMinute
		cp.RateLimitPerMinute = &v
	}
	return &cp
}
