package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/subscription"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
)

// SubscriptionRepository implements subscription.Repository over an in-process map
type SubscriptionRepository struct {
	mu   sync.RWMutex
	subs map[string]*subscription.Subscription
}

// NewSubscriptionRepository creates a new in-memory subscription repository
func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{
		subs: make(map[string]*subscription.Subscription),
	}
}

// Create adds a subscription, assigning an ID when empty
func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	} else if _, exists := r.subs[s.ID]; exists {
		return errors.Conflict("Subscription already exists")
	}

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.subs[s.ID] = cloneSubscription(s)
	return nil
}

// GetByID retrieves a subscription by ID
func (r *SubscriptionRepository) GetByID(ctx context.Context, id string) (*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.subs[id]
	if !ok {
		return nil, errors.NotFound("Subscription")
	}
	return cloneSubscription(s), nil
}

// List retrieves all subscriptions sorted by creation time, newest first
func (r *SubscriptionRepository) List(ctx context.Context) ([]*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*subscription.Subscription, 0, len(r.subs))
	for _, s := range r.subs {
		out = append(out, cloneSubscription(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ListByUser retrieves a user's subscriptions, newest first
func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID int64) ([]*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*subscription.Subscription
	for _, s := range r.subs {
		if s.UserID == userID {
			out = append(out, cloneSubscription(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// CountActiveByPlan counts active subscriptions attached to a plan
func (r *SubscriptionRepository) CountActiveByPlan(ctx context.Context, planID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, s := range r.subs {
		if s.PlanID == planID && s.Status == subscription.StatusActive {
			n++
		}
	}
	return n, nil
}

// Update replaces a subscription
func (r *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[s.ID]; !ok {
		return errors.NotFound("Subscription")
	}
	s.UpdatedAt = time.Now()
	r.subs[s.ID] = cloneSubscription(s)
	return nil
}

// Delete removes a subscription
func (r *SubscriptionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[id]; !ok {
		return errors.NotFound("Subscription")
	}
	delete(r.subs, id)
	return nil
}

func cloneSubscription(s *subscription.Subscription) *subscription.Subscription {
	cp := *s
	if s.EndDate != nil {
		v := *s.EndDate
		cp.EndDate = &v
	}
	return &cp
}
