package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/preference"
)

// PreferenceRepository implements preference.Repository over an in-process map
type PreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[int64]*preference.Preferences
}

// NewPreferenceRepository creates a new in-memory preference repository
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{
		prefs: make(map[int64]*preference.Preferences),
	}
}

// Get retrieves preferences for a user, or nil when none exist yet
func (r *PreferenceRepository) Get(ctx context.Context, userID int64) (*preference.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.prefs[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// Upsert creates or replaces preferences for a user
func (r *PreferenceRepository) Upsert(ctx context.Context, prefs *preference.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefs.UpdatedAt = time.Now()
	cp := *prefs
	r.prefs[prefs.UserID] = &cp
	return nil
}

// Delete removes preferences for a user
func (r *PreferenceRepository) Delete(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.prefs, userID)
	return nil
}
