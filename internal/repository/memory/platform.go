package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/platform"
)

// PlatformRepository implements platform.Repository holding the single
// settings document
type PlatformRepository struct {
	mu       sync.RWMutex
	settings *platform.Settings
}

// NewPlatformRepository creates a platform repository initialized with defaults
func NewPlatformRepository() *PlatformRepository {
	return &PlatformRepository{settings: platform.Default()}
}

// Get retrieves the current platform settings
func (r *PlatformRepository) Get(ctx context.Context) (*platform.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSettings(r.settings), nil
}

// Update replaces the platform settings
func (r *PlatformRepository) Update(ctx context.Context, s *platform.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.UpdatedAt = time.Now()
	r.settings = cloneSettings(s)
	return nil
}

func cloneSettings(s *platform.Settings) *platform.Settings {
	cp := *s
	cp.SidebarVisibility = make(map[string][]string, len(s.SidebarVisibility))
	for k, v := range s.SidebarVisibility {
		cp.SidebarVisibility[k] = append([]string(nil), v...)
	}
	return &cp
}
