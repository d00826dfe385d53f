// Package quota tracks per-user message consumption against plan limits.
package quota

import (
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/ilyra-ai/ilyra-sub000/internal/config"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
)

// Tracker counts messages sent per user within the current quota
// window. Limits themselves live on the plan; the tracker only owns
// the counters.
type Tracker struct {
	mu     sync.Mutex
	counts map[int64]int
}

// NewTracker creates an empty quota tracker
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[int64]int)}
}

// Used returns the number of messages a user has consumed in the
// current window.
func (t *Tracker) Used(userID int64) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[userID]
}

// TryConsume increments the user's counter when it is below limit and
// reports whether the increment happened. A nil limit means unlimited
// and always consumes.
func (t *Tracker) TryConsume(userID int64, limit *int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	used := t.counts[userID]
	if limit != nil && used >= *limit {
		return false
	}
	t.counts[userID] = used + 1
	return true
}

// Rollback undoes one consumed message, used when a send fails after
// the quota was already charged.
func (t *Tracker) Rollback(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.counts[userID] > 0 {
		t.counts[userID]--
	}
}

// ResetUser clears a single user's counter
func (t *Tracker) ResetUser(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.counts, userID)
}

// ResetAll clears every counter, starting a new quota window
func (t *Tracker) ResetAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts = make(map[int64]int)
}

// Scheduler resets the tracker on the cadence configured by
// QUOTA_RESET_POLICY.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger
}

// NewScheduler builds a reset scheduler for the tracker. With policy
// "never" the scheduler is inert and Start is a no-op.
func NewScheduler(t *Tracker, policy string, log *logger.Logger) (*Scheduler, error) {
	s := &Scheduler{log: log}
	if policy == config.QuotaResetNever {
		return s, nil
	}

	spec := "0 0 * * *"
	if policy == config.QuotaResetMonthly {
		spec = "0 0 1 * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		t.ResetAll()
		log.With("policy", policy).Info("quota counters reset")
	}); err != nil {
		return nil, err
	}
	s.cron = c
	return s, nil
}

// Start begins the reset schedule
func (s *Scheduler) Start() {
	if s.cron != nil {
		s.cron.Start()
	}
}

// Stop halts the reset schedule
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
