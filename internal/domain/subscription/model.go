package subscription

import "time"

// Subscription records a user's paid relationship to a plan. It is a
// parallel source of truth to User.Plan and the two are not reconciled
// automatically; the payment flow mirrors changes onto the user record but
// admin edits here do not.
type Subscription struct {
	ID        string     `json:"id"`
	UserID    int64      `json:"user_id"`
	PlanID    string     `json:"plan_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Subscription statuses
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// ValidStatus reports whether s is a known subscription status
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusCancelled, StatusExpired:
		return true
	}
	return false
}
