package plan

import "time"

// Plan is a subscription tier in the catalog. MessageLimit and
// RateLimitPerMinute are nil for unlimited.
type Plan struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	Currency           string    `json:"currency"`
	Features           []string  `json:"features"`
	MessageLimit       *int      `json:"message_limit"`
	RateLimitPerMinute *int      `json:"rate_limit_per_minute"`
	Active             bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Unlimited reports whether the plan has no message quota
func (p *Plan) Unlimited() bool {
	return p.MessageLimit == nil
}
