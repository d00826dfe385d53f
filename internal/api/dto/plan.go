package dto

// PlanRequest is the admin payload for plan creation and updates
type PlanRequest struct {
	ID                 string   `json:"id" validate:"required,min=2,max=40"`
	Name               string   `json:"name" validate:"required,min=2,max=100"`
	Description        string   `json:"description" validate:"max=500"`
	Price              float64  `json:"price" validate:"gte=0"`
	Currency           string   `json:"currency" validate:"omitempty,len=3"`
	Features           []string `json:"features"`
	MessageLimit       *int     `json:"message_limit" validate:"omitempty,gte=0"`
	RateLimitPerMinute *int     `json:"rate_limit_per_minute" validate:"omitempty,gte=1"`
	Active             bool     `json:"is_active"`
}
