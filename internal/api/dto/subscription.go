package dto

// CreateSubscriptionRequest is the admin payload for manual subscription entry
type CreateSubscriptionRequest struct {
	UserID int64  `json:"user_id" validate:"required,gte=1"`
	PlanID string `json:"plan_id" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=active cancelled expired"`
}

// UpdateSubscriptionStatusRequest changes a subscription's lifecycle state
type UpdateSubscriptionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active cancelled expired"`
}

// CheckoutRequest starts a plan purchase
type CheckoutRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// CheckoutResponse carries the hosted checkout URL
type CheckoutResponse struct {
	URL string `json:"url"`
}

// ConfirmPaymentRequest finalizes a plan purchase
type ConfirmPaymentRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// ManageSubscriptionRequest mutates one of the caller's own
// subscriptions. Cancel is the only supported action.
type ManageSubscriptionRequest struct {
	SubscriptionID string `json:"subscription_id" validate:"required"`
	Action         string `json:"action" validate:"required,oneof=cancel"`
}
