package client

import "context"

// BillingClient groups the plan purchase endpoints
type BillingClient struct {
	c *Client
}

// Plans returns the plans open for sign-up (public endpoint)
func (b *BillingClient) Plans(ctx context.Context) ([]Plan, error) {
	var out []Plan
	if err := b.c.doRequest(ctx, "GET", "/plans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Checkout starts a purchase and returns the hosted checkout URL
func (b *BillingClient) Checkout(ctx context.Context, planID string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := b.c.doRequest(ctx, "POST", "/billing/checkout", map[string]string{"plan_id": planID}, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// Confirm finalizes a purchase and upgrades the caller's plan
func (b *BillingClient) Confirm(ctx context.Context, planID string) (*Subscription, error) {
	var out Subscription
	if err := b.c.doRequest(ctx, "POST", "/billing/confirm", map[string]string{"plan_id": planID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel cancels one of the caller's subscriptions. Cancelling the
// subscription behind the current plan drops the account to free.
func (b *BillingClient) Cancel(ctx context.Context, subscriptionID string) (*Subscription, error) {
	var out Subscription
	err := b.c.doRequest(ctx, "POST", "/billing/manage", map[string]string{
		"subscription_id": subscriptionID,
		"action":          "cancel",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Subscriptions returns the caller's subscription history
func (b *BillingClient) Subscriptions(ctx context.Context) ([]Subscription, error) {
	var out []Subscription
	if err := b.c.doRequest(ctx, "GET", "/billing/subscriptions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
