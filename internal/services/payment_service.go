package services

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/plan"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/subscription"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/logger"
)

// CheckoutProvider creates a hosted checkout for a plan purchase and
// returns the URL the user should be redirected to.
type CheckoutProvider interface {
	CreateCheckout(ctx context.Context, u *user.User, p *plan.Plan) (string, error)
}

// StripeCheckout creates Stripe hosted checkout sessions.
type StripeCheckout struct {
	successURL string
	cancelURL  string
}

// NewStripeCheckout configures the Stripe client key and redirect URLs
func NewStripeCheckout(apiKey, successURL, cancelURL string) *StripeCheckout {
	stripe.Key = apiKey
	return &StripeCheckout{successURL: successURL, cancelURL: cancelURL}
}

// CreateCheckout opens a monthly subscription checkout for the plan
func (c *StripeCheckout) CreateCheckout(ctx context.Context, u *user.User, p *plan.Plan) (string, error) {
	currency := p.Currency
	if currency == "" {
		currency = "brl"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(u.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(p.Name),
				},
				UnitAmount: stripe.Int64(int64(p.Price * 100)),
				Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String("month"),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", errors.ProviderAPIError("stripe", err)
	}
	return sess.URL, nil
}

// SimulatedCheckout skips the payment provider entirely and returns
// the success URL directly. Used when no Stripe key is configured.
type SimulatedCheckout struct {
	successURL string
}

// NewSimulatedCheckout creates the no-op checkout provider
func NewSimulatedCheckout(successURL string) *SimulatedCheckout {
	return &SimulatedCheckout{successURL: successURL}
}

// CreateCheckout returns the success URL without charging anyone
func (c *SimulatedCheckout) CreateCheckout(ctx context.Context, u *user.User, p *plan.Plan) (string, error) {
	return fmt.Sprintf("%s?plan=%s&simulated=1", c.successURL, p.ID), nil
}

// PaymentService drives plan purchases: checkout creation and the
// post-payment upgrade that mirrors the plan onto the user record.
type PaymentService struct {
	checkout CheckoutProvider
	users    user.Repository
	plans    plan.Repository
	subs     *SubscriptionService
	log      *logger.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	checkout CheckoutProvider,
	users user.Repository,
	plans plan.Repository,
	subs *SubscriptionService,
	log *logger.Logger,
) *PaymentService {
	return &PaymentService{checkout: checkout, users: users, plans: plans, subs: subs, log: log}
}

// Checkout starts a purchase of the plan for the user
func (s *PaymentService) Checkout(ctx context.Context, userID int64, planID string) (string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return "", err
	}
	if !p.Active {
		return "", errors.Conflict("Plan is not open for purchase")
	}

	url, err := s.checkout.CreateCheckout(ctx, u, p)
	if err != nil {
		return "", err
	}
	s.log.With("user_id", userID).With("plan_id", planID).Info("checkout created")
	return url, nil
}

// Confirm finalizes a purchase: records the subscription and mirrors
// the plan onto the user.
func (s *PaymentService) Confirm(ctx context.Context, userID int64, planID string) (*subscription.Subscription, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	sub, err := s.subs.Create(ctx, &subscription.Subscription{
		UserID: u.ID,
		PlanID: p.ID,
		Status: subscription.StatusActive,
	})
	if err != nil {
		return nil, err
	}

	u.Plan = p.ID
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	s.log.With("user_id", userID).With("plan_id", planID).Info("plan purchase confirmed")
	return sub, nil
}

// CancelSubscription cancels one of the caller's own subscriptions.
// When the cancelled subscription backs the user's current plan, the
// user drops to the free tier.
func (s *PaymentService) CancelSubscription(ctx context.Context, userID int64, subscriptionID string) (*subscription.Subscription, error) {
	sub, err := s.subs.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != userID {
		return nil, errors.Forbidden("Subscription belongs to another user")
	}
	if sub.Status != subscription.StatusActive {
		return nil, errors.Conflict("Subscription is not active")
	}

	sub, err = s.subs.UpdateStatus(ctx, sub.ID, subscription.StatusCancelled)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Plan == sub.PlanID {
		u.Plan = user.PlanFree
		if err := s.users.Update(ctx, u); err != nil {
			return nil, err
		}
	}
	s.log.With("user_id", userID).With("subscription_id", sub.ID).Info("subscription cancelled")
	return sub, nil
}
