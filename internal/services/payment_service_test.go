package services

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/subscription"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/testutil"
)

func newPaymentFixture(t *testing.T) (*PaymentService, *testutil.Stores) {
	t.Helper()
	log := testutil.Logger()
	stores := testutil.NewStores()
	subSvc := NewSubscriptionService(stores.Subs, stores.Plans, log)
	checkout := NewSimulatedCheckout("http://localhost/success")
	return NewPaymentService(checkout, stores.Users, stores.Plans, subSvc, log), stores
}

func TestConfirmMirrorsPlanOntoUser(t *testing.T) {
	ctx := context.Background()
	svc, stores := newPaymentFixture(t)

	if _, err := stores.SeedPlan(ctx, "free", testutil.IntPtr(10)); err != nil {
		t.Fatalf("seeding free plan: %v", err)
	}
	if _, err := stores.SeedPlan(ctx, "pro", nil); err != nil {
		t.Fatalf("seeding pro plan: %v", err)
	}
	u, err := stores.SeedUser(ctx, "buyer@example.com", "free")
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	url, err := svc.Checkout(ctx, u.ID, "pro")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !strings.Contains(url, "plan=pro") {
		t.Fatalf("checkout URL %q does not carry the plan", url)
	}

	sub, err := svc.Confirm(ctx, u.ID, "pro")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if sub.Status != subscription.StatusActive {
		t.Fatalf("subscription status = %q, want active", sub.Status)
	}

	u, err = stores.Users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("reloading user: %v", err)
	}
	if u.Plan != "pro" {
		t.Fatalf("user plan after confirm = %q, want pro", u.Plan)
	}
}

func TestCancelSubscriptionDowngradesUser(t *testing.T) {
	ctx := context.Background()
	svc, stores := newPaymentFixture(t)

	if _, err := stores.SeedPlan(ctx, user.PlanFree, testutil.IntPtr(10)); err != nil {
		t.Fatalf("seeding free plan: %v", err)
	}
	if _, err := stores.SeedPlan(ctx, "pro", nil); err != nil {
		t.Fatalf("seeding pro plan: %v", err)
	}
	u, err := stores.SeedUser(ctx, "buyer@example.com", user.PlanFree)
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	sub, err := svc.Confirm(ctx, u.ID, "pro")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	cancelled, err := svc.CancelSubscription(ctx, u.ID, sub.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != subscription.StatusCancelled {
		t.Fatalf("status = %q, want cancelled", cancelled.Status)
	}
	if cancelled.EndDate == nil {
		t.Fatal("cancelled subscription has no end date")
	}

	u, err = stores.Users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("reloading user: %v", err)
	}
	if u.Plan != user.PlanFree {
		t.Fatalf("user plan after cancel = %q, want free", u.Plan)
	}

	// A second cancel is refused
	_, err = svc.CancelSubscription(ctx, u.ID, sub.ID)
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeConflict {
		t.Fatalf("double cancel error = %v, want code %s", err, errors.ErrCodeConflict)
	}
}

func TestCancelSubscriptionRejectsForeignOwner(t *testing.T) {
	ctx := context.Background()
	svc, stores := newPaymentFixture(t)

	if _, err := stores.SeedPlan(ctx, user.PlanFree, testutil.IntPtr(10)); err != nil {
		t.Fatalf("seeding free plan: %v", err)
	}
	if _, err := stores.SeedPlan(ctx, "pro", nil); err != nil {
		t.Fatalf("seeding pro plan: %v", err)
	}
	owner, err := stores.SeedUser(ctx, "owner@example.com", user.PlanFree)
	if err != nil {
		t.Fatalf("seeding owner: %v", err)
	}
	intruder, err := stores.SeedUser(ctx, "intruder@example.com", user.PlanFree)
	if err != nil {
		t.Fatalf("seeding intruder: %v", err)
	}
	sub, err := svc.Confirm(ctx, owner.ID, "pro")
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	_, err = svc.CancelSubscription(ctx, intruder.ID, sub.ID)
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeForbidden {
		t.Fatalf("cross-user cancel error = %v, want code %s", err, errors.ErrCodeForbidden)
	}
}
