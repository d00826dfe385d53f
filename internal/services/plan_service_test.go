package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/subscription"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/testutil"
)

func TestDeletePlanBlockedByActiveSubscriptions(t *testing.T) {
	ctx := context.Background()
	stores := testutil.NewStores()
	svc := NewPlanService(stores.Plans, stores.Subs, testutil.Logger())

	if _, err := stores.SeedPlan(ctx, "pro", nil); err != nil {
		t.Fatalf("seeding plan: %v", err)
	}
	u, err := stores.SeedUser(ctx, "sub@example.com", "pro")
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	sub := &subscription.Subscription{UserID: u.ID, PlanID: "pro", Status: subscription.StatusActive}
	if err := stores.Subs.Create(ctx, sub); err != nil {
		t.Fatalf("creating subscription: %v", err)
	}

	err = svc.Delete(ctx, "pro")
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeConflict {
		t.Fatalf("delete with active subscription: error = %v, want code %s", err, errors.ErrCodeConflict)
	}

	// After the subscription is cancelled the plan can go
	sub.Status = subscription.StatusCancelled
	if err := stores.Subs.Update(ctx, sub); err != nil {
		t.Fatalf("cancelling subscription: %v", err)
	}
	if err := svc.Delete(ctx, "pro"); err != nil {
		t.Fatalf("delete after cancellation: %v", err)
	}
	if _, err := stores.Plans.GetByID(ctx, "pro"); err == nil {
		t.Fatal("plan still present after delete")
	}
}

func TestListActiveFiltersInactivePlans(t *testing.T) {
	ctx := context.Background()
	stores := testutil.NewStores()
	svc := NewPlanService(stores.Plans, stores.Subs, testutil.Logger())

	if _, err := stores.SeedPlan(ctx, "free", testutil.IntPtr(10)); err != nil {
		t.Fatal(err)
	}
	legacy, err := stores.SeedPlan(ctx, "legacy", nil)
	if err != nil {
		t.Fatal(err)
	}
	legacy.Active = false
	if err := stores.Plans.Update(ctx, legacy); err != nil {
		t.Fatal(err)
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("listing active plans: %v", err)
	}
	if len(active) != 1 || active[0].ID != "free" {
		t.Fatalf("active plans = %v, want only free", active)
	}
}
