package services

import (
	"context"
	stderrors "errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/testutil"
)

func newUserService(t *testing.T) (*UserService, *testutil.Stores) {
	t.Helper()
	stores := testutil.NewStores()
	return NewUserService(stores.Users, bcrypt.MinCost, testutil.Logger()), stores
}

func TestRegisterUsesConfiguredBcryptCost(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	u, err := svc.Register(ctx, "cost@example.com", "Cost", "s3cret-pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(u.PasswordHash))
	if err != nil {
		t.Fatalf("reading hash cost: %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Fatalf("hash cost = %d, want configured %d", cost, bcrypt.MinCost)
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	u, err := svc.Register(ctx, "Maria@Example.COM", "Maria", "s3cret-pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "maria@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.Plan != user.PlanFree || u.Role != user.RoleUser || u.Status != user.StatusActive {
		t.Errorf("defaults wrong: plan=%q role=%q status=%q", u.Plan, u.Role, u.Status)
	}
	if u.PasswordHash == "s3cret-pass" || u.PasswordHash == "" {
		t.Error("password stored unhashed")
	}

	got, err := svc.Authenticate(ctx, "maria@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("authenticated wrong user: %d != %d", got.ID, u.ID)
	}

	if _, err := svc.Authenticate(ctx, "maria@example.com", "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
	if _, err := svc.Authenticate(ctx, "ghost@example.com", "s3cret-pass"); err == nil {
		t.Error("unknown account accepted")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	if _, err := svc.Register(ctx, "dup@example.com", "First", "password-1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, "DUP@example.com", "Second", "password-2")
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeConflict {
		t.Fatalf("duplicate register error = %v, want code %s", err, errors.ErrCodeConflict)
	}
}

func TestAuthenticateBlockedStatuses(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	u, err := svc.Register(ctx, "blocked@example.com", "Blocked", "password-1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, status := range []string{user.StatusBanned, user.StatusInactive} {
		if _, err := svc.UpdateStatus(ctx, u.ID, status); err != nil {
			t.Fatalf("setting status %s: %v", status, err)
		}
		_, err := svc.Authenticate(ctx, "blocked@example.com", "password-1")
		var appErr *errors.AppError
		if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeForbidden {
			t.Errorf("status %s: error = %v, want code %s", status, err, errors.ErrCodeForbidden)
		}
	}
}

func TestAdminMutationsRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t)

	u, err := svc.Register(ctx, "mut@example.com", "Mut", "password-1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Changes are visible on the next read, matching the admin page's
	// mutate-then-refetch flow.
	if _, err := svc.UpdatePlan(ctx, u.ID, user.PlanPro); err != nil {
		t.Fatalf("update plan: %v", err)
	}
	if _, err := svc.UpdateRole(ctx, u.ID, user.RoleAdmin); err != nil {
		t.Fatalf("update role: %v", err)
	}

	got, err := svc.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if got.Plan != user.PlanPro || got.Role != user.RoleAdmin {
		t.Errorf("refetch sees plan=%q role=%q", got.Plan, got.Role)
	}

	if _, err := svc.UpdatePlan(ctx, u.ID, "platinum"); err == nil {
		t.Error("unknown plan accepted")
	}
	if _, err := svc.UpdateRole(ctx, u.ID, "root"); err == nil {
		t.Error("unknown role accepted")
	}
	if _, err := svc.UpdateStatus(ctx, u.ID, "paused"); err == nil {
		t.Error("unknown status accepted")
	}
}
