package memory

import (
	"context"
	"testing"

	"github.com/ilyra-ai/ilyra-sub000/internal/auth"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/catalog"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
)

func TestSeedPopulatesDefaults(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository()
	plans := NewPlanRepository()
	cat := NewCatalogRepository()

	if err := Seed(ctx, SeedStores{Users: users, Plans: plans, Catalog: cat}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Plan tiers
	for _, id := range []string{"free", "pro", "enterprise"} {
		if _, err := plans.GetByID(ctx, id); err != nil {
			t.Errorf("plan %s not seeded: %v", id, err)
		}
	}
	free, err := plans.GetByID(ctx, "free")
	if err != nil {
		t.Fatal(err)
	}
	if free.MessageLimit == nil || *free.MessageLimit != 10 {
		t.Errorf("free message limit = %v, want 10", free.MessageLimit)
	}
	pro, err := plans.GetByID(ctx, "pro")
	if err != nil {
		t.Fatal(err)
	}
	if !pro.Unlimited() {
		t.Error("pro plan should be unlimited")
	}

	// Provider settings and models
	openai, err := cat.GetProviderSetting(ctx, catalog.ProviderOpenAI)
	if err != nil {
		t.Fatalf("openai provider not seeded: %v", err)
	}
	if !openai.Enabled {
		t.Error("openai provider should be enabled by default")
	}
	models, err := cat.ListModels(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) == 0 {
		t.Fatal("no catalog models seeded")
	}
	// The built-in fallback model must resolve against the seed
	if _, err := cat.GetModel(ctx, "simulated-echo"); err != nil {
		t.Errorf("default model simulated-echo not seeded: %v", err)
	}

	// Every selection points at a seeded model
	sels, err := cat.ListSelections(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sels) == 0 {
		t.Fatal("no selections seeded")
	}
	for _, sel := range sels {
		if _, err := cat.GetModel(ctx, sel.ModelID); err != nil {
			t.Errorf("selection references unknown model %s", sel.ModelID)
		}
	}

	// Bootstrap admin
	admin, err := users.GetByEmail(ctx, "admin@ilyra.ai")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != user.RoleAdmin || admin.Plan != user.PlanAdmin {
		t.Errorf("admin role=%q plan=%q", admin.Role, admin.Plan)
	}
	if err := auth.CheckPassword(admin.PasswordHash, "admin123"); err != nil {
		t.Error("admin password hash does not verify")
	}
}

func TestSeedFailsOnNonEmptyStores(t *testing.T) {
	ctx := context.Background()
	stores := SeedStores{
		Users:   NewUserRepository(),
		Plans:   NewPlanRepository(),
		Catalog: NewCatalogRepository(),
	}
	if err := Seed(ctx, stores); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(ctx, stores); err == nil {
		t.Fatal("second seed on populated stores succeeded, want conflict")
	}
}
