package services

import (
	"context"
	"testing"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/catalog"
	"github.com/ilyra-ai/ilyra-sub000/internal/testutil"
)

func hasModel(models []*catalog.Model, id string) bool {
	for _, m := range models {
		if m.ID == id {
			return true
		}
	}
	return false
}

func TestAvailableModelsIntersection(t *testing.T) {
	ctx := context.Background()
	stores := testutil.NewStores()
	svc := NewCatalogService(stores.Catalog, stores.Users, testutil.Logger())

	u, err := stores.SeedUser(ctx, "user@example.com", "free")
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	m, err := stores.SeedModel(ctx, "openai", "gpt-4o-mini", []string{"free", "pro"})
	if err != nil {
		t.Fatalf("seeding model: %v", err)
	}

	available, err := svc.AvailableModels(ctx, u.ID)
	if err != nil {
		t.Fatalf("baseline fetch: %v", err)
	}
	if !hasModel(available, m.ID) {
		t.Fatalf("model %s missing with all three gates open", m.ID)
	}

	// Each gate independently removes the model on the next fetch
	t.Run("provider disabled", func(t *testing.T) {
		if err := stores.Catalog.UpsertProviderSetting(ctx, &catalog.ProviderSetting{Provider: "openai", Enabled: false}); err != nil {
			t.Fatal(err)
		}
		available, err := svc.AvailableModels(ctx, u.ID)
		if err != nil {
			t.Fatal(err)
		}
		if hasModel(available, m.ID) {
			t.Error("model visible with provider disabled")
		}
		if err := stores.Catalog.UpsertProviderSetting(ctx, &catalog.ProviderSetting{Provider: "openai", Enabled: true}); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("catalog status disabled", func(t *testing.T) {
		disabled := *m
		disabled.Status = catalog.StatusDisabled
		if err := stores.Catalog.UpdateModel(ctx, &disabled); err != nil {
			t.Fatal(err)
		}
		available, err := svc.AvailableModels(ctx, u.ID)
		if err != nil {
			t.Fatal(err)
		}
		if hasModel(available, m.ID) {
			t.Error("model visible with catalog status disabled")
		}
		if err := stores.Catalog.UpdateModel(ctx, m); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("plan not selected", func(t *testing.T) {
		if err := stores.Catalog.ReplaceSelections(ctx, []*catalog.Selection{
			{ModelID: m.ID, Plans: []string{"pro"}},
		}); err != nil {
			t.Fatal(err)
		}
		available, err := svc.AvailableModels(ctx, u.ID)
		if err != nil {
			t.Fatal(err)
		}
		if hasModel(available, m.ID) {
			t.Error("model visible to a plan outside its selection")
		}
	})

	t.Run("no selection at all", func(t *testing.T) {
		if err := stores.Catalog.ReplaceSelections(ctx, nil); err != nil {
			t.Fatal(err)
		}
		available, err := svc.AvailableModels(ctx, u.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(available) != 0 {
			t.Errorf("got %d models with an empty selection, want 0", len(available))
		}
	})
}

func TestDeleteModelRemovesSelection(t *testing.T) {
	ctx := context.Background()
	stores := testutil.NewStores()
	svc := NewCatalogService(stores.Catalog, stores.Users, testutil.Logger())

	m, err := stores.SeedModel(ctx, "openai", "gpt-4o", []string{"pro"})
	if err != nil {
		t.Fatalf("seeding model: %v", err)
	}

	if err := svc.DeleteModel(ctx, m.ID); err != nil {
		t.Fatalf("deleting model: %v", err)
	}

	sels, err := stores.Catalog.ListSelections(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, sel := range sels {
		if sel.ModelID == m.ID {
			t.Fatal("selection survived model deletion")
		}
	}
}

func TestCreateModelDerivesID(t *testing.T) {
	ctx := context.Background()
	stores := testutil.NewStores()
	svc := NewCatalogService(stores.Catalog, stores.Users, testutil.Logger())

	m, err := svc.CreateModel(ctx, &catalog.Model{Name: "claude-3-5-sonnet", Provider: "anthropic", Plans: []string{"pro"}})
	if err != nil {
		t.Fatalf("creating model: %v", err)
	}
	if m.ID != "anthropic-claude-3-5-sonnet" {
		t.Fatalf("derived ID = %q", m.ID)
	}
	if m.Status != catalog.StatusEnabled {
		t.Fatalf("default status = %q, want enabled", m.Status)
	}
}
