package services

import (
	"context"
	"testing"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/preference"
	"github.com/ilyra-ai/ilyra-sub000/internal/testutil"
)

func TestPreferencesLazyDefaults(t *testing.T) {
	ctx := context.Background()
	stores := testutil.NewStores()
	svc := NewPreferenceService(stores.Prefs, testutil.Logger())

	// First read materializes the defaults
	prefs, err := svc.Get(ctx, 42)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	if prefs.Theme != preference.DefaultTheme || prefs.FontSize != preference.DefaultFontSize {
		t.Errorf("defaults = %+v", prefs)
	}
	if !prefs.EnableHistory {
		t.Error("history should default to enabled")
	}

	stored, err := stores.Prefs.Get(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil {
		t.Fatal("defaults were not persisted on first read")
	}

	// Updates survive the next read
	prefs.Theme = "dark"
	if _, err := svc.Update(ctx, prefs); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, err := svc.Get(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if again.Theme != "dark" {
		t.Errorf("theme after update = %q, want dark", again.Theme)
	}
}
