package memory

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ilyra-ai/ilyra-sub000/internal/auth"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/catalog"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/plan"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Plans []struct {
		ID                 string   `yaml:"id"`
		Name               string   `yaml:"name"`
		Description        string   `yaml:"description"`
		Price              float64  `yaml:"price"`
		Currency           string   `yaml:"currency"`
		Features           []string `yaml:"features"`
		MessageLimit       *int     `yaml:"message_limit"`
		RateLimitPerMinute *int     `yaml:"rate_limit_per_minute"`
		Active             bool     `yaml:"active"`
	} `yaml:"plans"`
	Providers []struct {
		Provider string `yaml:"provider"`
		Enabled  bool   `yaml:"enabled"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"providers"`
	Models []struct {
		Name     string   `yaml:"name"`
		Provider string   `yaml:"provider"`
		Status   string   `yaml:"status"`
		Plans    []string `yaml:"plans"`
	} `yaml:"models"`
	Selections []struct {
		ModelID string   `yaml:"model_id"`
		Plans   []string `yaml:"plans"`
	} `yaml:"selections"`
	Admin struct {
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
}

// SeedStores groups the repositories Seed populates.
type SeedStores struct {
	Users   *UserRepository
	Plans   *PlanRepository
	Catalog *CatalogRepository
}

// Seed loads the embedded default catalog into fresh repositories: the
// plan tiers, the model catalog with provider settings and plan
// selections, and the bootstrap admin account. Intended to run once at
// startup on empty stores.
func Seed(ctx context.Context, stores SeedStores) error {
	var sf seedFile
	if err := yaml.Unmarshal(seedYAML, &sf); err != nil {
		return fmt.Errorf("parsing seed data: %w", err)
	}

	for _, p := range sf.Plans {
		if err := stores.Plans.Create(ctx, &plan.Plan{
			ID:                 p.ID,
			Name:               p.Name,
			Description:        p.Description,
			Price:              p.Price,
			Currency:           p.Currency,
			Features:           p.Features,
			MessageLimit:       p.MessageLimit,
			RateLimitPerMinute: p.RateLimitPerMinute,
			Active:             p.Active,
		}); err != nil {
			return fmt.Errorf("seeding plan %s: %w", p.ID, err)
		}
	}

	for _, ps := range sf.Providers {
		if err := stores.Catalog.UpsertProviderSetting(ctx, &catalog.ProviderSetting{
			Provider: ps.Provider,
			Enabled:  ps.Enabled,
			BaseURL:  ps.BaseURL,
		}); err != nil {
			return fmt.Errorf("seeding provider %s: %w", ps.Provider, err)
		}
	}

	for _, m := range sf.Models {
		if err := stores.Catalog.CreateModel(ctx, &catalog.Model{
			ID:       catalog.ModelID(m.Provider, m.Name),
			Name:     m.Name,
			Provider: m.Provider,
			Status:   m.Status,
			Plans:    m.Plans,
		}); err != nil {
			return fmt.Errorf("seeding model %s: %w", m.Name, err)
		}
	}

	sels := make([]*catalog.Selection, 0, len(sf.Selections))
	for _, sel := range sf.Selections {
		sels = append(sels, &catalog.Selection{ModelID: sel.ModelID, Plans: sel.Plans})
	}
	if err := stores.Catalog.ReplaceSelections(ctx, sels); err != nil {
		return fmt.Errorf("seeding selections: %w", err)
	}

	if sf.Admin.Email != "" {
		hash, err := auth.HashPassword(sf.Admin.Password, 0)
		if err != nil {
			return fmt.Errorf("hashing admin password: %w", err)
		}
		if err := stores.Users.Create(ctx, &user.User{
			Email:        sf.Admin.Email,
			Name:         sf.Admin.Name,
			PasswordHash: hash,
			Role:         user.RoleAdmin,
			Plan:         user.PlanAdmin,
			Status:       user.StatusActive,
		}); err != nil {
			return fmt.Errorf("seeding admin user: %w", err)
		}
	}

	return nil
}
