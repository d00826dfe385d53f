package catalog

import "time"

// Model is a catalog entry for an AI model offered by an LLM provider.
// Plans lists the tiers granted access at the catalog level; actual chat
// exposure additionally requires a Selection entry.
type Model struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	Plans     []string  `json:"plans"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Model catalog statuses
const (
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
)

// ProviderSetting is the admin-managed configuration for one LLM vendor
type ProviderSetting struct {
	Provider  string    `json:"provider"`
	Enabled   bool      `json:"enabled"`
	APIKey    string    `json:"-"`
	BaseURL   string    `json:"base_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Known providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
	ProviderSimulated = "simulated"
)

// Selection marks a catalog model as exposed to end-user chat, with its own
// plan-access list. A model is visible to a user only when its provider is
// enabled, its catalog status is enabled, and the user's plan appears here.
type Selection struct {
	ModelID   string    `json:"model_id"`
	Plans     []string  `json:"plans"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ModelID builds a catalog model ID from provider and model name
func ModelID(provider, name string) string {
	return provider + "-" + name
}

// HasPlan reports whether the given plan appears in plans
func HasPlan(plans []string, p string) bool {
	for _, x := range plans {
		if x == p {
			return true
		}
	}
	return false
}
