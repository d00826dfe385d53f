package dto

// ModelRequest is the admin payload for catalog model creation and updates
type ModelRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	Provider string   `json:"provider" validate:"required,min=2,max=40"`
	Status   string   `json:"status" validate:"required,oneof=enabled disabled"`
	Plans    []string `json:"plans" validate:"required,min=1,dive,oneof=free pro enterprise administrador"`
}

// ProviderSettingRequest is the admin payload for provider configuration
type ProviderSettingRequest struct {
	Enabled bool   `json:"enabled"`
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url" validate:"omitempty,url"`
}

// SelectionEntry is one chat-exposure entry in a selection replace
type SelectionEntry struct {
	ModelID string   `json:"model_id" validate:"required"`
	Plans   []string `json:"plans" validate:"required,min=1,dive,oneof=free pro enterprise administrador"`
}

// ReplaceSelectionsRequest swaps the full chat-exposure selection
type ReplaceSelectionsRequest struct {
	Selections []SelectionEntry `json:"selections" validate:"required,dive"`
}
