package platform

import "time"

// Settings is the singleton platform configuration: branding, auth toggles
// and sidebar visibility. Served publicly (minus nothing sensitive) as the
// first step of client bootstrap.
type Settings struct {
	Branding          Branding            `json:"branding"`
	AllowRegistration bool                `json:"allow_registration"`
	AllowOAuth        bool                `json:"allow_oauth"`
	SidebarVisibility map[string][]string `json:"sidebar_visibility"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// Branding holds customizable identity and colors
type Branding struct {
	PlatformName   string `json:"platform_name"`
	LogoURL        string `json:"logo_url,omitempty"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
}

// Default returns the out-of-the-box platform settings
func Default() *Settings {
	return &Settings{
		Branding: Branding{
			PlatformName:   "Ilyra",
			PrimaryColor:   "#7c3aed",
			SecondaryColor: "#1e1b2e",
			AccentColor:    "#22d3ee",
		},
		AllowRegistration: true,
		AllowOAuth:        true,
		SidebarVisibility: map[string][]string{
			"chat":          {"free", "pro", "enterprise", "administrador"},
			"history":       {"free", "pro", "enterprise", "administrador"},
			"plans":         {"free", "pro"},
			"admin-panel":   {"administrador"},
			"api-access":    {"enterprise", "administrador"},
			"customization": {"pro", "enterprise", "administrador"},
		},
		UpdatedAt: time.Now(),
	}
}
