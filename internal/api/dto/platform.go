package dto

// BrandingRequest customizes the platform identity
type BrandingRequest struct {
	PlatformName   string `json:"platform_name" validate:"required,min=1,max=60"`
	LogoURL        string `json:"logo_url" validate:"omitempty,url"`
	PrimaryColor   string `json:"primary_color" validate:"required,hexcolor"`
	SecondaryColor string `json:"secondary_color" validate:"required,hexcolor"`
	AccentColor    string `json:"accent_color" validate:"required,hexcolor"`
}

// UpdateSettingsRequest replaces the platform settings
type UpdateSettingsRequest struct {
	Branding          BrandingRequest     `json:"branding" validate:"required"`
	AllowRegistration bool                `json:"allow_registration"`
	AllowOAuth        bool                `json:"allow_oauth"`
	SidebarVisibility map[string][]string `json:"sidebar_visibility" validate:"required"`
}
