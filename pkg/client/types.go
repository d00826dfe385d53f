package client

import "time"

// User is an account on the platform
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Plan      string    `json:"plan"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult carries session tokens and the authenticated user
type AuthResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// Preferences holds per-user UI and chat preferences
type Preferences struct {
	UserID        int64     `json:"user_id"`
	Theme         string    `json:"theme"`
	FontSize      string    `json:"font_size"`
	ResponseStyle string    `json:"response_style"`
	EnableHistory bool      `json:"enable_history"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Plan is a subscription tier
type Plan struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	Currency           string    `json:"currency"`
	Features           []string  `json:"features"`
	MessageLimit       *int      `json:"message_limit"`
	RateLimitPerMinute *int      `json:"rate_limit_per_minute"`
	Active             bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Model is a catalog entry for an AI model
type Model struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	Plans     []string  `json:"plans"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProviderSetting is the configuration of one LLM vendor
type ProviderSetting struct {
	Provider  string    `json:"provider"`
	Enabled   bool      `json:"enabled"`
	BaseURL   string    `json:"base_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Selection maps a catalog model to the plans that may chat with it
type Selection struct {
	ModelID   string    `json:"model_id"`
	Plans     []string  `json:"plans"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Conversation is a message thread
type Conversation struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one utterance within a conversation
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
}

// SendResult is the outcome of one chat send
type SendResult struct {
	Conversation *Conversation `json:"conversation"`
	UserMessage  *Message      `json:"user_message"`
	Reply        *Message      `json:"reply"`
	Used         int           `json:"messages_used"`
	Limit        *int          `json:"message_limit"`
}

// Subscription records a user's relationship to a plan
type Subscription struct {
	ID        string     `json:"id"`
	UserID    int64      `json:"user_id"`
	PlanID    string     `json:"plan_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Settings is the platform configuration
type Settings struct {
	Branding          Branding            `json:"branding"`
	AllowRegistration bool                `json:"allow_registration"`
	AllowOAuth        bool                `json:"allow_oauth"`
	SidebarVisibility map[string][]string `json:"sidebar_visibility"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// Branding holds platform identity and colors
type Branding struct {
	PlatformName   string `json:"platform_name"`
	LogoURL        string `json:"logo_url,omitempty"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color"`
}

// Paginated wraps a page of results
type Paginated[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}
