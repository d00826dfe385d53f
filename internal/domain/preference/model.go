package preference

import "time"

// Preferences holds per-user UI and chat preferences. One record per user,
// created lazily with defaults on first read.
type Preferences struct {
	UserID        int64     `json:"user_id"`
	Theme         string    `json:"theme"`
	FontSize      string    `json:"font_size"`
	ResponseStyle string    `json:"response_style"`
	EnableHistory bool      `json:"enable_history"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Defaults applied on lazy creation
const (
	DefaultTheme         = "system"
	DefaultFontSize      = "medium"
	DefaultResponseStyle = "balanced"
)

// Default returns the default preferences for a user
func Default(userID int64) *Preferences {
	return &Preferences{
		UserID:        userID,
		Theme:         DefaultTheme,
		FontSize:      DefaultFontSize,
		ResponseStyle: DefaultResponseStyle,
		EnableHistory: true,
		UpdatedAt:     time.Now(),
	}
}
