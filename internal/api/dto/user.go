package dto

// UpdateProfileRequest is the payload for profile edits
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// UpdateRoleRequest is the admin payload for role changes
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user administrador"`
}

// UpdatePlanRequest is the admin payload for plan changes
type UpdatePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=free pro enterprise administrador"`
}

// UpdateStatusRequest is the admin payload for status changes
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive banned"`
}

// PreferencesRequest is the payload for preference updates
type PreferencesRequest struct {
	Theme         string `json:"theme" validate:"required,oneof=light dark system"`
	FontSize      string `json:"font_size" validate:"required,oneof=small medium large"`
	ResponseStyle string `json:"response_style" validate:"required,oneof=concise balanced detailed"`
	EnableHistory bool   `json:"enable_history"`
}
