package user

import "time"

// User represents an account on the platform
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Plan         string    `json:"plan"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Plan tiers. "administrador" mirrors the admin pseudo-plan used by the
// back-office: admins bypass message quotas entirely.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
	PlanAdmin      = "administrador"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "administrador"
)

// Account statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBanned   = "banned"
)

// ValidRole reports whether r is a known role
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// ValidPlan reports whether p is a known plan tier
func ValidPlan(p string) bool {
	switch p {
	case PlanFree, PlanPro, PlanEnterprise, PlanAdmin:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known account status
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusBanned:
		return true
	}
	return false
}

// IsAdmin reports whether the user holds the back-office role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
