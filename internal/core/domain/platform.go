package domain

import "time"

// PlatformConnection stores the OAuth credentials a user granted for an
// external sales platform (currently Basalam). One row per user per platform.
type PlatformConnection struct {
	ConnectionID string     `json:"connectionID"` // Primary Key (UUID)
	UserID       string     `json:"userID"`       // FK -> users
	Platform     string     `json:"platform"`     // e.g. "basalam"
	AccessToken  string     `json:"-"`
	RefreshToken string     `json:"-"`
	TokenExpiry  *time.Time `json:"tokenExpiry,omitempty"`
	AuditFields
}
