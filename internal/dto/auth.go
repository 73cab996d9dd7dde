package dto

import "time"

// RegisterRequest defines the payload for creating a new panel user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=255"`
}

// LoginRequest defines the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token. The refresh token travels in
// an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// BasalamAuthURLResponse carries the URL the panel redirects the operator to
// for the Basalam OAuth consent screen.
type BasalamAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// BasalamCallbackResponse reports the outcome of the OAuth code exchange.
type BasalamCallbackResponse struct {
	Platform    string     `json:"platform"`
	Connected   bool       `json:"connected"`
	TokenExpiry *time.Time `json:"tokenExpiry,omitempty"`
}
