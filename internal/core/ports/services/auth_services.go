package services

import (
	"context"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade issues and validates the tokens behind panel sessions.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a JWT access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a raw refresh token and its expiry. Only the
	// hash of the raw token is ever persisted.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks a raw refresh token against the user's stored
	// hash and expiry, returning the user when valid.
	ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// BasalamOAuthSvcFacade runs the OAuth handshake with the Basalam marketplace
// and stores the granted credentials.
type BasalamOAuthSvcFacade interface {
	// GenerateStateString creates a CSRF state token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)

	// AuthCodeURL returns the Basalam consent page URL for the given state.
	AuthCodeURL(ctx context.Context, state string) string

	// ExchangeCode swaps an authorization code for a token and persists the
	// connection for the user.
	ExchangeCode(ctx context.Context, userID string, code string) (*oauth2.Token, error)

	// Connection retrieves the user's stored Basalam connection, if any.
	Connection(ctx context.Context, userID string) (*domain.PlatformConnection, error)
}
