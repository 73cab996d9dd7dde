package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/utils"
	"github.com/bazaryar/bazaryar_backend/pkg/config"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// tokenService implements the TokenSvcFacade for handling JWT and refresh
// tokens. It needs the application configuration for secrets and expiry times
// and the user service for refresh token validation.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new raw refresh token for the given user.
// Only the SHA256 hash of it is ever persisted.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	// 32 bytes gives a 64-character hex string.
	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate secure random string for refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	return rawRefreshToken, expiryTime, nil
}

// ValidateRefreshToken validates a raw refresh token against the user's stored
// hash and expiry, returning the user when valid.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// PlatformBasalam is the platform key stored on Basalam OAuth connections.
const PlatformBasalam = "basalam"

// basalamOAuthService implements the BasalamOAuthSvcFacade. Basalam is not a
// registered oauth2 provider, so the endpoint comes from configuration.
type basalamOAuthService struct {
	BaseService
	cfg            *config.Config
	oauth2Config   *oauth2.Config
	connectionRepo portsrepo.PlatformConnectionRepositoryFacade
}

// NewBasalamOAuthService creates a new instance of basalamOAuthService.
func NewBasalamOAuthService(cfg *config.Config, connectionRepo portsrepo.PlatformConnectionRepositoryFacade) portssvc.BasalamOAuthSvcFacade {
	return &basalamOAuthService{
		cfg:            cfg,
		connectionRepo: connectionRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.BasalamClientID,
			ClientSecret: cfg.BasalamClientSecret,
			RedirectURL:  cfg.BasalamRedirectURL,
			Scopes:       []string{"vendor.product.read", "vendor.product.write"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.BasalamAuthURL,
				TokenURL: cfg.BasalamTokenURL,
			},
		},
	}
}

var _ portssvc.BasalamOAuthSvcFacade = (*basalamOAuthService)(nil)

// GenerateStateString creates a secure random string used as the CSRF token
// for the OAuth flow. 16 bytes -> 32 char hex string.
func (s *basalamOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// AuthCodeURL returns the Basalam consent page URL for the given state.
func (s *basalamOAuthService) AuthCodeURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCode swaps an authorization code for a token and persists the
// connection for the user.
func (s *basalamOAuthService) ExchangeCode(ctx context.Context, userID string, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	now := time.Now()
	conn := domain.PlatformConnection{
		ConnectionID: uuid.NewString(),
		UserID:       userID,
		Platform:     PlatformBasalam,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		conn.TokenExpiry = &expiry
	}

	if err := s.connectionRepo.UpsertConnection(ctx, conn); err != nil {
		s.LogError(ctx, err, "Failed to persist Basalam connection")
		return nil, fmt.Errorf("failed to persist basalam connection: %w", err)
	}

	s.LogInfo(ctx, "Basalam connection established")
	return token, nil
}

// Connection retrieves the user's stored Basalam connection, if any.
func (s *basalamOAuthService) Connection(ctx context.Context, userID string) (*domain.PlatformConnection, error) {
	conn, err := s.connectionRepo.FindConnection(ctx, userID, PlatformBasalam)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find Basalam connection")
		}
		return nil, err
	}
	return conn, nil
}
