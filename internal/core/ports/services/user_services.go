package services

import (
	"context"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
)

// UserReaderSvc defines read operations for users
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves users with pagination.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for users
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// UpdateUser applies the allowed updates to a user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// DeactivateUser soft-deletes a user.
	DeactivateUser(ctx context.Context, userID string, deleterUserID string) error

	// SetRefreshToken stores a new hashed refresh token for the user.
	SetRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
