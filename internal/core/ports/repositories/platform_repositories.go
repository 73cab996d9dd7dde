package repositories

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
)

// PlatformConnectionRepositoryFacade persists OAuth credentials for external
// sales platforms.
type PlatformConnectionRepositoryFacade interface {
	// FindConnection retrieves a user's connection for a platform.
	FindConnection(ctx context.Context, userID string, platform string) (*domain.PlatformConnection, error)

	// UpsertConnection inserts or replaces a user's connection for a platform.
	UpsertConnection(ctx context.Context, conn domain.PlatformConnection) error

	// DeleteConnection removes a user's connection for a platform.
	DeleteConnection(ctx context.Context, userID string, platform string) error
}
