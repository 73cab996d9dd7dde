package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPlatformConnectionRepository struct {
	db *pgxpool.Pool
}

func newPgxPlatformConnectionRepository(db *pgxpool.Pool) portsrepo.PlatformConnectionRepositoryFacade {
	return &PgxPlatformConnectionRepository{db: db}
}

var _ portsrepo.PlatformConnectionRepositoryFacade = (*PgxPlatformConnectionRepository)(nil)

func (r *PgxPlatformConnectionRepository) FindConnection(ctx context.Context, userID string, platform string) (*domain.PlatformConnection, error) {
	query := `
        SELECT connection_id, user_id, platform, access_token, refresh_token, token_expiry, created_at, created_by, last_updated_at, last_updated_by
        FROM platform_connections
        WHERE user_id = $1 AND platform = $2;
    `
	var conn domain.PlatformConnection
	err := r.db.QueryRow(ctx, query, userID, platform).Scan(
		&conn.ConnectionID,
		&conn.UserID,
		&conn.Platform,
		&conn.AccessToken,
		&conn.RefreshToken,
		&conn.TokenExpiry,
		&conn.CreatedAt,
		&conn.CreatedBy,
		&conn.LastUpdatedAt,
		&conn.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s connection for user %s: %w", platform, userID, err)
	}
	return &conn, nil
}

// UpsertConnection replaces the user's credentials for the platform. Re-running
// the OAuth flow rotates the stored tokens.
func (r *PgxPlatformConnectionRepository) UpsertConnection(ctx context.Context, conn domain.PlatformConnection) error {
	query := `
        INSERT INTO platform_connections (connection_id, user_id, platform, access_token, refresh_token, token_expiry, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (user_id, platform) DO UPDATE SET
            access_token = EXCLUDED.access_token,
            refresh_token = EXCLUDED.refresh_token,
            token_expiry = EXCLUDED.token_expiry,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		conn.ConnectionID,
		conn.UserID,
		conn.Platform,
		conn.AccessToken,
		conn.RefreshToken,
		conn.TokenExpiry,
		conn.CreatedAt,
		conn.CreatedBy,
		conn.LastUpdatedAt,
		conn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert platform connection: %w", err)
	}
	return nil
}

func (r *PgxPlatformConnectionRepository) DeleteConnection(ctx context.Context, userID string, platform string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM platform_connections WHERE user_id = $1 AND platform = $2;`, userID, platform)
	if err != nil {
		return fmt.Errorf("failed to delete %s connection for user %s: %w", platform, userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
