package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettlementRepository struct {
	db *pgxpool.Pool
}

func newPgxSettlementRepository(db *pgxpool.Pool) portsrepo.SettlementRepositoryFacade {
	return &PgxSettlementRepository{db: db}
}

var _ portsrepo.SettlementRepositoryFacade = (*PgxSettlementRepository)(nil)

func scanSettlement(row pgx.Row) (*domain.Settlement, error) {
	var s domain.Settlement
	err := row.Scan(
		&s.SettlementID,
		&s.PartnerID,
		&s.Amount,
		&s.PreviousDebt,
		&s.RemainingDebt,
		&s.Reason,
		&s.SettledBy,
		&s.Notes,
		&s.CreatedAt,
		&s.PartnerName,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

const settlementSelect = `
        SELECT s.settlement_id, s.partner_id, s.amount, s.previous_debt, s.remaining_debt, s.reason, s.settled_by, s.notes, s.created_at, p.name
        FROM settlements s
        JOIN partners p ON p.partner_id = s.partner_id`

func (r *PgxSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	query := `
        INSERT INTO settlements (settlement_id, partner_id, amount, previous_debt, remaining_debt, reason, settled_by, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		settlement.SettlementID,
		settlement.PartnerID,
		settlement.Amount,
		settlement.PreviousDebt,
		settlement.RemainingDebt,
		settlement.Reason,
		settlement.SettledBy,
		settlement.Notes,
		settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save settlement: %w", err)
	}
	return nil
}

func (r *PgxSettlementRepository) FindSettlementByID(ctx context.Context, settlementID string) (*domain.Settlement, error) {
	query := settlementSelect + ` WHERE s.settlement_id = $1;`

	settlement, err := scanSettlement(r.db.QueryRow(ctx, query, settlementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settlement by ID %s: %w", settlementID, err)
	}
	return settlement, nil
}

// ListSettlements returns settlements newest first. createdBefore is the
// cursor from the previous page; the zero time starts from the newest row.
func (r *PgxSettlementRepository) ListSettlements(ctx context.Context, partnerID string, createdBefore time.Time, limit int) ([]domain.Settlement, error) {
	if limit <= 0 {
		limit = 50
	}

	query := settlementSelect + `
        WHERE ($1::uuid IS NULL OR s.partner_id = $1)
          AND ($2::timestamptz IS NULL OR s.created_at < $2)
        ORDER BY s.created_at DESC
        LIMIT $3;
    `
	var cursor *time.Time
	if !createdBefore.IsZero() {
		cursor = &createdBefore
	}

	rows, err := r.db.Query(ctx, query, nullable(partnerID), cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query settlements: %w", err)
	}
	defer rows.Close()

	settlements := []domain.Settlement{}
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement row: %w", err)
		}
		settlements = append(settlements, *settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settlement rows: %w", err)
	}
	return settlements, nil
}
