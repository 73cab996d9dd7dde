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
	"github.com/shopspring/decimal"
)

type PgxPartnerRepository struct {
	BaseRepository
}

func newPgxPartnerRepository(db *pgxpool.Pool) portsrepo.PartnerRepositoryFacade {
	return &PgxPartnerRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

const partnerColumns = `partner_id, name, type, contact_email, contact_phone, address, description, platform, platform_address, credit_limit, current_debt, payment_terms, settlement_period_days, profit_percentage, fixed_amount, price_ending_digit, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanPartner(row pgx.Row) (*domain.Partner, error) {
	var p domain.Partner
	err := row.Scan(
		&p.PartnerID,
		&p.Name,
		&p.Type,
		&p.ContactEmail,
		&p.ContactPhone,
		&p.Address,
		&p.Description,
		&p.Platform,
		&p.PlatformAddress,
		&p.CreditLimit,
		&p.CurrentDebt,
		&p.PaymentTerms,
		&p.SettlementPeriodDays,
		&p.ProfitPercentage,
		&p.FixedAmount,
		&p.PriceEndingDigit,
		&p.IsActive,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	query := `
        INSERT INTO partners (partner_id, name, type, contact_email, contact_phone, address, description, platform, platform_address, credit_limit, current_debt, payment_terms, settlement_period_days, profit_percentage, fixed_amount, price_ending_digit, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
    `
	_, err := r.Pool.Exec(ctx, query,
		partner.PartnerID,
		partner.Name,
		partner.Type,
		partner.ContactEmail,
		partner.ContactPhone,
		partner.Address,
		partner.Description,
		partner.Platform,
		partner.PlatformAddress,
		partner.CreditLimit,
		partner.CurrentDebt,
		partner.PaymentTerms,
		partner.SettlementPeriodDays,
		partner.ProfitPercentage,
		partner.FixedAmount,
		partner.PriceEndingDigit,
		partner.IsActive,
		partner.CreatedAt,
		partner.CreatedBy,
		partner.LastUpdatedAt,
		partner.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save partner: %w", err)
	}
	return nil
}

func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE partner_id = $1;`

	partner, err := scanPartner(r.Pool.QueryRow(ctx, query, partnerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner by ID %s: %w", partnerID, err)
	}
	return partner, nil
}

func (r *PgxPartnerRepository) ListPartners(ctx context.Context, partnerType *domain.PartnerType, activeOnly bool, limit int, offset int) ([]domain.Partner, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + partnerColumns + ` FROM partners WHERE ($1::text IS NULL OR type = $1) AND (NOT $2 OR is_active) ORDER BY name LIMIT $3 OFFSET $4;`

	var typeArg *string
	if partnerType != nil {
		t := string(*partnerType)
		typeArg = &t
	}

	rows, err := r.Pool.Query(ctx, query, typeArg, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	partners := []domain.Partner{}
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner row: %w", err)
		}
		partners = append(partners, *partner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner rows: %w", err)
	}
	return partners, nil
}

func (r *PgxPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	query := `
        UPDATE partners
        SET name = $2, type = $3, contact_email = $4, contact_phone = $5, address = $6, description = $7,
            platform = $8, platform_address = $9, credit_limit = $10, payment_terms = $11,
            settlement_period_days = $12, profit_percentage = $13, fixed_amount = $14,
            price_ending_digit = $15, is_active = $16, last_updated_at = $17, last_updated_by = $18
        WHERE partner_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		partner.PartnerID,
		partner.Name,
		partner.Type,
		partner.ContactEmail,
		partner.ContactPhone,
		partner.Address,
		partner.Description,
		partner.Platform,
		partner.PlatformAddress,
		partner.CreditLimit,
		partner.PaymentTerms,
		partner.SettlementPeriodDays,
		partner.ProfitPercentage,
		partner.FixedAmount,
		partner.PriceEndingDigit,
		partner.IsActive,
		partner.LastUpdatedAt,
		partner.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner %s: %w", partner.PartnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePartnerDebt sets the partner's current debt and, when settlement is
// non-nil, records the settlement row in the same transaction so the balance
// and its history never drift apart.
func (r *PgxPartnerRepository) UpdatePartnerDebt(ctx context.Context, partnerID string, newDebt decimal.Decimal, updatedBy string, settlement *domain.Settlement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	debtQuery := `
        UPDATE partners
        SET current_debt = $2, last_updated_at = NOW(), last_updated_by = $3
        WHERE partner_id = $1;
    `
	tag, err := tx.Exec(ctx, debtQuery, partnerID, newDebt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update debt for partner %s: %w", partnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if settlement != nil {
		settlementQuery := `
            INSERT INTO settlements (settlement_id, partner_id, amount, previous_debt, remaining_debt, reason, settled_by, notes, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
        `
		_, err = tx.Exec(ctx, settlementQuery,
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
			return fmt.Errorf("failed to record settlement for partner %s: %w", partnerID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPartnerRepository) MarkPartnerInactive(ctx context.Context, partnerID string, updatedBy string) error {
	query := `
        UPDATE partners
        SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
        WHERE partner_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query, partnerID, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark partner %s inactive: %w", partnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
