package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{db: db}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func (r *PgxReportingRepository) GetInventorySummary(ctx context.Context) (*portsrepo.InventorySummary, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM products WHERE is_active),
            COUNT(s.sku_id),
            COALESCE(SUM(s.inventory), 0),
            COUNT(s.sku_id) FILTER (WHERE s.inventory = 0),
            COUNT(s.sku_id) FILTER (WHERE s.base_price IS NOT NULL AND s.final_price IS NULL)
        FROM skus s
        WHERE s.is_active;
    `
	var summary portsrepo.InventorySummary
	err := r.db.QueryRow(ctx, query).Scan(
		&summary.TotalProducts,
		&summary.TotalSKUs,
		&summary.TotalInventory,
		&summary.OutOfStockSKUs,
		&summary.UnpricedSKUs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate inventory summary: %w", err)
	}
	return &summary, nil
}

func (r *PgxReportingRepository) ListPartnerDebts(ctx context.Context) ([]portsrepo.PartnerDebtSummary, error) {
	query := `
        SELECT p.partner_id, p.name, p.current_debt, p.credit_limit, COUNT(pr.product_id)
        FROM partners p
        LEFT JOIN products pr ON pr.partner_id = p.partner_id AND pr.is_active
        WHERE p.is_active
        GROUP BY p.partner_id, p.name, p.current_debt, p.credit_limit
        ORDER BY p.current_debt DESC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query partner debts: %w", err)
	}
	defer rows.Close()

	summaries := []portsrepo.PartnerDebtSummary{}
	for rows.Next() {
		var s portsrepo.PartnerDebtSummary
		err := rows.Scan(&s.PartnerID, &s.PartnerName, &s.CurrentDebt, &s.CreditLimit, &s.ProductsCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner debt row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner debt rows: %w", err)
	}
	return summaries, nil
}

func (r *PgxReportingRepository) GetTotalDebt(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(current_debt), 0) FROM partners WHERE is_active;`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum partner debt: %w", err)
	}
	return total, nil
}
