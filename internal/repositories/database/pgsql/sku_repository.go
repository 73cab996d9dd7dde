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

type PgxSKURepository struct {
	db *pgxpool.Pool
}

func newPgxSKURepository(db *pgxpool.Pool) portsrepo.SKURepositoryFacade {
	return &PgxSKURepository{db: db}
}

var _ portsrepo.SKURepositoryFacade = (*PgxSKURepository)(nil)

const skuColumns = `sku_id, product_id, sku_code, size, color, base_price, final_price, inventory, link, weight, length_cm, width_cm, height_cm, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanSKU(row pgx.Row) (*domain.SKU, error) {
	var s domain.SKU
	var length, width, height *float64
	err := row.Scan(
		&s.SKUID,
		&s.ProductID,
		&s.SKUCode,
		&s.Size,
		&s.Color,
		&s.BasePrice,
		&s.FinalPrice,
		&s.Inventory,
		&s.Link,
		&s.Weight,
		&length,
		&width,
		&height,
		&s.IsActive,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if length != nil && width != nil && height != nil {
		s.Dimensions = &domain.Dimensions{Length: *length, Width: *width, Height: *height}
	}
	return &s, nil
}

// dimensionArgs flattens optional dimensions into three nullable columns.
func dimensionArgs(d *domain.Dimensions) (length, width, height *float64) {
	if d == nil {
		return nil, nil, nil
	}
	return &d.Length, &d.Width, &d.Height
}

func (r *PgxSKURepository) SaveSKU(ctx context.Context, sku domain.SKU) error {
	length, width, height := dimensionArgs(sku.Dimensions)
	query := `
        INSERT INTO skus (sku_id, product_id, sku_code, size, color, base_price, final_price, inventory, link, weight, length_cm, width_cm, height_cm, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err := r.db.Exec(ctx, query,
		sku.SKUID,
		sku.ProductID,
		sku.SKUCode,
		sku.Size,
		sku.Color,
		sku.BasePrice,
		sku.FinalPrice,
		sku.Inventory,
		sku.Link,
		sku.Weight,
		length,
		width,
		height,
		sku.IsActive,
		sku.CreatedAt,
		sku.CreatedBy,
		sku.LastUpdatedAt,
		sku.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save SKU: %w", err)
	}
	return nil
}

func (r *PgxSKURepository) FindSKUByID(ctx context.Context, skuID string) (*domain.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE sku_id = $1;`

	sku, err := scanSKU(r.db.QueryRow(ctx, query, skuID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find SKU by ID %s: %w", skuID, err)
	}
	return sku, nil
}

func (r *PgxSKURepository) FindSKUByCode(ctx context.Context, skuCode string) (*domain.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE sku_code = $1;`

	sku, err := scanSKU(r.db.QueryRow(ctx, query, skuCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find SKU by code: %w", err)
	}
	return sku, nil
}

func (r *PgxSKURepository) ListSKUs(ctx context.Context, productID string, limit int, offset int) ([]domain.SKU, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + skuColumns + `
        FROM skus
        WHERE ($1::uuid IS NULL OR product_id = $1)
        ORDER BY sku_code
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, nullable(productID), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query SKUs: %w", err)
	}
	defer rows.Close()

	return collectSKUs(rows)
}

// ListPriceableSKUs returns SKUs that can go through the pricing engine: those
// with a base price on an active product.
func (r *PgxSKURepository) ListPriceableSKUs(ctx context.Context, productID string) ([]domain.SKU, error) {
	query := `
        SELECT ` + prefixedSKUColumns("s") + `
        FROM skus s
        JOIN products p ON p.product_id = s.product_id
        WHERE s.base_price IS NOT NULL
          AND p.is_active
          AND ($1::uuid IS NULL OR s.product_id = $1)
        ORDER BY s.sku_code;
    `
	rows, err := r.db.Query(ctx, query, nullable(productID))
	if err != nil {
		return nil, fmt.Errorf("failed to query priceable SKUs: %w", err)
	}
	defer rows.Close()

	return collectSKUs(rows)
}

func (r *PgxSKURepository) UpdateSKU(ctx context.Context, sku domain.SKU) error {
	length, width, height := dimensionArgs(sku.Dimensions)
	query := `
        UPDATE skus
        SET size = $2, color = $3, base_price = $4, final_price = $5, inventory = $6, link = $7,
            weight = $8, length_cm = $9, width_cm = $10, height_cm = $11, is_active = $12,
            last_updated_at = $13, last_updated_by = $14
        WHERE sku_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		sku.SKUID,
		sku.Size,
		sku.Color,
		sku.BasePrice,
		sku.FinalPrice,
		sku.Inventory,
		sku.Link,
		sku.Weight,
		length,
		width,
		height,
		sku.IsActive,
		sku.LastUpdatedAt,
		sku.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update SKU %s: %w", sku.SKUID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSKURepository) UpdateSKUFinalPrice(ctx context.Context, skuID string, finalPrice decimal.Decimal, updatedBy string) error {
	query := `
        UPDATE skus
        SET final_price = $2, last_updated_at = NOW(), last_updated_by = $3
        WHERE sku_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, skuID, finalPrice, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update final price for SKU %s: %w", skuID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSKURepository) DeleteSKU(ctx context.Context, skuID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skus WHERE sku_id = $1;`, skuID)
	if err != nil {
		return fmt.Errorf("failed to delete SKU %s: %w", skuID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectSKUs(rows pgx.Rows) ([]domain.SKU, error) {
	skus := []domain.SKU{}
	for rows.Next() {
		sku, err := scanSKU(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan SKU row: %w", err)
		}
		skus = append(skus, *sku)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating SKU rows: %w", err)
	}
	return skus, nil
}

// prefixedSKUColumns qualifies the SKU column list with a table alias for
// queries that join other tables.
func prefixedSKUColumns(alias string) string {
	return alias + ".sku_id, " + alias + ".product_id, " + alias + ".sku_code, " + alias + ".size, " + alias + ".color, " +
		alias + ".base_price, " + alias + ".final_price, " + alias + ".inventory, " + alias + ".link, " + alias + ".weight, " +
		alias + ".length_cm, " + alias + ".width_cm, " + alias + ".height_cm, " + alias + ".is_active, " +
		alias + ".created_at, " + alias + ".created_by, " + alias + ".last_updated_at, " + alias + ".last_updated_by"
}
