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

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{db: db}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, description, category, brand, partner_id, images, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var partnerID *string
	err := row.Scan(
		&p.ProductID,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.Brand,
		&partnerID,
		&p.Images,
		&p.IsActive,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if partnerID != nil {
		p.PartnerID = *partnerID
	}
	return &p, nil
}

// nullable converts an empty string to a NULL argument for optional FKs.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
        INSERT INTO products (product_id, name, description, category, brand, partner_id, images, is_active, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Description,
		product.Category,
		product.Brand,
		nullable(product.PartnerID),
		product.Images,
		product.IsActive,
		product.CreatedAt,
		product.CreatedBy,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	product, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, filter portsrepo.ProductListFilter, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE ($1::uuid IS NULL OR partner_id = $1)
          AND ($2::text IS NULL OR category = $2)
          AND (NOT $3 OR is_active)
        ORDER BY created_at DESC
        LIMIT $4 OFFSET $5;
    `
	rows, err := r.db.Query(ctx, query, nullable(filter.PartnerID), nullable(filter.Category), filter.ActiveOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
        UPDATE products
        SET name = $2, description = $3, category = $4, brand = $5, partner_id = $6, images = $7,
            is_active = $8, last_updated_at = $9, last_updated_by = $10
        WHERE product_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Description,
		product.Category,
		product.Brand,
		nullable(product.PartnerID),
		product.Images,
		product.IsActive,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) SaveVariant(ctx context.Context, variant domain.Variant) error {
	query := `
        INSERT INTO variants (variant_id, product_id, name, value, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		variant.VariantID,
		variant.ProductID,
		variant.Name,
		variant.Value,
		variant.CreatedAt,
		variant.CreatedBy,
		variant.LastUpdatedAt,
		variant.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save variant: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) ListVariantsByProduct(ctx context.Context, productID string) ([]domain.Variant, error) {
	query := `
        SELECT variant_id, product_id, name, value, created_at, created_by, last_updated_at, last_updated_by
        FROM variants
        WHERE product_id = $1
        ORDER BY name, value;
    `
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	variants := []domain.Variant{}
	for rows.Next() {
		var v domain.Variant
		err := rows.Scan(
			&v.VariantID,
			&v.ProductID,
			&v.Name,
			&v.Value,
			&v.CreatedAt,
			&v.CreatedBy,
			&v.LastUpdatedAt,
			&v.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan variant row: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating variant rows: %w", err)
	}
	return variants, nil
}

func (r *PgxProductRepository) DeleteVariant(ctx context.Context, variantID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM variants WHERE variant_id = $1;`, variantID)
	if err != nil {
		return fmt.Errorf("failed to delete variant %s: %w", variantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
