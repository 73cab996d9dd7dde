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

type PgxPricingRuleRepository struct {
	db *pgxpool.Pool
}

func newPgxPricingRuleRepository(db *pgxpool.Pool) portsrepo.PricingRuleRepositoryFacade {
	return &PgxPricingRuleRepository{db: db}
}

var _ portsrepo.PricingRuleRepositoryFacade = (*PgxPricingRuleRepository)(nil)

const pricingRuleColumns = `rule_id, partner_id, rule_name, rule_type, rule_value, min_quantity, max_quantity, category_filter, priority, is_active, valid_from, valid_until, created_at, created_by, last_updated_at, last_updated_by`

func scanPricingRule(row pgx.Row) (*domain.PricingRule, error) {
	var rule domain.PricingRule
	err := row.Scan(
		&rule.RuleID,
		&rule.PartnerID,
		&rule.RuleName,
		&rule.RuleType,
		&rule.RuleValue,
		&rule.MinQuantity,
		&rule.MaxQuantity,
		&rule.CategoryFilter,
		&rule.Priority,
		&rule.IsActive,
		&rule.ValidFrom,
		&rule.ValidUntil,
		&rule.CreatedAt,
		&rule.CreatedBy,
		&rule.LastUpdatedAt,
		&rule.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *PgxPricingRuleRepository) SavePricingRule(ctx context.Context, rule domain.PricingRule) error {
	query := `
        INSERT INTO pricing_rules (rule_id, partner_id, rule_name, rule_type, rule_value, min_quantity, max_quantity, category_filter, priority, is_active, valid_from, valid_until, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err := r.db.Exec(ctx, query,
		rule.RuleID,
		rule.PartnerID,
		rule.RuleName,
		rule.RuleType,
		rule.RuleValue,
		rule.MinQuantity,
		rule.MaxQuantity,
		rule.CategoryFilter,
		rule.Priority,
		rule.IsActive,
		rule.ValidFrom,
		rule.ValidUntil,
		rule.CreatedAt,
		rule.CreatedBy,
		rule.LastUpdatedAt,
		rule.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save pricing rule: %w", err)
	}
	return nil
}

func (r *PgxPricingRuleRepository) FindPricingRuleByID(ctx context.Context, ruleID string) (*domain.PricingRule, error) {
	query := `SELECT ` + pricingRuleColumns + ` FROM pricing_rules WHERE rule_id = $1;`

	rule, err := scanPricingRule(r.db.QueryRow(ctx, query, ruleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pricing rule by ID %s: %w", ruleID, err)
	}
	return rule, nil
}

func (r *PgxPricingRuleRepository) ListPricingRulesByPartner(ctx context.Context, partnerID string, activeOnly bool) ([]domain.PricingRule, error) {
	query := `
        SELECT ` + pricingRuleColumns + `
        FROM pricing_rules
        WHERE partner_id = $1 AND (NOT $2 OR is_active)
        ORDER BY priority DESC, created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, partnerID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing rules: %w", err)
	}
	defer rows.Close()

	return collectPricingRules(rows)
}

func (r *PgxPricingRuleRepository) ListApplicableRules(ctx context.Context, partnerID string, at time.Time, quantity int, category string) ([]domain.PricingRule, error) {
	query := `
        SELECT ` + pricingRuleColumns + `
        FROM pricing_rules
        WHERE partner_id = $1
          AND is_active
          AND valid_from <= $2
          AND (valid_until IS NULL OR valid_until >= $2)
          AND min_quantity <= $3
          AND (max_quantity IS NULL OR max_quantity >= $3)
          AND (category_filter = '' OR category_filter = $4)
        ORDER BY priority DESC, created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, partnerID, at, quantity, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query applicable pricing rules: %w", err)
	}
	defer rows.Close()

	return collectPricingRules(rows)
}

func (r *PgxPricingRuleRepository) UpdatePricingRule(ctx context.Context, rule domain.PricingRule) error {
	query := `
        UPDATE pricing_rules
        SET rule_name = $2, rule_type = $3, rule_value = $4, min_quantity = $5, max_quantity = $6,
            category_filter = $7, priority = $8, is_active = $9, valid_from = $10, valid_until = $11,
            last_updated_at = $12, last_updated_by = $13
        WHERE rule_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		rule.RuleID,
		rule.RuleName,
		rule.RuleType,
		rule.RuleValue,
		rule.MinQuantity,
		rule.MaxQuantity,
		rule.CategoryFilter,
		rule.Priority,
		rule.IsActive,
		rule.ValidFrom,
		rule.ValidUntil,
		rule.LastUpdatedAt,
		rule.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update pricing rule %s: %w", rule.RuleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPricingRuleRepository) MarkPricingRuleInactive(ctx context.Context, ruleID string, updatedBy string) error {
	query := `
        UPDATE pricing_rules
        SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
        WHERE rule_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, ruleID, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark pricing rule %s inactive: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectPricingRules(rows pgx.Rows) ([]domain.PricingRule, error) {
	rules := []domain.PricingRule{}
	for rows.Next() {
		rule, err := scanPricingRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pricing rule row: %w", err)
		}
		rules = append(rules, *rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pricing rule rows: %w", err)
	}
	return rules, nil
}
