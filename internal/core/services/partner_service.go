package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// partnerService implements the PartnerSvcFacade interface
type partnerService struct {
	BaseService
	partnerRepo portsrepo.PartnerRepositoryFacade
}

// NewPartnerService creates a new partner service with the provided dependencies
func NewPartnerService(partnerRepo portsrepo.PartnerRepositoryFacade) portssvc.PartnerSvcFacade {
	return &partnerService{partnerRepo: partnerRepo}
}

var _ portssvc.PartnerSvcFacade = (*partnerService)(nil)

// GetPartnerByID retrieves a partner by ID.
func (s *partnerService) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find partner by ID", slog.String("partner_id", partnerID))
		}
		return nil, err
	}
	return partner, nil
}

// ListPartners retrieves partners matching the params.
func (s *partnerService) ListPartners(ctx context.Context, params dto.ListPartnersParams) ([]domain.Partner, error) {
	var partnerType *domain.PartnerType
	if params.Type != "" {
		t := domain.PartnerType(params.Type)
		if !t.IsValid() {
			return nil, fmt.Errorf("unknown partner type %q: %w", params.Type, apperrors.ErrValidation)
		}
		partnerType = &t
	}

	partners, err := s.partnerRepo.ListPartners(ctx, partnerType, params.ActiveOnly, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list partners")
		return nil, err
	}
	if partners == nil {
		return []domain.Partner{}, nil
	}
	return partners, nil
}

// CreatePartner registers a new partner.
func (s *partnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, creatorUserID string) (*domain.Partner, error) {
	partnerType := domain.PartnerType(req.Type)
	if !partnerType.IsValid() {
		return nil, fmt.Errorf("unknown partner type %q: %w", req.Type, apperrors.ErrValidation)
	}

	now := time.Now()
	partner := domain.Partner{
		PartnerID:       uuid.NewString(),
		Name:            req.Name,
		Type:            partnerType,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Address:         req.Address,
		Description:     req.Description,
		Platform:        req.Platform,
		PlatformAddress: req.PlatformAddress,
		PaymentTerms:    req.PaymentTerms,
		CurrentDebt:     decimal.Zero,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("credit limit cannot be negative: %w", apperrors.ErrValidation)
		}
		partner.CreditLimit = *req.CreditLimit
	}
	if req.SettlementPeriodDays != nil {
		partner.SettlementPeriodDays = *req.SettlementPeriodDays
	}
	if req.ProfitPercentage != nil {
		partner.ProfitPercentage = *req.ProfitPercentage
	}
	if req.FixedAmount != nil {
		partner.FixedAmount = *req.FixedAmount
	}
	if req.PriceEndingDigit != nil {
		if *req.PriceEndingDigit < 0 {
			return nil, fmt.Errorf("price ending digit cannot be negative: %w", apperrors.ErrValidation)
		}
		partner.PriceEndingDigit = *req.PriceEndingDigit
	}

	if err := s.partnerRepo.SavePartner(ctx, partner); err != nil {
		s.LogError(ctx, err, "Failed to save partner", slog.String("partner_name", req.Name))
		return nil, fmt.Errorf("failed to save partner: %w", err)
	}

	s.LogInfo(ctx, "Partner created",
		slog.String("partner_id", partner.PartnerID),
		slog.String("partner_type", string(partner.Type)))
	return &partner, nil
}

// UpdatePartner applies the allowed updates to a partner.
func (s *partnerService) UpdatePartner(ctx context.Context, partnerID string, req dto.UpdatePartnerRequest, updaterUserID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Type != nil {
		partnerType := domain.PartnerType(*req.Type)
		if !partnerType.IsValid() {
			return nil, fmt.Errorf("unknown partner type %q: %w", *req.Type, apperrors.ErrValidation)
		}
		partner.Type = partnerType
	}
	if req.ContactEmail != nil {
		partner.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		partner.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		partner.Address = *req.Address
	}
	if req.Description != nil {
		partner.Description = *req.Description
	}
	if req.Platform != nil {
		partner.Platform = *req.Platform
	}
	if req.PlatformAddress != nil {
		partner.PlatformAddress = *req.PlatformAddress
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("credit limit cannot be negative: %w", apperrors.ErrValidation)
		}
		partner.CreditLimit = *req.CreditLimit
	}
	if req.PaymentTerms != nil {
		partner.PaymentTerms = *req.PaymentTerms
	}
	if req.SettlementPeriodDays != nil {
		partner.SettlementPeriodDays = *req.SettlementPeriodDays
	}
	if req.ProfitPercentage != nil {
		partner.ProfitPercentage = *req.ProfitPercentage
	}
	if req.FixedAmount != nil {
		partner.FixedAmount = *req.FixedAmount
	}
	if req.PriceEndingDigit != nil {
		if *req.PriceEndingDigit < 0 {
			return nil, fmt.Errorf("price ending digit cannot be negative: %w", apperrors.ErrValidation)
		}
		partner.PriceEndingDigit = *req.PriceEndingDigit
	}
	if req.IsActive != nil {
		partner.IsActive = *req.IsActive
	}

	partner.LastUpdatedAt = time.Now()
	partner.LastUpdatedBy = updaterUserID

	if err := s.partnerRepo.UpdatePartner(ctx, *partner); err != nil {
		s.LogError(ctx, err, "Failed to update partner", slog.String("partner_id", partnerID))
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}

	return partner, nil
}

// UpdateDebt adjusts a partner's running debt. Increases are rejected when
// they would push the debt past a non-zero credit limit. Reductions never take
// the debt below zero and are recorded as settlement rows in the same
// transaction as the debt change.
func (s *partnerService) UpdateDebt(ctx context.Context, partnerID string, req dto.UpdateDebtRequest, updaterUserID string) (*domain.Partner, error) {
	if req.Operation != "set" && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("debt %s amount must be positive: %w", req.Operation, apperrors.ErrValidation)
	}
	if req.Operation == "set" && req.Amount.IsNegative() {
		return nil, fmt.Errorf("debt cannot be set to a negative amount: %w", apperrors.ErrValidation)
	}

	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	previousDebt := partner.CurrentDebt

	var newDebt decimal.Decimal
	switch req.Operation {
	case "add":
		newDebt = previousDebt.Add(req.Amount)
	case "subtract":
		newDebt = previousDebt.Sub(req.Amount)
		if newDebt.IsNegative() {
			newDebt = decimal.Zero
		}
	case "set":
		newDebt = req.Amount
	default:
		return nil, fmt.Errorf("unknown debt operation %q: %w", req.Operation, apperrors.ErrValidation)
	}

	if newDebt.GreaterThan(previousDebt) && partner.CreditLimit.IsPositive() && newDebt.GreaterThan(partner.CreditLimit) {
		return nil, fmt.Errorf("debt %s would exceed credit limit %s: %w",
			newDebt.String(), partner.CreditLimit.String(), apperrors.ErrCreditLimitExceeded)
	}

	// A reduction is a payment: record it as a settlement.
	var settlement *domain.Settlement
	if newDebt.LessThan(previousDebt) {
		settlement = &domain.Settlement{
			SettlementID:  uuid.NewString(),
			PartnerID:     partnerID,
			Amount:        previousDebt.Sub(newDebt),
			PreviousDebt:  previousDebt,
			RemainingDebt: newDebt,
			Reason:        req.Reason,
			SettledBy:     updaterUserID,
			CreatedAt:     time.Now(),
		}
	}

	if err := s.partnerRepo.UpdatePartnerDebt(ctx, partnerID, newDebt, updaterUserID, settlement); err != nil {
		s.LogError(ctx, err, "Failed to update partner debt", slog.String("partner_id", partnerID))
		return nil, fmt.Errorf("failed to update partner debt: %w", err)
	}

	partner.CurrentDebt = newDebt
	partner.LastUpdatedAt = time.Now()
	partner.LastUpdatedBy = updaterUserID

	s.LogInfo(ctx, "Partner debt updated",
		slog.String("partner_id", partnerID),
		slog.String("operation", req.Operation),
		slog.String("previous_debt", previousDebt.String()),
		slog.String("new_debt", newDebt.String()))
	return partner, nil
}

// DeactivatePartner marks a partner inactive.
func (s *partnerService) DeactivatePartner(ctx context.Context, partnerID string, updaterUserID string) error {
	if err := s.partnerRepo.MarkPartnerInactive(ctx, partnerID, updaterUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate partner", slog.String("partner_id", partnerID))
		}
		return err
	}

	s.LogInfo(ctx, "Partner deactivated", slog.String("partner_id", partnerID))
	return nil
}
