package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/core/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PricingRuleReader ---
type MockPricingRuleReader struct {
	mock.Mock
}

func (m *MockPricingRuleReader) FindPricingRuleByID(ctx context.Context, ruleID string) (*domain.PricingRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingRule), args.Error(1)
}

func (m *MockPricingRuleReader) ListPricingRulesByPartner(ctx context.Context, partnerID string, activeOnly bool) ([]domain.PricingRule, error) {
	args := m.Called(ctx, partnerID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingRule), args.Error(1)
}

func (m *MockPricingRuleReader) ListApplicableRules(ctx context.Context, partnerID string, at time.Time, quantity int, category string) ([]domain.PricingRule, error) {
	args := m.Called(ctx, partnerID, at, quantity, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingRule), args.Error(1)
}

// --- Test Suite ---
type PricingServiceTestSuite struct {
	suite.Suite
	mockPartnerRepo *MockPartnerRepository
	mockRuleRepo    *MockPricingRuleReader
	service         portssvc.PricingSvcFacade
}

func (suite *PricingServiceTestSuite) SetupTest() {
	suite.mockPartnerRepo = new(MockPartnerRepository)
	suite.mockRuleRepo = new(MockPricingRuleReader)
	suite.service = services.NewPricingService(suite.mockPartnerRepo, suite.mockRuleRepo)
}

// --- Test Cases ---

func (suite *PricingServiceTestSuite) TestPreviewPrice_FormulaOnly() {
	ctx := context.Background()
	partner := &domain.Partner{
		PartnerID:        uuid.NewString(),
		ProfitPercentage: decimal.NewFromInt(20),
		FixedAmount:      decimal.NewFromInt(15000),
		PriceEndingDigit: 5000,
	}

	suite.mockPartnerRepo.On("FindPartnerByID", ctx, partner.PartnerID).Return(partner, nil).Once()
	suite.mockRuleRepo.On("ListApplicableRules", ctx, partner.PartnerID, mock.AnythingOfType("time.Time"), 1, "").
		Return([]domain.PricingRule{}, nil).Once()

	resp, err := suite.service.PreviewPrice(ctx, dto.PricePreviewRequest{
		PartnerID: partner.PartnerID,
		BasePrice: decimal.NewFromInt(185000),
	})

	suite.Require().NoError(err)
	suite.True(resp.FinalPrice.Equal(decimal.NewFromInt(240000)))
	suite.Equal("دویست و چهل هزار تومان", resp.FinalPriceWords)
	suite.Equal("۲۴۰,۰۰۰ تومان", resp.FinalPriceDisplay)
	suite.Empty(resp.AppliedRuleIDs)
	suite.mockPartnerRepo.AssertExpectations(suite.T())
	suite.mockRuleRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestPreviewPrice_RulesRunAfterMarkup() {
	ctx := context.Background()
	partner := &domain.Partner{
		PartnerID:        uuid.NewString(),
		ProfitPercentage: decimal.NewFromInt(10),
		PriceEndingDigit: 1000,
	}
	discount := domain.PricingRule{
		RuleID:    uuid.NewString(),
		PartnerID: partner.PartnerID,
		RuleType:  domain.RulePercentage,
		RuleValue: decimal.NewFromInt(-10),
		IsActive:  true,
	}

	suite.mockPartnerRepo.On("FindPartnerByID", ctx, partner.PartnerID).Return(partner, nil).Once()
	suite.mockRuleRepo.On("ListApplicableRules", ctx, partner.PartnerID, mock.AnythingOfType("time.Time"), 5, "پوشاک").
		Return([]domain.PricingRule{discount}, nil).Once()

	resp, err := suite.service.PreviewPrice(ctx, dto.PricePreviewRequest{
		PartnerID: partner.PartnerID,
		BasePrice: decimal.NewFromInt(100000),
		Quantity:  5,
		Category:  "پوشاک",
	})

	// 100000 * 1.1 = 110000, minus 10% = 99000, already on a 1000 boundary.
	suite.Require().NoError(err)
	suite.True(resp.FinalPrice.Equal(decimal.NewFromInt(99000)))
	suite.Equal([]string{discount.RuleID}, resp.AppliedRuleIDs)
	suite.mockRuleRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestPreviewPrice_EndingReappliedAfterRules() {
	ctx := context.Background()
	partner := &domain.Partner{
		PartnerID:        uuid.NewString(),
		PriceEndingDigit: 5000,
	}
	surcharge := domain.PricingRule{
		RuleID:    uuid.NewString(),
		PartnerID: partner.PartnerID,
		RuleType:  domain.RuleFixedAmount,
		RuleValue: decimal.NewFromInt(1200),
		IsActive:  true,
	}

	suite.mockPartnerRepo.On("FindPartnerByID", ctx, partner.PartnerID).Return(partner, nil).Once()
	suite.mockRuleRepo.On("ListApplicableRules", ctx, partner.PartnerID, mock.AnythingOfType("time.Time"), 1, "").
		Return([]domain.PricingRule{surcharge}, nil).Once()

	resp, err := suite.service.PreviewPrice(ctx, dto.PricePreviewRequest{
		PartnerID: partner.PartnerID,
		BasePrice: decimal.NewFromInt(100000),
	})

	// 100000 + 1200 = 101200 -> rounded up to the next multiple of 5000.
	suite.Require().NoError(err)
	suite.True(resp.FinalPrice.Equal(decimal.NewFromInt(105000)))
	suite.mockRuleRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestPreviewPrice_NonPositiveBaseRejected() {
	ctx := context.Background()

	resp, err := suite.service.PreviewPrice(ctx, dto.PricePreviewRequest{
		PartnerID: uuid.NewString(),
		BasePrice: decimal.NewFromInt(-5),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	suite.mockPartnerRepo.AssertNotCalled(suite.T(), "FindPartnerByID")
}

func (suite *PricingServiceTestSuite) TestPreviewPrice_PartnerNotFound() {
	ctx := context.Background()
	partnerID := uuid.NewString()

	suite.mockPartnerRepo.On("FindPartnerByID", ctx, partnerID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.PreviewPrice(ctx, dto.PricePreviewRequest{
		PartnerID: partnerID,
		BasePrice: decimal.NewFromInt(1000),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(resp)
	suite.mockPartnerRepo.AssertExpectations(suite.T())
}

func TestPricingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}
