package services_test

import (
	"context"
	"testing"

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

// --- Mock PartnerRepository ---
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) ListPartners(ctx context.Context, partnerType *domain.PartnerType, activeOnly bool, limit int, offset int) ([]domain.Partner, error) {
	args := m.Called(ctx, partnerType, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockPartnerRepository) UpdatePartnerDebt(ctx context.Context, partnerID string, newDebt decimal.Decimal, updatedBy string, settlement *domain.Settlement) error {
	args := m.Called(ctx, partnerID, newDebt, updatedBy, settlement)
	return args.Error(0)
}

func (m *MockPartnerRepository) MarkPartnerInactive(ctx context.Context, partnerID string, updatedBy string) error {
	args := m.Called(ctx, partnerID, updatedBy)
	return args.Error(0)
}

// --- Test Suite ---
type PartnerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPartnerRepository
	service  portssvc.PartnerSvcFacade
}

func (suite *PartnerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPartnerRepository)
	suite.service = services.NewPartnerService(suite.mockRepo)
}

func (suite *PartnerServiceTestSuite) partnerFixture(debt, creditLimit int64) *domain.Partner {
	return &domain.Partner{
		PartnerID:   uuid.NewString(),
		Name:        "پخش کویر",
		Type:        domain.PartnerWholesaler,
		CurrentDebt: decimal.NewFromInt(debt),
		CreditLimit: decimal.NewFromInt(creditLimit),
		IsActive:    true,
	}
}

// --- Test Cases ---

func (suite *PartnerServiceTestSuite) TestCreatePartner_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	profit := decimal.NewFromInt(20)
	fixed := decimal.NewFromInt(15000)
	ending := int64(5000)
	req := dto.CreatePartnerRequest{
		Name:             "پخش کویر",
		Type:             "wholesaler",
		ProfitPercentage: &profit,
		FixedAmount:      &fixed,
		PriceEndingDigit: &ending,
	}

	suite.mockRepo.On("SavePartner", ctx, mock.MatchedBy(func(p domain.Partner) bool {
		return p.Name == req.Name &&
			p.Type == domain.PartnerWholesaler &&
			p.ProfitPercentage.Equal(profit) &&
			p.FixedAmount.Equal(fixed) &&
			p.PriceEndingDigit == ending &&
			p.CurrentDebt.IsZero() &&
			p.IsActive &&
			p.CreatedBy == creatorUserID
	})).Return(nil).Once()

	partner, err := suite.service.CreatePartner(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(partner)
	suite.NotEmpty(partner.PartnerID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestCreatePartner_InvalidType() {
	ctx := context.Background()
	req := dto.CreatePartnerRequest{Name: "x", Type: "reseller"}

	partner, err := suite.service.CreatePartner(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(partner)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePartner")
}

func (suite *PartnerServiceTestSuite) TestUpdateDebt_AddWithinLimit() {
	ctx := context.Background()
	partner := suite.partnerFixture(100000, 500000)
	updaterUserID := uuid.NewString()

	suite.mockRepo.On("FindPartnerByID", ctx, partner.PartnerID).Return(partner, nil).Once()
	suite.mockRepo.On("UpdatePartnerDebt", ctx, partner.PartnerID, decimal.NewFromInt(250000), updaterUserID, (*domain.Settlement)(nil)).Return(nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, partner.PartnerID, dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(150000),
		Operation: "add",
	}, updaterUserID)

	suite.Require().NoError(err)
	suite.True(updated.CurrentDebt.Equal(decimal.NewFromInt(250000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestUpdateDebt_AddExceedsCreditLimit() {
	ctx := context.Background()
	partner := suite.partnerFixture(400000, 500000)

	suite.mockRepo.On("FindPartnerByID", ctx, partner.PartnerID).Return(partner, nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, partner.PartnerID, dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(200000),
		Operation: "add",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCreditLimitExceeded)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePartnerDebt")
}

func (suite *PartnerServiceTestSuite) TestUpdateDebt_ZeroCreditLimitIsUnlimited() {
	ctx := context.Background()
	partner := suite.partnerFixture(1000000, 0)
	updaterUserID := uuid.NewString()

	suite.mockRepo.On("FindPartnerByID", ctx, partner.PartnerID).Return(partner, nil).Once()
	suite.mockRepo.On("UpdatePartnerDebt", ctx, partner.PartnerID, decimal.NewFromInt(6000000), updaterUserID, (*domain.Settlement)(nil)).Return(nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, partner.PartnerID, dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(5000000),
		Operation: "add",
	}, updaterUserID)

	suite.Require().NoError(err)
	suite.True(updated.CurrentDebt.Equal(decimal.NewFromInt(6000000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestUpdateDebt_SubtractRecordsSettlement() {
	ctx := context.Background()
	partner := suite.partnerFixture(300000, 0)
	updaterUserID := uuid.NewString()

	suite.mockRepo.On("UpdatePartnerDebt", ctx, partner.PartnerID, decimal.NewFromInt(100000), updaterUserID, mock.MatchedBy(func(s *domain.Settlement) bool {
		return s != nil &&
			s.PartnerID == partner.PartnerID &&
			s.Amount.Equal(decimal.NewFromInt(200000)) &&
			s.PreviousDebt.Equal(decimal.NewFromInt(300000)) &&
			s.RemainingDebt.Equal(decimal.NewFromInt(100000)) &&
			s.SettledBy == updaterUserID &&
			s.Reason == "تسویه نقدی"
	})).Return(nil).Once()
	suite.mockRepo.On("FindPartnerByID", ctx, partner.PartnerID).Return(partner, nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, partner.PartnerID, dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(200000),
		Operation: "subtract",
		Reason:    "تسویه نقدی",
	}, updaterUserID)

	suite.Require().NoError(err)
	suite.True(updated.CurrentDebt.Equal(decimal.NewFromInt(100000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestUpdateDebt_SubtractClampsAtZero() {
	ctx := context.Background()
	partner := suite.partnerFixture(50000, 0)
	updaterUserID := uuid.NewString()

	suite.mockRepo.On("FindPartnerByID", ctx, partner.PartnerID).Return(partner, nil).Once()
	suite.mockRepo.On("UpdatePartnerDebt", ctx, partner.PartnerID, decimal.Zero, updaterUserID, mock.MatchedBy(func(s *domain.Settlement) bool {
		// Only the actual reduction counts as the settlement amount.
		return s != nil && s.Amount.Equal(decimal.NewFromInt(50000)) && s.RemainingDebt.IsZero()
	})).Return(nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, partner.PartnerID, dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(80000),
		Operation: "subtract",
	}, updaterUserID)

	suite.Require().NoError(err)
	suite.True(updated.CurrentDebt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestUpdateDebt_SetBelowCurrentRecordsSettlement() {
	ctx := context.Background()
	partner := suite.partnerFixture(300000, 500000)
	updaterUserID := uuid.NewString()

	suite.mockRepo.On("FindPartnerByID", ctx, partner.PartnerID).Return(partner, nil).Once()
	suite.mockRepo.On("UpdatePartnerDebt", ctx, partner.PartnerID, decimal.NewFromInt(120000), updaterUserID, mock.MatchedBy(func(s *domain.Settlement) bool {
		return s != nil && s.Amount.Equal(decimal.NewFromInt(180000))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateDebt(ctx, partner.PartnerID, dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(120000),
		Operation: "set",
	}, updaterUserID)

	suite.Require().NoError(err)
	suite.True(updated.CurrentDebt.Equal(decimal.NewFromInt(120000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PartnerServiceTestSuite) TestUpdateDebt_NegativeAmountRejected() {
	ctx := context.Background()

	updated, err := suite.service.UpdateDebt(ctx, uuid.NewString(), dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(-100),
		Operation: "add",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPartnerByID")
}

func (suite *PartnerServiceTestSuite) TestUpdateDebt_PartnerNotFound() {
	ctx := context.Background()
	partnerID := uuid.NewString()

	suite.mockRepo.On("FindPartnerByID", ctx, partnerID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateDebt(ctx, partnerID, dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(100),
		Operation: "add",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPartnerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerServiceTestSuite))
}
