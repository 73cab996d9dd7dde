package services_test

import (
	"context"
	"testing"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/core/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SKURepository ---
type MockSKURepository struct {
	mock.Mock
}

func (m *MockSKURepository) FindSKUByID(ctx context.Context, skuID string) (*domain.SKU, error) {
	args := m.Called(ctx, skuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SKU), args.Error(1)
}

func (m *MockSKURepository) FindSKUByCode(ctx context.Context, skuCode string) (*domain.SKU, error) {
	args := m.Called(ctx, skuCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SKU), args.Error(1)
}

func (m *MockSKURepository) ListSKUs(ctx context.Context, productID string, limit int, offset int) ([]domain.SKU, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SKU), args.Error(1)
}

func (m *MockSKURepository) ListPriceableSKUs(ctx context.Context, productID string) ([]domain.SKU, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SKU), args.Error(1)
}

func (m *MockSKURepository) SaveSKU(ctx context.Context, sku domain.SKU) error {
	args := m.Called(ctx, sku)
	return args.Error(0)
}

func (m *MockSKURepository) UpdateSKU(ctx context.Context, sku domain.SKU) error {
	args := m.Called(ctx, sku)
	return args.Error(0)
}

func (m *MockSKURepository) UpdateSKUFinalPrice(ctx context.Context, skuID string, finalPrice decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, skuID, finalPrice, updatedBy)
	return args.Error(0)
}

func (m *MockSKURepository) DeleteSKU(ctx context.Context, skuID string) error {
	args := m.Called(ctx, skuID)
	return args.Error(0)
}

// --- Mock ProductReader ---
type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductReader) ListProducts(ctx context.Context, filter portsrepo.ProductListFilter, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductReader) ListVariantsByProduct(ctx context.Context, productID string) ([]domain.Variant, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Variant), args.Error(1)
}

// --- Test Suite ---
type SKUServiceTestSuite struct {
	suite.Suite
	mockSKURepo     *MockSKURepository
	mockProductRepo *MockProductReader
	mockPartnerRepo *MockPartnerRepository
	service         portssvc.SKUSvcFacade
}

func (suite *SKUServiceTestSuite) SetupTest() {
	suite.mockSKURepo = new(MockSKURepository)
	suite.mockProductRepo = new(MockProductReader)
	suite.mockPartnerRepo = new(MockPartnerRepository)
	suite.service = services.NewSKUService(suite.mockSKURepo, suite.mockProductRepo, suite.mockPartnerRepo)
}

// --- Test Cases ---

func (suite *SKUServiceTestSuite) TestCreateSKU_ComputesFinalPriceFromPartnerFormula() {
	ctx := context.Background()
	partnerID := uuid.NewString()
	productID := uuid.NewString()
	basePrice := decimal.NewFromInt(185000)

	product := &domain.Product{ProductID: productID, Name: "شال نخی", PartnerID: partnerID}
	partner := &domain.Partner{
		PartnerID:        partnerID,
		ProfitPercentage: decimal.NewFromInt(20),
		FixedAmount:      decimal.NewFromInt(15000),
		PriceEndingDigit: 5000,
	}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, partnerID).Return(partner, nil).Once()
	suite.mockSKURepo.On("SaveSKU", ctx, mock.MatchedBy(func(s domain.SKU) bool {
		// 185000 * 1.2 + 15000 = 237000 -> next multiple of 5000 is 240000
		return s.FinalPrice != nil && s.FinalPrice.Equal(decimal.NewFromInt(240000)) &&
			s.BasePrice != nil && s.BasePrice.Equal(basePrice) &&
			s.SKUCode != ""
	})).Return(nil).Once()

	sku, err := suite.service.CreateSKU(ctx, dto.CreateSKURequest{
		ProductID: productID,
		BasePrice: &basePrice,
		Inventory: 10,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(sku.FinalPrice)
	suite.True(sku.FinalPrice.Equal(decimal.NewFromInt(240000)))
	suite.mockSKURepo.AssertExpectations(suite.T())
}

func (suite *SKUServiceTestSuite) TestCreateSKU_NoPartnerFallsBackToBasePrice() {
	ctx := context.Background()
	productID := uuid.NewString()
	basePrice := decimal.NewFromInt(99500)

	product := &domain.Product{ProductID: productID, Name: "کیف دستی"}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockSKURepo.On("SaveSKU", ctx, mock.MatchedBy(func(s domain.SKU) bool {
		return s.FinalPrice != nil && s.FinalPrice.Equal(basePrice)
	})).Return(nil).Once()

	sku, err := suite.service.CreateSKU(ctx, dto.CreateSKURequest{
		ProductID: productID,
		BasePrice: &basePrice,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(sku.FinalPrice.Equal(basePrice))
	suite.mockPartnerRepo.AssertNotCalled(suite.T(), "FindPartnerByID")
	suite.mockSKURepo.AssertExpectations(suite.T())
}

func (suite *SKUServiceTestSuite) TestCreateSKU_PartnerGoneFallsBackToBasePrice() {
	ctx := context.Background()
	partnerID := uuid.NewString()
	productID := uuid.NewString()
	basePrice := decimal.NewFromInt(120000)

	product := &domain.Product{ProductID: productID, Name: "عسل طبیعی", PartnerID: partnerID}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, partnerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSKURepo.On("SaveSKU", ctx, mock.MatchedBy(func(s domain.SKU) bool {
		return s.FinalPrice != nil && s.FinalPrice.Equal(basePrice)
	})).Return(nil).Once()

	sku, err := suite.service.CreateSKU(ctx, dto.CreateSKURequest{
		ProductID: productID,
		BasePrice: &basePrice,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(sku.FinalPrice.Equal(basePrice))
	suite.mockSKURepo.AssertExpectations(suite.T())
}

func (suite *SKUServiceTestSuite) TestCreateSKU_NoBasePriceLeavesFinalPriceNil() {
	ctx := context.Background()
	productID := uuid.NewString()
	product := &domain.Product{ProductID: productID, Name: "شمع سویا", PartnerID: uuid.NewString()}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockSKURepo.On("SaveSKU", ctx, mock.MatchedBy(func(s domain.SKU) bool {
		return s.BasePrice == nil && s.FinalPrice == nil
	})).Return(nil).Once()

	sku, err := suite.service.CreateSKU(ctx, dto.CreateSKURequest{ProductID: productID}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(sku.FinalPrice)
	suite.mockPartnerRepo.AssertNotCalled(suite.T(), "FindPartnerByID")
	suite.mockSKURepo.AssertExpectations(suite.T())
}

func (suite *SKUServiceTestSuite) TestCreateSKU_NonPositiveBasePriceRejected() {
	ctx := context.Background()
	productID := uuid.NewString()
	basePrice := decimal.Zero
	product := &domain.Product{ProductID: productID, Name: "x"}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()

	sku, err := suite.service.CreateSKU(ctx, dto.CreateSKURequest{
		ProductID: productID,
		BasePrice: &basePrice,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sku)
	suite.mockSKURepo.AssertNotCalled(suite.T(), "SaveSKU")
}

func (suite *SKUServiceTestSuite) TestRecalculateFinalPrices_UpdatesChangedSKUsOnly() {
	ctx := context.Background()
	partnerID := uuid.NewString()
	productID := uuid.NewString()
	updaterUserID := uuid.NewString()

	baseA := decimal.NewFromInt(100000)
	baseB := decimal.NewFromInt(103000)
	upToDate := decimal.NewFromInt(110000) // already 100000 * 1.1 rounded up to 10000

	skus := []domain.SKU{
		{SKUID: uuid.NewString(), ProductID: productID, BasePrice: &baseA, FinalPrice: &upToDate},
		{SKUID: uuid.NewString(), ProductID: productID, BasePrice: &baseB},
	}
	product := &domain.Product{ProductID: productID, PartnerID: partnerID}
	partner := &domain.Partner{
		PartnerID:        partnerID,
		ProfitPercentage: decimal.NewFromInt(10),
		PriceEndingDigit: 10000,
	}

	suite.mockSKURepo.On("ListPriceableSKUs", ctx, "").Return(skus, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, partnerID).Return(partner, nil).Once()
	// 103000 * 1.1 = 113300 -> 120000; the first SKU is already correct.
	suite.mockSKURepo.On("UpdateSKUFinalPrice", ctx, skus[1].SKUID, decimal.NewFromInt(120000), updaterUserID).Return(nil).Once()

	updated, err := suite.service.RecalculateFinalPrices(ctx, dto.RecalculatePricesRequest{}, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(1, updated)
	suite.mockSKURepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockPartnerRepo.AssertExpectations(suite.T())
}

func TestSKUServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SKUServiceTestSuite))
}
