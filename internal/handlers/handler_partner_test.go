package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/bazaryar/bazaryar_backend/internal/handlers"
	"github.com/bazaryar/bazaryar_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartnerService ---
type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerService) ListPartners(ctx context.Context, params dto.ListPartnersParams) ([]domain.Partner, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, creatorUserID string) (*domain.Partner, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerService) UpdatePartner(ctx context.Context, partnerID string, req dto.UpdatePartnerRequest, updaterUserID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerService) UpdateDebt(ctx context.Context, partnerID string, req dto.UpdateDebtRequest, updaterUserID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerService) DeactivatePartner(ctx context.Context, partnerID string, updaterUserID string) error {
	args := m.Called(ctx, partnerID, updaterUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.PartnerSvcFacade = (*MockPartnerService)(nil)

// --- Test Suite ---
type PartnerHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPartnerService *MockPartnerService
	jwtSecret          string
}

// generateTestToken creates a signed JWT for the test user.
func (suite *PartnerHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bazaryar-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *PartnerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPartnerService = new(MockPartnerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPartnerRoutes(v1, suite.mockPartnerService)
}

func (suite *PartnerHandlerTestSuite) performRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PartnerHandlerTestSuite) TestGetPartner_Success() {
	partnerID := uuid.NewString()
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	expected := &domain.Partner{
		PartnerID:        partnerID,
		Name:             "پخش کویر",
		Type:             domain.PartnerDistributor,
		CreditLimit:      decimal.NewFromInt(5000000),
		CurrentDebt:      decimal.NewFromInt(250000),
		ProfitPercentage: decimal.NewFromInt(25),
		FixedAmount:      decimal.NewFromInt(10000),
		PriceEndingDigit: 5000,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Now(),
			CreatedBy:     userID,
			LastUpdatedAt: time.Now(),
			LastUpdatedBy: userID,
		},
	}

	suite.mockPartnerService.On("GetPartnerByID", mock.Anything, partnerID).Return(expected, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/partners/"+partnerID, token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PartnerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(partnerID, resp.PartnerID)
	suite.Equal("پخش کویر", resp.Name)
	suite.Equal("۲۵۰,۰۰۰ تومان", resp.CurrentDebtDisplay)
	suite.mockPartnerService.AssertExpectations(suite.T())
}

func (suite *PartnerHandlerTestSuite) TestGetPartner_NotFound() {
	partnerID := uuid.NewString()
	token := suite.generateTestToken(uuid.NewString())

	suite.mockPartnerService.On("GetPartnerByID", mock.Anything, partnerID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/partners/"+partnerID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPartnerService.AssertExpectations(suite.T())
}

func (suite *PartnerHandlerTestSuite) TestGetPartner_NoToken() {
	w := suite.performRequest(http.MethodGet, "/api/v1/partners/"+uuid.NewString(), "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPartnerService.AssertNotCalled(suite.T(), "GetPartnerByID")
}

func (suite *PartnerHandlerTestSuite) TestCreatePartner_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	profit := decimal.NewFromInt(30)
	reqBody := dto.CreatePartnerRequest{
		Name:             "تولیدی نگار",
		Type:             "manufacturer",
		ProfitPercentage: &profit,
	}

	created := &domain.Partner{
		PartnerID:        uuid.NewString(),
		Name:             reqBody.Name,
		Type:             domain.PartnerManufacturer,
		ProfitPercentage: profit,
		IsActive:         true,
	}

	suite.mockPartnerService.On("CreatePartner", mock.Anything, mock.AnythingOfType("dto.CreatePartnerRequest"), userID).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/partners", token, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PartnerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.PartnerID, resp.PartnerID)
	suite.Equal("manufacturer", resp.Type)
	suite.mockPartnerService.AssertExpectations(suite.T())
}

func (suite *PartnerHandlerTestSuite) TestCreatePartner_InvalidType() {
	token := suite.generateTestToken(uuid.NewString())

	reqBody := map[string]any{
		"name": "فروشگاه تست",
		"type": "reseller",
	}

	w := suite.performRequest(http.MethodPost, "/api/v1/partners", token, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartnerService.AssertNotCalled(suite.T(), "CreatePartner")
}

func (suite *PartnerHandlerTestSuite) TestUpdateDebt_CreditLimitExceeded() {
	partnerID := uuid.NewString()
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	reqBody := dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(9000000),
		Operation: "add",
	}

	suite.mockPartnerService.On("UpdateDebt", mock.Anything, partnerID, mock.AnythingOfType("dto.UpdateDebtRequest"), userID).
		Return(nil, apperrors.ErrCreditLimitExceeded).Once()

	w := suite.performRequest(http.MethodPatch, "/api/v1/partners/"+partnerID+"/debt", token, reqBody)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockPartnerService.AssertExpectations(suite.T())
}

func (suite *PartnerHandlerTestSuite) TestUpdateDebt_SubtractSuccess() {
	partnerID := uuid.NewString()
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	reqBody := dto.UpdateDebtRequest{
		Amount:    decimal.NewFromInt(100000),
		Operation: "subtract",
		Reason:    "تسویه نقدی",
	}

	updated := &domain.Partner{
		PartnerID:   partnerID,
		Name:        "پخش کویر",
		Type:        domain.PartnerDistributor,
		CurrentDebt: decimal.NewFromInt(150000),
		IsActive:    true,
	}

	suite.mockPartnerService.On("UpdateDebt", mock.Anything, partnerID, mock.MatchedBy(func(req dto.UpdateDebtRequest) bool {
		return req.Operation == "subtract" && req.Amount.Equal(decimal.NewFromInt(100000))
	}), userID).Return(updated, nil).Once()

	w := suite.performRequest(http.MethodPatch, "/api/v1/partners/"+partnerID+"/debt", token, reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PartnerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.CurrentDebt.Equal(decimal.NewFromInt(150000)))
	suite.Equal("۱۵۰,۰۰۰ تومان", resp.CurrentDebtDisplay)
	suite.mockPartnerService.AssertExpectations(suite.T())
}

func (suite *PartnerHandlerTestSuite) TestDeletePartner_Success() {
	partnerID := uuid.NewString()
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	suite.mockPartnerService.On("DeactivatePartner", mock.Anything, partnerID, userID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/partners/"+partnerID, token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockPartnerService.AssertExpectations(suite.T())
}

func TestPartnerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerHandlerTestSuite))
}
