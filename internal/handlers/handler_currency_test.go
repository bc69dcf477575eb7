package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fxdesk/currency_exchange_app/internal/apperrors"
	"github.com/fxdesk/currency_exchange_app/internal/core/domain"
	portssvc "github.com/fxdesk/currency_exchange_app/internal/core/ports/services"
	"github.com/fxdesk/currency_exchange_app/internal/dto"
	"github.com/fxdesk/currency_exchange_app/internal/handlers"
	"github.com/fxdesk/currency_exchange_app/internal/platform/config"
	"github.com/fxdesk/currency_exchange_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeService ---
type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actor domain.Actor) (*domain.Currency, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockExchangeService) UpdateCurrency(ctx context.Context, code string, req dto.UpdateCurrencyRequest, actor domain.Actor) (*domain.Currency, error) {
	args := m.Called(ctx, code, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockExchangeService) GetCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockExchangeService) ListCurrencies(ctx context.Context, includeInactive bool) ([]domain.Currency, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockExchangeService) ListRateHistory(ctx context.Context, code string) ([]domain.RateHistoryEntry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateHistoryEntry), args.Error(1)
}

func (m *MockExchangeService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SubmitContactMessage(ctx context.Context, req dto.CreateContactRequest) (*domain.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *MockContactService) ListContactMessages(ctx context.Context, actor domain.Actor) ([]domain.ContactMessage, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

func (m *MockContactService) GetContactMessage(ctx context.Context, messageID string, actor domain.Actor) (*domain.ContactMessage, error) {
	args := m.Called(ctx, messageID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *MockContactService) DeleteContactMessage(ctx context.Context, messageID string, actor domain.Actor) error {
	args := m.Called(ctx, messageID, actor)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	cfg             *config.Config
	mockExchangeSvc *MockExchangeService
	mockUserSvc     *MockUserService
	mockContactSvc  *MockContactService
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-for-handler-tests",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "currency-exchange-app-test",
		IsProduction:      true, // keeps swagger routes out of the test router
	}
	suite.mockExchangeSvc = new(MockExchangeService)
	suite.mockUserSvc = new(MockUserService)
	suite.mockContactSvc = new(MockContactService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Exchange: suite.mockExchangeSvc,
		User:     suite.mockUserSvc,
		Contact:  suite.mockContactSvc,
	})
}

func (suite *CurrencyHandlerTestSuite) tokenFor(role domain.UserRole) string {
	user := &domain.User{UserID: uuid.NewString(), Role: role}
	token, _, err := utils.GenerateJWT(user, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *CurrencyHandlerTestSuite) perform(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleCurrency(code, rate string) *domain.Currency {
	return &domain.Currency{
		CurrencyID: uuid.NewString(),
		Code:       code,
		Name:       code + " name",
		Symbol:     "$",
		RateToUSD:  decimal.RequireFromString(rate),
		IsActive:   true,
	}
}

// --- Public reads ---

func (suite *CurrencyHandlerTestSuite) TestListCurrencies() {
	suite.mockExchangeSvc.On("ListCurrencies", mock.Anything, false).
		Return([]domain.Currency{*sampleCurrency("EUR", "0.92"), *sampleCurrency("USD", "1.0")}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/currencies", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 2)
	suite.Equal("EUR", got[0].Code)
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_IncludeInactive() {
	suite.mockExchangeSvc.On("ListCurrencies", mock.Anything, true).
		Return([]domain.Currency{}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/currencies?includeInactive=true", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockExchangeSvc.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_NotFound() {
	suite.mockExchangeSvc.On("GetCurrency", mock.Anything, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.perform(http.MethodGet, "/api/v1/currencies/XXX", "", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestListRateHistory() {
	previous := decimal.RequireFromString("0.92")
	suite.mockExchangeSvc.On("ListRateHistory", mock.Anything, "EUR").
		Return([]domain.RateHistoryEntry{
			{CurrencyCode: "EUR", PreviousRate: nil, NewRate: previous},
			{CurrencyCode: "EUR", PreviousRate: &previous, NewRate: decimal.RequireFromString("0.95")},
		}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/currencies/EUR/history", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got []dto.RateHistoryEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got, 2)
	suite.Nil(got[0].PreviousRate)
	suite.Require().NotNil(got[1].PreviousRate)
}

// --- Convert ---

func (suite *CurrencyHandlerTestSuite) TestConvert_Success() {
	suite.mockExchangeSvc.On("Convert", mock.Anything,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("100")) }),
		"EUR", "USD",
	).Return(decimal.RequireFromString("92"), nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/convert?amount=100&from=EUR&to=USD", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.ConvertedAmount.Equal(decimal.RequireFromString("92")))
}

func (suite *CurrencyHandlerTestSuite) TestConvert_MissingParams() {
	w := suite.perform(http.MethodGet, "/api/v1/convert?amount=100&from=EUR", "", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExchangeSvc.AssertNotCalled(suite.T(), "Convert")
}

func (suite *CurrencyHandlerTestSuite) TestConvert_InactiveCurrency() {
	suite.mockExchangeSvc.On("Convert", mock.Anything, mock.Anything, "SYP", "USD").
		Return(decimal.Zero, apperrors.ErrInactiveCurrency).Once()

	w := suite.perform(http.MethodGet, "/api/v1/convert?amount=100&from=SYP&to=USD", "", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

// --- Admin mutations ---

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_RequiresToken() {
	body := dto.CreateCurrencyRequest{Code: "EUR", Name: "Euro", Symbol: "€", RateToUSD: decimal.RequireFromString("0.92")}

	w := suite.perform(http.MethodPost, "/api/v1/currencies", "", body)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockExchangeSvc.AssertNotCalled(suite.T(), "CreateCurrency")
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_AdminSuccess() {
	body := dto.CreateCurrencyRequest{Code: "EUR", Name: "Euro", Symbol: "€", RateToUSD: decimal.RequireFromString("0.92")}

	suite.mockExchangeSvc.On("CreateCurrency", mock.Anything,
		mock.MatchedBy(func(req dto.CreateCurrencyRequest) bool { return req.Code == "EUR" }),
		mock.MatchedBy(func(actor domain.Actor) bool { return actor.Role == domain.RoleAdmin && actor.UserID != "" }),
	).Return(sampleCurrency("EUR", "0.92"), nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/currencies", suite.tokenFor(domain.RoleAdmin), body)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("EUR", got.Code)
	suite.mockExchangeSvc.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_NonAdminForbidden() {
	body := dto.CreateCurrencyRequest{Code: "EUR", Name: "Euro", Symbol: "€", RateToUSD: decimal.RequireFromString("0.92")}

	suite.mockExchangeSvc.On("CreateCurrency", mock.Anything,
		mock.AnythingOfType("dto.CreateCurrencyRequest"),
		mock.MatchedBy(func(actor domain.Actor) bool { return actor.Role == domain.RoleUser }),
	).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.perform(http.MethodPost, "/api/v1/currencies", suite.tokenFor(domain.RoleUser), body)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_Duplicate() {
	body := dto.CreateCurrencyRequest{Code: "USD", Name: "US Dollar", Symbol: "$", RateToUSD: decimal.RequireFromString("1.0")}

	suite.mockExchangeSvc.On("CreateCurrency", mock.Anything,
		mock.AnythingOfType("dto.CreateCurrencyRequest"),
		mock.AnythingOfType("domain.Actor"),
	).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.perform(http.MethodPost, "/api/v1/currencies", suite.tokenFor(domain.RoleAdmin), body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestCreateCurrency_InvalidBody() {
	// Code fails the uppercase binding rule.
	body := map[string]any{"code": "eur", "name": "Euro", "symbol": "€", "rateToUSD": "0.92"}

	w := suite.perform(http.MethodPost, "/api/v1/currencies", suite.tokenFor(domain.RoleAdmin), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExchangeSvc.AssertNotCalled(suite.T(), "CreateCurrency")
}

func (suite *CurrencyHandlerTestSuite) TestUpdateCurrency_Success() {
	newRate := decimal.RequireFromString("0.95")
	body := dto.UpdateCurrencyRequest{RateToUSD: &newRate}

	suite.mockExchangeSvc.On("UpdateCurrency", mock.Anything, "EUR",
		mock.MatchedBy(func(req dto.UpdateCurrencyRequest) bool {
			return req.RateToUSD != nil && req.RateToUSD.Equal(newRate)
		}),
		mock.MatchedBy(func(actor domain.Actor) bool { return actor.Role == domain.RoleAdmin }),
	).Return(sampleCurrency("EUR", "0.95"), nil).Once()

	w := suite.perform(http.MethodPatch, "/api/v1/currencies/EUR", suite.tokenFor(domain.RoleAdmin), body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockExchangeSvc.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestUpdateCurrency_NotFound() {
	name := "Renamed"
	body := dto.UpdateCurrencyRequest{Name: &name}

	suite.mockExchangeSvc.On("UpdateCurrency", mock.Anything, "XXX",
		mock.AnythingOfType("dto.UpdateCurrencyRequest"),
		mock.AnythingOfType("domain.Actor"),
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.perform(http.MethodPatch, "/api/v1/currencies/XXX", suite.tokenFor(domain.RoleAdmin), body)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestUpdateCurrency_GarbageToken() {
	name := "Renamed"
	body := dto.UpdateCurrencyRequest{Name: &name}

	w := suite.perform(http.MethodPatch, "/api/v1/currencies/EUR", "not-a-jwt", body)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockExchangeSvc.AssertNotCalled(suite.T(), "UpdateCurrency")
}

func TestCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
