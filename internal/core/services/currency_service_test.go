package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/core/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Code: "gbp", Name: "İngiliz Sterlini", Symbol: "£"}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == "GBP" && c.Name == req.Name && c.Symbol == "£" && c.IsActive
	})).Return(&domain.Currency{ID: "c1", Code: "GBP", Name: req.Name, Symbol: "£", IsActive: true}, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("GBP", currency.Code)
	suite.True(currency.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Inactive() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return !c.IsActive
	})).Return(&domain.Currency{ID: "c2", Code: "JPY"}, nil).Once()

	_, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{Code: "JPY", Name: "Yen", IsActive: ptr(false)})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil, apperrors.ErrDuplicate).Once()

	currency, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{Code: "TRY", Name: "Türk Lirası"})

	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Normalizes() {
	ctx := context.Background()
	expected := &domain.Currency{Code: "USD"}
	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, " usd")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_ActiveOnly() {
	ctx := context.Background()
	expected := []domain.Currency{{Code: "EUR", IsActive: true}, {Code: "TRY", IsActive: true}}
	suite.mockRepo.On("ListCurrencies", ctx, true).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx, true)

	suite.Require().NoError(err)
	suite.Equal(expected, currencies)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx, false).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx, false)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx, false).Return(nil, assert.AnError).Once()

	currencies, err := suite.service.ListCurrencies(ctx, false)

	suite.Nil(currencies)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CurrencyServiceTestSuite) TestUpdateCurrency_Deactivate() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByID", ctx, "c1").Return(&domain.Currency{ID: "c1", Code: "EUR", Name: "Euro", Symbol: "€", IsActive: true}, nil).Once()
	suite.mockRepo.On("UpdateCurrency", ctx, domain.Currency{ID: "c1", Code: "EUR", Name: "Euro", Symbol: "€", IsActive: false}).
		Return(&domain.Currency{ID: "c1", Code: "EUR", Name: "Euro", Symbol: "€"}, nil).Once()

	currency, err := suite.service.UpdateCurrency(ctx, "c1", dto.UpdateCurrencyRequest{IsActive: ptr(false)})

	suite.Require().NoError(err)
	suite.False(currency.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteCurrency", ctx, "c9").Return(apperrors.ErrNotFound).Once()

	suite.ErrorIs(suite.service.DeleteCurrency(ctx, "c9"), apperrors.ErrNotFound)
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
