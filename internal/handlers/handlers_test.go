package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/handlers"
	"github.com/SscSPs/teminat_takip/internal/platform/config"
	"github.com/SscSPs/teminat_takip/internal/utils/filtering"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	projectService  *MockProjectService
	currencyService *MockCurrencyService
	rateService     *MockExchangeRateService
	letterService   *MockGuaranteeLetterService
	creditService   *MockCreditService
	gridService     *MockGridService
	sidebarService  *MockSidebarService
	redisDown       bool
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterBindingValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.projectService = new(MockProjectService)
	suite.currencyService = new(MockCurrencyService)
	suite.rateService = new(MockExchangeRateService)
	suite.letterService = new(MockGuaranteeLetterService)
	suite.creditService = new(MockCreditService)
	suite.gridService = new(MockGridService)
	suite.sidebarService = new(MockSidebarService)
	suite.redisDown = false

	container := &portssvc.ServiceContainer{
		Project:         suite.projectService,
		Currency:        suite.currencyService,
		ExchangeRate:    suite.rateService,
		GuaranteeLetter: suite.letterService,
		Credit:          suite.creditService,
		Grid:            suite.gridService,
		Sidebar:         suite.sidebarService,
	}
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error { return nil },
		"redis": func(ctx context.Context) error {
			if suite.redisDown {
				return errors.New("connection refused")
			}
			return nil
		},
	}
	cfg := &config.Config{IsProduction: true, DisplayLocale: "tr"}
	handlers.RegisterRoutes(suite.router, cfg, container, checks)
}

func (suite *HandlerTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, url, nil)
	} else {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func (suite *HandlerTestSuite) TestCreateProject() {
	id := uuid.NewString()
	suite.projectService.On("CreateProject", mock.Anything, dto.CreateProjectRequest{Name: "Metro Hattı"}).
		Return(&domain.Project{ID: id, Name: "Metro Hattı", Status: domain.StatusActive}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects", `{"name":"Metro Hattı"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.ProjectResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(id, res.ID)
	suite.projectService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateProject_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/projects", `{"description":"x"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.projectService.AssertNotCalled(suite.T(), "CreateProject", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetProject_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/projects/not-a-uuid", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid projectID format", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestGetProject_NotFound() {
	id := uuid.NewString()
	suite.projectService.On("GetProjectByID", mock.Anything, id).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects/"+id, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteProject_Referenced() {
	id := uuid.NewString()
	suite.projectService.On("DeleteProject", mock.Anything, id).
		Return(apperrors.ErrReferenced).Once()

	w := suite.do(http.MethodDelete, "/api/v1/projects/"+id, "")

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorBody(w), "referenced")
}

func (suite *HandlerTestSuite) TestDeleteProject_InfrastructureError() {
	id := uuid.NewString()
	suite.projectService.On("DeleteProject", mock.Anything, id).
		Return(apperrors.NewAppError(http.StatusServiceUnavailable, "database unavailable", errors.New("dial tcp"))).Once()

	w := suite.do(http.MethodDelete, "/api/v1/projects/"+id, "")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("Failed to delete project", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestLetterGrid_BindsViewState() {
	p1, p2, b1 := uuid.NewString(), uuid.NewString(), uuid.NewString()
	suite.gridService.On("GuaranteeLetterGrid", mock.Anything,
		mock.MatchedBy(func(s filtering.ViewState) bool {
			return slices.Equal(s.ProjectIDs, []string{p1, p2}) && slices.Equal(s.BankIDs, []string{b1}) && s.Currency == "USD"
		}), 2, 10,
	).Return(&dto.GridResponse[dto.GuaranteeLetterGridRow]{Page: 2, PageSize: 10, TotalRows: 12, TotalPages: 2}, nil).Once()

	url := "/api/v1/guarantee-letters/grid?projectId=" + p1 + "&projectId=" + p2 + "&projectId=" + p1 +
		"&bankId=" + b1 + "&currency=usd&page=2&pageSize=10"
	w := suite.do(http.MethodGet, url, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.GridResponse[dto.GuaranteeLetterGridRow]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(12, res.TotalRows)
	suite.gridService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreditGrid_Defaults() {
	suite.gridService.On("CreditGrid", mock.Anything, mock.MatchedBy(func(s filtering.ViewState) bool {
		return !s.IsFiltered() && s.Currency == ""
	}), 1, 25).Return(&dto.GridResponse[dto.CreditGridRow]{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/credits/grid", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.gridService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreditGrid_InvalidCurrency() {
	w := suite.do(http.MethodGet, "/api/v1/credits/grid?currency=dollars", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.gridService.AssertNotCalled(suite.T(), "CreditGrid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListLetters_WithRelations() {
	bank := &domain.Bank{ID: uuid.NewString(), Name: "Ziraat"}
	suite.letterService.On("ListGuaranteeLettersWithRelations", mock.Anything).Return([]domain.GuaranteeLetterWithRelations{
		{GuaranteeLetter: domain.GuaranteeLetter{ID: "l1", BankID: bank.ID, Currency: "TRY"}, Bank: bank},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/guarantee-letters?withRelations=true", "")

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.GuaranteeLetterResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res, 1)
	suite.Require().NotNil(res[0].Bank)
	suite.Equal("Ziraat", res[0].Bank.Name)
	suite.Nil(res[0].Project)
	suite.letterService.AssertNotCalled(suite.T(), "ListGuaranteeLetters", mock.Anything)
}

func (suite *HandlerTestSuite) TestListExpiring() {
	suite.letterService.On("ListExpiringLetters", mock.Anything, 30).
		Return([]domain.GuaranteeLetterWithRelations{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/guarantee-letters/expiring", "")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/guarantee-letters/expiring?days=-1", "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.letterService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateLetter_RejectsPercentageOver100() {
	body := `{"bankId":"` + uuid.NewString() + `","projectId":"` + uuid.NewString() + `",
		"letterType":"teminat","contractAmount":"1000","letterPercentage":"120","commissionRate":"1",
		"currency":"TRY","purchaseDate":"2025-01-01","letterDate":"2025-01-02"}`

	w := suite.do(http.MethodPost, "/api/v1/guarantee-letters", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.letterService.AssertNotCalled(suite.T(), "CreateGuaranteeLetter", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRecordRepayment() {
	id := uuid.NewString()
	suite.creditService.On("RecordRepayment", mock.Anything, id, mock.MatchedBy(func(r dto.RepaymentRequest) bool {
		return r.Amount.Equal(decimal.RequireFromString("1500.50"))
	})).Return(&domain.Credit{
		ID: id, PrincipalAmount: decimal.NewFromInt(10000), TotalRepaidAmount: decimal.RequireFromString("1500.50"),
		Currency: "TRY", CreditDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/credits/"+id+"/repayments", `{"amount":"1500.50"}`)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.CreditResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(decimal.RequireFromString("8499.50").Equal(res.OutstandingAmount))
	suite.Equal("2025-01-01", res.CreditDate)
}

func (suite *HandlerTestSuite) TestRecordRepayment_ZeroAmount() {
	w := suite.do(http.MethodPost, "/api/v1/credits/"+uuid.NewString()+"/repayments", `{"amount":"0"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.creditService.AssertNotCalled(suite.T(), "RecordRepayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpdateCredit_RepaidDecrease() {
	id := uuid.NewString()
	suite.creditService.On("UpdateCredit", mock.Anything, id, mock.Anything).
		Return(nil, errors.Join(apperrors.ErrValidation, errors.New("totalRepaidAmount cannot decrease"))).Once()

	w := suite.do(http.MethodPut, "/api/v1/credits/"+id, `{"totalRepaidAmount":"10"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "cannot decrease")
}

func (suite *HandlerTestSuite) TestConvert() {
	amount := decimal.RequireFromString("100")
	suite.rateService.On("Convert", mock.Anything, mock.MatchedBy(amount.Equal), "USD", "TRY").Return(fx.Conversion{
		Money:     domain.Money{Amount: decimal.RequireFromString("3250"), Currency: "TRY"},
		Original:  domain.Money{Amount: amount, Currency: "USD"},
		Rate:      decimal.RequireFromString("32.5"),
		Converted: true,
	}, nil).Once()
	suite.currencyService.On("ListCurrencies", mock.Anything, false).
		Return([]domain.Currency{{Code: "TRY", Symbol: "₺"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/convert?amount=100&from=USD&to=TRY", "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Converted)
	suite.Equal("₺3.250,00", res.Formatted)
	suite.Equal("TRY", res.To)
}

func (suite *HandlerTestSuite) TestConvert_MissingRateFallsBack() {
	amount := decimal.RequireFromString("5000")
	suite.rateService.On("Convert", mock.Anything, mock.Anything, "CHF", "TRY").Return(fx.Conversion{
		Money:    domain.Money{Amount: amount, Currency: "CHF"},
		Original: domain.Money{Amount: amount, Currency: "CHF"},
	}, nil).Once()
	suite.currencyService.On("ListCurrencies", mock.Anything, false).Return(nil, errors.New("db down")).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/convert?amount=5000&from=CHF&to=TRY", "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.Converted)
	suite.Equal("CHF", res.Currency)
	suite.Equal("CHF 5.000,00", res.Formatted)
}

func (suite *HandlerTestSuite) TestGetExchangeRatePair_NotFound() {
	suite.rateService.On("GetExchangeRate", mock.Anything, "TRY", "USD").
		Return(nil, apperrors.ErrRateNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/pair/TRY/USD", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCurrency_Duplicate() {
	suite.currencyService.On("CreateCurrency", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies", `{"code":"TRY","name":"Türk Lirası"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestSidebar_Error() {
	suite.sidebarService.On("GetSidebar", mock.Anything).Return(nil, errors.New("boom")).Once()

	w := suite.do(http.MethodGet, "/api/v1/sidebar", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to build sidebar", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)

	suite.redisDown = true
	w = suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusServiceUnavailable, w.Code)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("degraded", body.Status)
	suite.Equal("up", body.Checks["database"])
	suite.Equal("down", body.Checks["redis"])
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
