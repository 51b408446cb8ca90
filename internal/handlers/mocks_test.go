package handlers_test

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/utils/filtering"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, currencyID string) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) UpdateExchangeRate(ctx context.Context, rateID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) DeleteExchangeRate(ctx context.Context, rateID string) error {
	args := m.Called(ctx, rateID)
	return args.Error(0)
}

func (m *MockExchangeRateService) RateTable(ctx context.Context) (fx.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(fx.RateTable), args.Error(1)
}

func (m *MockExchangeRateService) RefreshRateTable(ctx context.Context) (fx.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(fx.RateTable), args.Error(1)
}

func (m *MockExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (fx.Conversion, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	return args.Get(0).(fx.Conversion), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock GuaranteeLetterService ---
type MockGuaranteeLetterService struct {
	mock.Mock
}

func (m *MockGuaranteeLetterService) GetGuaranteeLetterByID(ctx context.Context, letterID string) (*domain.GuaranteeLetter, error) {
	args := m.Called(ctx, letterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuaranteeLetter), args.Error(1)
}

func (m *MockGuaranteeLetterService) ListGuaranteeLetters(ctx context.Context) ([]domain.GuaranteeLetter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GuaranteeLetter), args.Error(1)
}

func (m *MockGuaranteeLetterService) ListGuaranteeLettersWithRelations(ctx context.Context) ([]domain.GuaranteeLetterWithRelations, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GuaranteeLetterWithRelations), args.Error(1)
}

func (m *MockGuaranteeLetterService) ListExpiringLetters(ctx context.Context, withinDays int) ([]domain.GuaranteeLetterWithRelations, error) {
	args := m.Called(ctx, withinDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GuaranteeLetterWithRelations), args.Error(1)
}

func (m *MockGuaranteeLetterService) CreateGuaranteeLetter(ctx context.Context, req dto.CreateGuaranteeLetterRequest) (*domain.GuaranteeLetter, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuaranteeLetter), args.Error(1)
}

func (m *MockGuaranteeLetterService) UpdateGuaranteeLetter(ctx context.Context, letterID string, req dto.UpdateGuaranteeLetterRequest) (*domain.GuaranteeLetter, error) {
	args := m.Called(ctx, letterID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuaranteeLetter), args.Error(1)
}

func (m *MockGuaranteeLetterService) DeleteGuaranteeLetter(ctx context.Context, letterID string) error {
	args := m.Called(ctx, letterID)
	return args.Error(0)
}

var _ portssvc.GuaranteeLetterSvcFacade = (*MockGuaranteeLetterService)(nil)

// --- Mock CreditService ---
type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) GetCreditByID(ctx context.Context, creditID string) (*domain.Credit, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditService) ListCredits(ctx context.Context) ([]domain.Credit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Credit), args.Error(1)
}

func (m *MockCreditService) ListCreditsWithRelations(ctx context.Context) ([]domain.CreditWithRelations, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditWithRelations), args.Error(1)
}

func (m *MockCreditService) CreateCredit(ctx context.Context, req dto.CreateCreditRequest) (*domain.Credit, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditService) UpdateCredit(ctx context.Context, creditID string, req dto.UpdateCreditRequest) (*domain.Credit, error) {
	args := m.Called(ctx, creditID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditService) DeleteCredit(ctx context.Context, creditID string) error {
	args := m.Called(ctx, creditID)
	return args.Error(0)
}

func (m *MockCreditService) RecordRepayment(ctx context.Context, creditID string, req dto.RepaymentRequest) (*domain.Credit, error) {
	args := m.Called(ctx, creditID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

var _ portssvc.CreditSvcFacade = (*MockCreditService)(nil)

// --- Mock GridService ---
type MockGridService struct {
	mock.Mock
}

func (m *MockGridService) GuaranteeLetterGrid(ctx context.Context, state filtering.ViewState, page, pageSize int) (*dto.GridResponse[dto.GuaranteeLetterGridRow], error) {
	args := m.Called(ctx, state, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GridResponse[dto.GuaranteeLetterGridRow]), args.Error(1)
}

func (m *MockGridService) CreditGrid(ctx context.Context, state filtering.ViewState, page, pageSize int) (*dto.GridResponse[dto.CreditGridRow], error) {
	args := m.Called(ctx, state, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GridResponse[dto.CreditGridRow]), args.Error(1)
}

var _ portssvc.GridSvc = (*MockGridService)(nil)

// --- Mock SidebarService ---
type MockSidebarService struct {
	mock.Mock
}

func (m *MockSidebarService) GetSidebar(ctx context.Context) (*dto.SidebarResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SidebarResponse), args.Error(1)
}

var _ portssvc.SidebarSvc = (*MockSidebarService)(nil)
