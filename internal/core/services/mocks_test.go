package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// --- Mock BankRepository ---
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

func (m *MockBankRepository) SaveBank(ctx context.Context, bank domain.Bank) (*domain.Bank, error) {
	args := m.Called(ctx, bank)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) (*domain.Bank, error) {
	args := m.Called(ctx, bank)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) DeleteBank(ctx context.Context, bankID string) error {
	args := m.Called(ctx, bankID)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) DeleteExchangeRate(ctx context.Context, rateID string) error {
	args := m.Called(ctx, rateID)
	return args.Error(0)
}

// --- Mock RateTableCache ---
type MockRateTableCache struct {
	mock.Mock
}

func (m *MockRateTableCache) GetRates(ctx context.Context) ([]domain.ExchangeRate, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Bool(1), args.Error(2)
}

func (m *MockRateTableCache) SetRates(ctx context.Context, rates []domain.ExchangeRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

func (m *MockRateTableCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock GuaranteeLetterRepository ---
type MockGuaranteeLetterRepository struct {
	mock.Mock
}

func (m *MockGuaranteeLetterRepository) FindGuaranteeLetterByID(ctx context.Context, letterID string) (*domain.GuaranteeLetter, error) {
	args := m.Called(ctx, letterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuaranteeLetter), args.Error(1)
}

func (m *MockGuaranteeLetterRepository) ListGuaranteeLetters(ctx context.Context) ([]domain.GuaranteeLetter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GuaranteeLetter), args.Error(1)
}

func (m *MockGuaranteeLetterRepository) ListLettersExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.GuaranteeLetter, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GuaranteeLetter), args.Error(1)
}

func (m *MockGuaranteeLetterRepository) SaveGuaranteeLetter(ctx context.Context, letter domain.GuaranteeLetter) (*domain.GuaranteeLetter, error) {
	args := m.Called(ctx, letter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuaranteeLetter), args.Error(1)
}

func (m *MockGuaranteeLetterRepository) UpdateGuaranteeLetter(ctx context.Context, letter domain.GuaranteeLetter) (*domain.GuaranteeLetter, error) {
	args := m.Called(ctx, letter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuaranteeLetter), args.Error(1)
}

func (m *MockGuaranteeLetterRepository) DeleteGuaranteeLetter(ctx context.Context, letterID string) error {
	args := m.Called(ctx, letterID)
	return args.Error(0)
}

// --- Mock CreditRepository ---
type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) FindCreditByID(ctx context.Context, creditID string) (*domain.Credit, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) ListCredits(ctx context.Context) ([]domain.Credit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) SaveCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error) {
	args := m.Called(ctx, credit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) UpdateCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error) {
	args := m.Called(ctx, credit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) DeleteCredit(ctx context.Context, creditID string) error {
	args := m.Called(ctx, creditID)
	return args.Error(0)
}

func (m *MockCreditRepository) AddRepayment(ctx context.Context, creditID string, amount decimal.Decimal) (*domain.Credit, error) {
	args := m.Called(ctx, creditID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

// --- Mock SummaryRepository ---
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) CountByProject(ctx context.Context) ([]domain.ScopeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScopeCount), args.Error(1)
}

func (m *MockSummaryRepository) CountByBank(ctx context.Context) ([]domain.ScopeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScopeCount), args.Error(1)
}

// --- Mock RateTableSvc ---
type MockRateTableSvc struct {
	mock.Mock
}

func (m *MockRateTableSvc) RateTable(ctx context.Context) (fx.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(fx.RateTable), args.Error(1)
}

func (m *MockRateTableSvc) RefreshRateTable(ctx context.Context) (fx.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(fx.RateTable), args.Error(1)
}

func (m *MockRateTableSvc) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (fx.Conversion, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(fx.Conversion), args.Error(1)
}

// --- helpers ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
