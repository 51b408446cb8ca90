package services

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a currency by its ID.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves the currencies, optionally only the active ones.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error)
	DeleteCurrency(ctx context.Context, currencyID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// GetExchangeRate retrieves the stored rate of an ordered pair.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate stores the rate of a pair, replacing an existing one.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
	UpdateExchangeRate(ctx context.Context, rateID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error)
	DeleteExchangeRate(ctx context.Context, rateID string) error
}

// RateTableSvc hands out rate table snapshots and converts amounts against them.
type RateTableSvc interface {
	// RateTable returns the current snapshot, loading it on first use.
	RateTable(ctx context.Context) (fx.RateTable, error)

	// RefreshRateTable rebuilds the snapshot from the database.
	RefreshRateTable(ctx context.Context) (fx.RateTable, error)

	// Convert converts amount with the current snapshot, falling back to the native amount.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (fx.Conversion, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
	RateTableSvc
}
