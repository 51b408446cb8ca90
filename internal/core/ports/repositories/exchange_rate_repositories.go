package repositories

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves an exchange rate by its ID.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// FindExchangeRate retrieves the rate of the exact ordered pair.
	FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every rate ordered by last update, oldest first.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts the rate of a pair, replacing the existing one.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)

	// UpdateExchangeRate changes the rate stored under rate.ID.
	UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)

	DeleteExchangeRate(ctx context.Context, rateID string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// RateTableCache keeps a copy of the rate rows outside the database.
type RateTableCache interface {
	// GetRates returns the cached rows and whether the cache held any.
	GetRates(ctx context.Context) ([]domain.ExchangeRate, bool, error)

	// SetRates replaces the cached rows.
	SetRates(ctx context.Context, rates []domain.ExchangeRate) error

	// Invalidate drops the cached rows.
	Invalidate(ctx context.Context) error
}
