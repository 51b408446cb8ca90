package repositories

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its ID.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies ordered by code, optionally only the active ones.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency. A taken code fails with ErrDuplicate.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	DeleteCurrency(ctx context.Context, currencyID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
