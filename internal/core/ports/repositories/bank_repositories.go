package repositories

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
)

// BankReader defines read operations for bank data
type BankReader interface {
	// FindBankByID retrieves a bank by its ID.
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)

	// ListBanks retrieves all banks ordered by name.
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// BankWriter defines write operations for bank data
type BankWriter interface {
	SaveBank(ctx context.Context, bank domain.Bank) (*domain.Bank, error)
	UpdateBank(ctx context.Context, bank domain.Bank) (*domain.Bank, error)
	// DeleteBank removes a bank. Fails with ErrReferenced while letters or credits point at it.
	DeleteBank(ctx context.Context, bankID string) error
}

// BankRepositoryFacade combines all bank-related repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
}
