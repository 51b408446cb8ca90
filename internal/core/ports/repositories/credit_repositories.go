package repositories

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreditReader defines read operations for credits
type CreditReader interface {
	FindCreditByID(ctx context.Context, creditID string) (*domain.Credit, error)

	// ListCredits retrieves all credits, newest first.
	ListCredits(ctx context.Context) ([]domain.Credit, error)
}

// CreditWriter defines write operations for credits
type CreditWriter interface {
	SaveCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error)

	// UpdateCredit overwrites a credit. Lowering the repaid amount fails with ErrValidation.
	UpdateCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error)

	DeleteCredit(ctx context.Context, creditID string) error

	// AddRepayment increases the repaid amount in a single statement.
	AddRepayment(ctx context.Context, creditID string, amount decimal.Decimal) (*domain.Credit, error)
}

// CreditRepositoryFacade combines all credit-related repository interfaces
type CreditRepositoryFacade interface {
	CreditReader
	CreditWriter
}

// CreditRepositoryWithTx extends CreditRepositoryFacade with transaction capabilities
type CreditRepositoryWithTx interface {
	CreditRepositoryFacade
	TransactionManager
}
