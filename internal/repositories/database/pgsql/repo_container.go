package pgsql

import (
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every postgres-backed repository. RateCache is left for the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProjectRepo:         newPgxProjectRepository(dbPool),
		BankRepo:            newPgxBankRepository(dbPool),
		CurrencyRepo:        newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo:    newPgxExchangeRateRepository(dbPool),
		GuaranteeLetterRepo: newPgxGuaranteeLetterRepository(dbPool),
		CreditRepo:          newPgxCreditRepository(dbPool),
		SummaryRepo:         newPgxSummaryRepository(dbPool),
	}
}
