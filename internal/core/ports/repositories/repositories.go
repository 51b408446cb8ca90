package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProjectRepo         ProjectRepositoryFacade
	BankRepo            BankRepositoryFacade
	CurrencyRepo        CurrencyRepositoryFacade
	ExchangeRateRepo    ExchangeRateRepositoryFacade
	GuaranteeLetterRepo GuaranteeLetterRepositoryFacade
	CreditRepo          CreditRepositoryFacade
	SummaryRepo         SummaryRepository
	RateCache           RateTableCache // nil when no cache is configured
}
