package services

import (
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// One rate table snapshot is shared by conversions, grids and the refresh job
	var providerOpts []RateTableProviderOption
	if repos.RateCache != nil {
		providerOpts = append(providerOpts, WithRateTableCache(repos.RateCache))
	}
	rateTables := NewRateTableProvider(repos.ExchangeRateRepo, providerOpts...)

	container.Project = NewProjectService(repos.ProjectRepo)
	container.Bank = NewBankService(repos.BankRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(
		repos.ExchangeRateRepo,
		WithCurrencyValidation(repos.CurrencyRepo),
		WithRateTableProvider(rateTables),
	)
	container.GuaranteeLetter = NewGuaranteeLetterService(
		repos.GuaranteeLetterRepo,
		repos.BankRepo,
		repos.ProjectRepo,
		WithLetterAmountEnforcement(cfg.EnforceLetterAmount),
	)
	container.Credit = NewCreditService(repos.CreditRepo, repos.BankRepo, repos.ProjectRepo)
	container.Grid = NewGridService(
		repos.GuaranteeLetterRepo,
		repos.CreditRepo,
		repos.BankRepo,
		repos.ProjectRepo,
		repos.CurrencyRepo,
		container.ExchangeRate,
		WithDisplayLocale(cfg.DisplayLocale),
	)
	container.Sidebar = NewSidebarService(repos.SummaryRepo, repos.CurrencyRepo)

	return container
}
