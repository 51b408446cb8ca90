package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/shopspring/decimal"
)

type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	rates        *RateTableProvider
}

// ExchangeRateServiceOption is a functional option for configuring the exchange rate service
type ExchangeRateServiceOption func(*exchangeRateService)

// WithCurrencyValidation makes the service reject pairs whose currencies are not registered.
func WithCurrencyValidation(currencyRepo portsrepo.CurrencyReader) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.currencyRepo = currencyRepo
	}
}

// WithRateTableProvider shares an existing snapshot provider with the service.
func WithRateTableProvider(p *RateTableProvider) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.rates = p
	}
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, opts ...ExchangeRateServiceOption) portssvc.ExchangeRateSvcFacade {
	s := &exchangeRateService{rateRepo: rateRepo}
	for _, opt := range opts {
		opt(s)
	}
	if s.rates == nil {
		s.rates = NewRateTableProvider(rateRepo)
	}
	return s
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	from, to := fx.NormalizeCode(req.FromCurrency), fx.NormalizeCode(req.ToCurrency)
	if from == to {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrValidation)
	}
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if err := s.ensureCurrencies(ctx, from, to); err != nil {
		return nil, err
	}

	saved, err := s.rateRepo.SaveExchangeRate(ctx, domain.ExchangeRate{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         req.Rate,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to save exchange rate %s→%s: %w", from, to, err)
	}

	s.LogInfo(ctx, "Exchange rate saved", slog.String("from", from), slog.String("to", to), slog.String("rate", saved.Rate.String()))
	s.refreshAfterWrite(ctx)
	return saved, nil
}

func (s *exchangeRateService) GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate %s: %w", rateID, err)
	}
	return rate, nil
}

func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	from, to := fx.NormalizeCode(fromCode), fx.NormalizeCode(toCode)
	rate, err := s.rateRepo.FindExchangeRate(ctx, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s→%s", apperrors.ErrRateNotFound, from, to)
		}
		return nil, fmt.Errorf("failed to get exchange rate %s→%s: %w", from, to, err)
	}
	return rate, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

func (s *exchangeRateService) UpdateExchangeRate(ctx context.Context, rateID string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	existing, err := s.GetExchangeRateByID(ctx, rateID)
	if err != nil {
		return nil, err
	}

	existing.Rate = req.Rate
	updated, err := s.rateRepo.UpdateExchangeRate(ctx, *existing)
	if err != nil {
		s.LogError(ctx, err, "Failed to update exchange rate", slog.String("rate_id", rateID))
		return nil, fmt.Errorf("failed to update exchange rate %s: %w", rateID, err)
	}

	s.refreshAfterWrite(ctx)
	return updated, nil
}

func (s *exchangeRateService) DeleteExchangeRate(ctx context.Context, rateID string) error {
	if err := s.rateRepo.DeleteExchangeRate(ctx, rateID); err != nil {
		return fmt.Errorf("failed to delete exchange rate %s: %w", rateID, err)
	}
	s.LogInfo(ctx, "Exchange rate deleted", slog.String("rate_id", rateID))
	s.refreshAfterWrite(ctx)
	return nil
}

func (s *exchangeRateService) RateTable(ctx context.Context) (fx.RateTable, error) {
	return s.rates.Current(ctx)
}

func (s *exchangeRateService) RefreshRateTable(ctx context.Context) (fx.RateTable, error) {
	return s.rates.Refresh(ctx)
}

func (s *exchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (fx.Conversion, error) {
	if amount.IsNegative() {
		return fx.Conversion{}, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	table, err := s.rates.Current(ctx)
	if err != nil {
		return fx.Conversion{}, err
	}
	conversion := table.ConvertOrFallback(amount, fromCode, toCode)
	if !conversion.Converted {
		s.LogDebug(ctx, "No rate for pair, showing native amount", slog.String("from", fromCode), slog.String("to", toCode))
	}
	return conversion, nil
}

// refreshAfterWrite reloads the snapshot; a failed reload keeps the old one and is only logged.
func (s *exchangeRateService) refreshAfterWrite(ctx context.Context) {
	if _, err := s.rates.Refresh(ctx); err != nil {
		s.LogWarn(ctx, "Rate table not refreshed after write", slog.String("error", err.Error()))
	}
}

func (s *exchangeRateService) ensureCurrencies(ctx context.Context, codes ...string) error {
	if s.currencyRepo == nil {
		return nil
	}
	for _, code := range codes {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogWarn(ctx, "Unknown currency code in exchange rate", slog.String("currency_code", code))
				return fmt.Errorf("%w: currency code %s not found", apperrors.ErrValidation, code)
			}
			return fmt.Errorf("failed to validate currency code %s: %w", code, err)
		}
	}
	return nil
}
