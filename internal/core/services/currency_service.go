package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	currency := domain.Currency{
		Code:     strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:     strings.TrimSpace(req.Name),
		Symbol:   strings.TrimSpace(req.Symbol),
		IsActive: isActive,
	}

	saved, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Currency code already exists", slog.String("currency_code", currency.Code))
		} else {
			s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", currency.Code))
		}
		return nil, fmt.Errorf("failed to create currency %s: %w", currency.Code, err)
	}

	s.LogInfo(ctx, "Currency created", slog.String("currency_code", saved.Code))
	return saved, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyID, err)
	}
	return currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code %s: %w", code, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	currency, err := s.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: currency name must not be blank", apperrors.ErrValidation)
		}
		currency.Name = name
	}
	if req.Symbol != nil {
		currency.Symbol = strings.TrimSpace(*req.Symbol)
	}
	if req.IsActive != nil {
		currency.IsActive = *req.IsActive
	}

	updated, err := s.currencyRepo.UpdateCurrency(ctx, *currency)
	if err != nil {
		s.LogError(ctx, err, "Failed to update currency", slog.String("currency_id", currencyID))
		return nil, fmt.Errorf("failed to update currency %s: %w", currencyID, err)
	}
	return updated, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, currencyID string) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete currency", slog.String("currency_id", currencyID))
		}
		return fmt.Errorf("failed to delete currency %s: %w", currencyID, err)
	}
	s.LogInfo(ctx, "Currency deleted", slog.String("currency_id", currencyID))
	return nil
}
