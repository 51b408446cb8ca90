package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
)

type guaranteeLetterService struct {
	BaseService
	letterRepo          portsrepo.GuaranteeLetterRepositoryFacade
	relations           relationLoader
	enforceLetterAmount bool
	now                 func() time.Time
}

// GuaranteeLetterServiceOption is a functional option for configuring the letter service
type GuaranteeLetterServiceOption func(*guaranteeLetterService)

// WithLetterAmountEnforcement rejects letters whose amount differs from
// contractAmount × letterPercentage / 100.
func WithLetterAmountEnforcement(enforce bool) GuaranteeLetterServiceOption {
	return func(s *guaranteeLetterService) {
		s.enforceLetterAmount = enforce
	}
}

// WithLetterClock overrides the time source used for expiry windows.
func WithLetterClock(now func() time.Time) GuaranteeLetterServiceOption {
	return func(s *guaranteeLetterService) {
		s.now = now
	}
}

// NewGuaranteeLetterService creates a new guarantee letter service.
func NewGuaranteeLetterService(
	letterRepo portsrepo.GuaranteeLetterRepositoryFacade,
	bankRepo portsrepo.BankReader,
	projectRepo portsrepo.ProjectReader,
	opts ...GuaranteeLetterServiceOption,
) portssvc.GuaranteeLetterSvcFacade {
	s := &guaranteeLetterService{
		letterRepo: letterRepo,
		relations:  relationLoader{bankRepo: bankRepo, projectRepo: projectRepo},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.GuaranteeLetterSvcFacade = (*guaranteeLetterService)(nil)

func (s *guaranteeLetterService) CreateGuaranteeLetter(ctx context.Context, req dto.CreateGuaranteeLetterRequest) (*domain.GuaranteeLetter, error) {
	purchaseDate, err := dto.ParseDate(req.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid purchaseDate: %v", apperrors.ErrValidation, err)
	}
	letterDate, err := dto.ParseDate(req.LetterDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid letterDate: %v", apperrors.ErrValidation, err)
	}
	expiryDate, err := dto.ParseOptionalDate(req.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expiryDate: %v", apperrors.ErrValidation, err)
	}

	status := req.Status
	if status == "" {
		status = domain.LetterActive
	}

	letter := domain.GuaranteeLetter{
		BankID:            req.BankID,
		ProjectID:         req.ProjectID,
		LetterType:        req.LetterType,
		ContractAmount:    req.ContractAmount,
		LetterPercentage:  req.LetterPercentage,
		CommissionRate:    req.CommissionRate,
		BsmvAndOtherCosts: req.BsmvAndOtherCosts,
		Currency:          fx.NormalizeCode(req.Currency),
		PurchaseDate:      purchaseDate,
		LetterDate:        letterDate,
		ExpiryDate:        expiryDate,
		Status:            status,
		Notes:             strings.TrimSpace(req.Notes),
	}
	if req.LetterAmount != nil {
		letter.LetterAmount = *req.LetterAmount
	} else {
		letter.LetterAmount = letter.ExpectedLetterAmount()
	}

	if err := s.validate(ctx, letter); err != nil {
		return nil, err
	}

	saved, err := s.letterRepo.SaveGuaranteeLetter(ctx, letter)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save guarantee letter", slog.String("bank_id", letter.BankID), slog.String("project_id", letter.ProjectID))
		return nil, fmt.Errorf("failed to create guarantee letter: %w", err)
	}

	s.LogInfo(ctx, "Guarantee letter created", slog.String("letter_id", saved.ID))
	return saved, nil
}

func (s *guaranteeLetterService) GetGuaranteeLetterByID(ctx context.Context, letterID string) (*domain.GuaranteeLetter, error) {
	letter, err := s.letterRepo.FindGuaranteeLetterByID(ctx, letterID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find guarantee letter", slog.String("letter_id", letterID))
		}
		return nil, fmt.Errorf("failed to get guarantee letter %s: %w", letterID, err)
	}
	return letter, nil
}

func (s *guaranteeLetterService) ListGuaranteeLetters(ctx context.Context) ([]domain.GuaranteeLetter, error) {
	letters, err := s.letterRepo.ListGuaranteeLetters(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list guarantee letters")
		return nil, fmt.Errorf("failed to list guarantee letters: %w", err)
	}
	if letters == nil {
		return []domain.GuaranteeLetter{}, nil
	}
	return letters, nil
}

func (s *guaranteeLetterService) ListGuaranteeLettersWithRelations(ctx context.Context) ([]domain.GuaranteeLetterWithRelations, error) {
	letters, err := s.ListGuaranteeLetters(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := s.relations.load(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load letter relations")
		return nil, err
	}
	return idx.letters(letters), nil
}

func (s *guaranteeLetterService) ListExpiringLetters(ctx context.Context, withinDays int) ([]domain.GuaranteeLetterWithRelations, error) {
	if withinDays < 0 {
		return nil, fmt.Errorf("%w: days must not be negative", apperrors.ErrValidation)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	until := today.AddDate(0, 0, withinDays)

	letters, err := s.letterRepo.ListLettersExpiringBetween(ctx, today, until)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expiring letters", slog.Int("within_days", withinDays))
		return nil, fmt.Errorf("failed to list expiring letters: %w", err)
	}
	idx, err := s.relations.load(ctx)
	if err != nil {
		return nil, err
	}
	return idx.letters(letters), nil
}

func (s *guaranteeLetterService) UpdateGuaranteeLetter(ctx context.Context, letterID string, req dto.UpdateGuaranteeLetterRequest) (*domain.GuaranteeLetter, error) {
	letter, err := s.GetGuaranteeLetterByID(ctx, letterID)
	if err != nil {
		return nil, err
	}

	contractChanged := false
	if req.BankID != nil {
		letter.BankID = *req.BankID
	}
	if req.ProjectID != nil {
		letter.ProjectID = *req.ProjectID
	}
	if req.LetterType != nil {
		letter.LetterType = *req.LetterType
	}
	if req.ContractAmount != nil {
		letter.ContractAmount = *req.ContractAmount
		contractChanged = true
	}
	if req.LetterPercentage != nil {
		letter.LetterPercentage = *req.LetterPercentage
		contractChanged = true
	}
	if req.LetterAmount != nil {
		letter.LetterAmount = *req.LetterAmount
	} else if contractChanged && s.enforceLetterAmount {
		letter.LetterAmount = letter.ExpectedLetterAmount()
	}
	if req.CommissionRate != nil {
		letter.CommissionRate = *req.CommissionRate
	}
	if req.BsmvAndOtherCosts != nil {
		letter.BsmvAndOtherCosts = *req.BsmvAndOtherCosts
	}
	if req.Currency != nil {
		letter.Currency = fx.NormalizeCode(*req.Currency)
	}
	if req.PurchaseDate != nil {
		if letter.PurchaseDate, err = dto.ParseDate(*req.PurchaseDate); err != nil {
			return nil, fmt.Errorf("%w: invalid purchaseDate: %v", apperrors.ErrValidation, err)
		}
	}
	if req.LetterDate != nil {
		if letter.LetterDate, err = dto.ParseDate(*req.LetterDate); err != nil {
			return nil, fmt.Errorf("%w: invalid letterDate: %v", apperrors.ErrValidation, err)
		}
	}
	if req.ExpiryDate != nil {
		if letter.ExpiryDate, err = dto.ParseOptionalDate(req.ExpiryDate); err != nil {
			return nil, fmt.Errorf("%w: invalid expiryDate: %v", apperrors.ErrValidation, err)
		}
	}
	if req.Status != nil {
		letter.Status = *req.Status
	}
	if req.Notes != nil {
		letter.Notes = strings.TrimSpace(*req.Notes)
	}

	if err := s.validate(ctx, *letter); err != nil {
		return nil, err
	}

	updated, err := s.letterRepo.UpdateGuaranteeLetter(ctx, *letter)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update guarantee letter", slog.String("letter_id", letterID))
		return nil, fmt.Errorf("failed to update guarantee letter %s: %w", letterID, err)
	}
	return updated, nil
}

func (s *guaranteeLetterService) DeleteGuaranteeLetter(ctx context.Context, letterID string) error {
	if err := s.letterRepo.DeleteGuaranteeLetter(ctx, letterID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete guarantee letter", slog.String("letter_id", letterID))
		}
		return fmt.Errorf("failed to delete guarantee letter %s: %w", letterID, err)
	}
	s.LogInfo(ctx, "Guarantee letter deleted", slog.String("letter_id", letterID))
	return nil
}

func (s *guaranteeLetterService) validate(ctx context.Context, letter domain.GuaranteeLetter) error {
	if !letter.LetterType.Valid() {
		return fmt.Errorf("%w: unknown letter type %q", apperrors.ErrValidation, letter.LetterType)
	}
	if !letter.Status.Valid() {
		return fmt.Errorf("%w: unknown letter status %q", apperrors.ErrValidation, letter.Status)
	}
	if s.enforceLetterAmount && !letter.LetterAmountConsistent() {
		s.LogWarn(ctx, "Letter amount does not match contract amount and percentage",
			slog.String("letter_amount", letter.LetterAmount.String()),
			slog.String("expected", letter.ExpectedLetterAmount().String()))
		return fmt.Errorf("%w: letterAmount %s does not match expected %s",
			apperrors.ErrValidation, letter.LetterAmount.StringFixed(2), letter.ExpectedLetterAmount().StringFixed(2))
	}
	return nil
}
