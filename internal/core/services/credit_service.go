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
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/shopspring/decimal"
)

type creditService struct {
	BaseService
	creditRepo portsrepo.CreditRepositoryFacade
	relations  relationLoader
}

// NewCreditService creates a new credit service.
func NewCreditService(
	creditRepo portsrepo.CreditRepositoryFacade,
	bankRepo portsrepo.BankReader,
	projectRepo portsrepo.ProjectReader,
) portssvc.CreditSvcFacade {
	return &creditService{
		creditRepo: creditRepo,
		relations:  relationLoader{bankRepo: bankRepo, projectRepo: projectRepo},
	}
}

var _ portssvc.CreditSvcFacade = (*creditService)(nil)

func (s *creditService) CreateCredit(ctx context.Context, req dto.CreateCreditRequest) (*domain.Credit, error) {
	creditDate, err := dto.ParseDate(req.CreditDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid creditDate: %v", apperrors.ErrValidation, err)
	}
	maturityDate, err := dto.ParseDate(req.MaturityDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid maturityDate: %v", apperrors.ErrValidation, err)
	}

	status := req.Status
	if status == "" {
		status = domain.CreditInProgress
	}
	repaid := decimal.Zero
	if req.TotalRepaidAmount != nil {
		repaid = *req.TotalRepaidAmount
	}

	credit := domain.Credit{
		BankID:            req.BankID,
		ProjectID:         req.ProjectID,
		PrincipalAmount:   req.PrincipalAmount,
		InterestAmount:    req.InterestAmount,
		TotalRepaidAmount: repaid,
		Currency:          fx.NormalizeCode(req.Currency),
		CreditDate:        creditDate,
		MaturityDate:      maturityDate,
		Status:            status,
		Notes:             strings.TrimSpace(req.Notes),
	}
	if err := validateCredit(credit); err != nil {
		return nil, err
	}

	saved, err := s.creditRepo.SaveCredit(ctx, credit)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save credit", slog.String("bank_id", credit.BankID), slog.String("project_id", credit.ProjectID))
		return nil, fmt.Errorf("failed to create credit: %w", err)
	}

	s.LogInfo(ctx, "Credit created", slog.String("credit_id", saved.ID))
	return saved, nil
}

func (s *creditService) GetCreditByID(ctx context.Context, creditID string) (*domain.Credit, error) {
	credit, err := s.creditRepo.FindCreditByID(ctx, creditID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find credit", slog.String("credit_id", creditID))
		}
		return nil, fmt.Errorf("failed to get credit %s: %w", creditID, err)
	}
	return credit, nil
}

func (s *creditService) ListCredits(ctx context.Context) ([]domain.Credit, error) {
	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list credits")
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	if credits == nil {
		return []domain.Credit{}, nil
	}
	return credits, nil
}

func (s *creditService) ListCreditsWithRelations(ctx context.Context) ([]domain.CreditWithRelations, error) {
	credits, err := s.ListCredits(ctx)
	if err != nil {
		return nil, err
	}
	idx, err := s.relations.load(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load credit relations")
		return nil, err
	}
	return idx.credits(credits), nil
}

func (s *creditService) UpdateCredit(ctx context.Context, creditID string, req dto.UpdateCreditRequest) (*domain.Credit, error) {
	credit, err := s.GetCreditByID(ctx, creditID)
	if err != nil {
		return nil, err
	}

	if req.BankID != nil {
		credit.BankID = *req.BankID
	}
	if req.ProjectID != nil {
		credit.ProjectID = *req.ProjectID
	}
	if req.PrincipalAmount != nil {
		credit.PrincipalAmount = *req.PrincipalAmount
	}
	if req.InterestAmount != nil {
		credit.InterestAmount = *req.InterestAmount
	}
	if req.TotalRepaidAmount != nil {
		if req.TotalRepaidAmount.LessThan(credit.TotalRepaidAmount) {
			return nil, fmt.Errorf("%w: totalRepaidAmount cannot decrease from %s to %s",
				apperrors.ErrValidation, credit.TotalRepaidAmount.StringFixed(2), req.TotalRepaidAmount.StringFixed(2))
		}
		credit.TotalRepaidAmount = *req.TotalRepaidAmount
	}
	if req.Currency != nil {
		credit.Currency = fx.NormalizeCode(*req.Currency)
	}
	if req.CreditDate != nil {
		if credit.CreditDate, err = dto.ParseDate(*req.CreditDate); err != nil {
			return nil, fmt.Errorf("%w: invalid creditDate: %v", apperrors.ErrValidation, err)
		}
	}
	if req.MaturityDate != nil {
		if credit.MaturityDate, err = dto.ParseDate(*req.MaturityDate); err != nil {
			return nil, fmt.Errorf("%w: invalid maturityDate: %v", apperrors.ErrValidation, err)
		}
	}
	if req.Status != nil {
		credit.Status = *req.Status
	}
	if req.Notes != nil {
		credit.Notes = strings.TrimSpace(*req.Notes)
	}

	if err := validateCredit(*credit); err != nil {
		return nil, err
	}

	updated, err := s.creditRepo.UpdateCredit(ctx, *credit)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update credit", slog.String("credit_id", creditID))
		return nil, fmt.Errorf("failed to update credit %s: %w", creditID, err)
	}
	return updated, nil
}

func (s *creditService) DeleteCredit(ctx context.Context, creditID string) error {
	if err := s.creditRepo.DeleteCredit(ctx, creditID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete credit", slog.String("credit_id", creditID))
		}
		return fmt.Errorf("failed to delete credit %s: %w", creditID, err)
	}
	s.LogInfo(ctx, "Credit deleted", slog.String("credit_id", creditID))
	return nil
}

func (s *creditService) RecordRepayment(ctx context.Context, creditID string, req dto.RepaymentRequest) (*domain.Credit, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: repayment amount must be positive", apperrors.ErrValidation)
	}

	credit, err := s.creditRepo.AddRepayment(ctx, creditID, req.Amount)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to record repayment", slog.String("credit_id", creditID))
		return nil, fmt.Errorf("failed to record repayment for credit %s: %w", creditID, err)
	}

	s.LogInfo(ctx, "Repayment recorded",
		slog.String("credit_id", creditID),
		slog.String("amount", req.Amount.String()),
		slog.String("total_repaid", credit.TotalRepaidAmount.String()))
	return credit, nil
}

func validateCredit(c domain.Credit) error {
	if !c.Status.Valid() {
		return fmt.Errorf("%w: unknown credit status %q", apperrors.ErrValidation, c.Status)
	}
	if c.MaturityDate.Before(c.CreditDate) {
		return fmt.Errorf("%w: maturityDate must not be before creditDate", apperrors.ErrValidation)
	}
	return nil
}
