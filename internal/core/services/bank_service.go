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

type bankService struct {
	BaseService
	bankRepo portsrepo.BankRepositoryFacade
}

// NewBankService creates a new bank service.
func NewBankService(bankRepo portsrepo.BankRepositoryFacade) portssvc.BankSvcFacade {
	return &bankService{bankRepo: bankRepo}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

func (s *bankService) CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: bank name must not be blank", apperrors.ErrValidation)
	}
	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	bank, err := s.bankRepo.SaveBank(ctx, domain.Bank{
		Name:        name,
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		ContactInfo: strings.TrimSpace(req.ContactInfo),
		Status:      status,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save bank", slog.String("name", name))
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}

	s.LogInfo(ctx, "Bank created", slog.String("bank_id", bank.ID))
	return bank, nil
}

func (s *bankService) GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank", slog.String("bank_id", bankID))
		}
		return nil, fmt.Errorf("failed to get bank %s: %w", bankID, err)
	}
	return bank, nil
}

func (s *bankService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	banks, err := s.bankRepo.ListBanks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	if banks == nil {
		return []domain.Bank{}, nil
	}
	return banks, nil
}

func (s *bankService) UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest) (*domain.Bank, error) {
	bank, err := s.GetBankByID(ctx, bankID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: bank name must not be blank", apperrors.ErrValidation)
		}
		bank.Name = name
	}
	if req.Code != nil {
		bank.Code = strings.ToUpper(strings.TrimSpace(*req.Code))
	}
	if req.ContactInfo != nil {
		bank.ContactInfo = strings.TrimSpace(*req.ContactInfo)
	}
	if req.Status != nil {
		bank.Status = *req.Status
	}

	updated, err := s.bankRepo.UpdateBank(ctx, *bank)
	if err != nil {
		s.LogError(ctx, err, "Failed to update bank", slog.String("bank_id", bankID))
		return nil, fmt.Errorf("failed to update bank %s: %w", bankID, err)
	}
	return updated, nil
}

func (s *bankService) DeleteBank(ctx context.Context, bankID string) error {
	if err := s.bankRepo.DeleteBank(ctx, bankID); err != nil {
		if errors.Is(err, apperrors.ErrReferenced) {
			s.LogWarn(ctx, "Refusing to delete referenced bank", slog.String("bank_id", bankID))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete bank", slog.String("bank_id", bankID))
		}
		return fmt.Errorf("failed to delete bank %s: %w", bankID, err)
	}
	s.LogInfo(ctx, "Bank deleted", slog.String("bank_id", bankID))
	return nil
}
