package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
)

type sidebarService struct {
	BaseService
	summaryRepo  portsrepo.SummaryRepository
	currencyRepo portsrepo.CurrencyReader
}

// NewSidebarService creates the service behind the sidebar tree.
func NewSidebarService(summaryRepo portsrepo.SummaryRepository, currencyRepo portsrepo.CurrencyReader) portssvc.SidebarSvc {
	return &sidebarService{summaryRepo: summaryRepo, currencyRepo: currencyRepo}
}

var _ portssvc.SidebarSvc = (*sidebarService)(nil)

func (s *sidebarService) GetSidebar(ctx context.Context) (*dto.SidebarResponse, error) {
	projects, err := s.summaryRepo.CountByProject(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count records per project")
		return nil, fmt.Errorf("failed to build sidebar: %w", err)
	}
	banks, err := s.summaryRepo.CountByBank(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count records per bank")
		return nil, fmt.Errorf("failed to build sidebar: %w", err)
	}
	currencies, err := s.currencyRepo.ListCurrencies(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active currencies")
		return nil, fmt.Errorf("failed to build sidebar: %w", err)
	}

	return &dto.SidebarResponse{
		Projects:   dto.ToSidebarEntries(projects),
		Banks:      dto.ToSidebarEntries(banks),
		Currencies: dto.ToListCurrencyResponse(currencies),
	}, nil
}
