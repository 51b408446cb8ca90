package services

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/dto"
)

// ProjectReaderSvc defines read operations for projects
type ProjectReaderSvc interface {
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for projects
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}

// BankReaderSvc defines read operations for banks
type BankReaderSvc interface {
	GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// BankWriterSvc defines write operations for banks
type BankWriterSvc interface {
	CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, error)
	UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest) (*domain.Bank, error)
	DeleteBank(ctx context.Context, bankID string) error
}

// BankSvcFacade combines all bank-related service interfaces
type BankSvcFacade interface {
	BankReaderSvc
	BankWriterSvc
}
