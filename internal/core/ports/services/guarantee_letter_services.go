package services

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/dto"
)

// GuaranteeLetterReaderSvc defines read operations for guarantee letters
type GuaranteeLetterReaderSvc interface {
	GetGuaranteeLetterByID(ctx context.Context, letterID string) (*domain.GuaranteeLetter, error)
	ListGuaranteeLetters(ctx context.Context) ([]domain.GuaranteeLetter, error)

	// ListGuaranteeLettersWithRelations returns every letter joined with its bank and project.
	ListGuaranteeLettersWithRelations(ctx context.Context) ([]domain.GuaranteeLetterWithRelations, error)

	// ListExpiringLetters returns active letters expiring within the next withinDays days.
	ListExpiringLetters(ctx context.Context, withinDays int) ([]domain.GuaranteeLetterWithRelations, error)
}

// GuaranteeLetterWriterSvc defines write operations for guarantee letters
type GuaranteeLetterWriterSvc interface {
	CreateGuaranteeLetter(ctx context.Context, req dto.CreateGuaranteeLetterRequest) (*domain.GuaranteeLetter, error)
	UpdateGuaranteeLetter(ctx context.Context, letterID string, req dto.UpdateGuaranteeLetterRequest) (*domain.GuaranteeLetter, error)
	DeleteGuaranteeLetter(ctx context.Context, letterID string) error
}

// GuaranteeLetterSvcFacade combines all letter-related service interfaces
type GuaranteeLetterSvcFacade interface {
	GuaranteeLetterReaderSvc
	GuaranteeLetterWriterSvc
}

// CreditReaderSvc defines read operations for credits
type CreditReaderSvc interface {
	GetCreditByID(ctx context.Context, creditID string) (*domain.Credit, error)
	ListCredits(ctx context.Context) ([]domain.Credit, error)
	ListCreditsWithRelations(ctx context.Context) ([]domain.CreditWithRelations, error)
}

// CreditWriterSvc defines write operations for credits
type CreditWriterSvc interface {
	CreateCredit(ctx context.Context, req dto.CreateCreditRequest) (*domain.Credit, error)
	UpdateCredit(ctx context.Context, creditID string, req dto.UpdateCreditRequest) (*domain.Credit, error)
	DeleteCredit(ctx context.Context, creditID string) error

	// RecordRepayment adds amount to the repaid total of a credit.
	RecordRepayment(ctx context.Context, creditID string, req dto.RepaymentRequest) (*domain.Credit, error)
}

// CreditSvcFacade combines all credit-related service interfaces
type CreditSvcFacade interface {
	CreditReaderSvc
	CreditWriterSvc
}
