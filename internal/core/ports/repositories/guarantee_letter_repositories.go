package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
)

// GuaranteeLetterReader defines read operations for guarantee letters
type GuaranteeLetterReader interface {
	FindGuaranteeLetterByID(ctx context.Context, letterID string) (*domain.GuaranteeLetter, error)

	// ListGuaranteeLetters retrieves all letters, newest first.
	ListGuaranteeLetters(ctx context.Context) ([]domain.GuaranteeLetter, error)

	// ListLettersExpiringBetween retrieves active letters whose expiry date falls in [from, to].
	ListLettersExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.GuaranteeLetter, error)
}

// GuaranteeLetterWriter defines write operations for guarantee letters
type GuaranteeLetterWriter interface {
	// SaveGuaranteeLetter inserts a letter. An unknown bank or project fails with ErrValidation.
	SaveGuaranteeLetter(ctx context.Context, letter domain.GuaranteeLetter) (*domain.GuaranteeLetter, error)

	UpdateGuaranteeLetter(ctx context.Context, letter domain.GuaranteeLetter) (*domain.GuaranteeLetter, error)

	DeleteGuaranteeLetter(ctx context.Context, letterID string) error
}

// GuaranteeLetterRepositoryFacade combines all letter-related repository interfaces
type GuaranteeLetterRepositoryFacade interface {
	GuaranteeLetterReader
	GuaranteeLetterWriter
}
