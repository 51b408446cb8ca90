package repositories

import (
	"context"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
)

// SummaryRepository computes the sidebar badge counts.
type SummaryRepository interface {
	// CountByProject returns every project with its letter and credit counts, ordered by name.
	CountByProject(ctx context.Context) ([]domain.ScopeCount, error)

	// CountByBank returns every bank with its letter and credit counts, ordered by name.
	CountByBank(ctx context.Context) ([]domain.ScopeCount, error)
}
