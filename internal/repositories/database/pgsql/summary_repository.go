package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	"github.com/SscSPs/teminat_takip/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSummaryRepository computes sidebar counts with grouped queries.
type PgxSummaryRepository struct {
	BaseRepository
}

func newPgxSummaryRepository(pool *pgxpool.Pool) portsrepo.SummaryRepository {
	return &PgxSummaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SummaryRepository = (*PgxSummaryRepository)(nil)

// countQuery counts letters and credits per row of table, keyed by fk.
// Correlated subqueries avoid the row multiplication of joining both child tables.
func countQuery(table, fk string) string {
	return fmt.Sprintf(`
		SELECT t.id, t.name,
			(SELECT COUNT(*) FROM guarantee_letters gl WHERE gl.%[2]s = t.id) AS letter_count,
			(SELECT COUNT(*) FROM credits c WHERE c.%[2]s = t.id) AS credit_count
		FROM %[1]s t
		ORDER BY t.name, t.id`, table, fk)
}

func (r *PgxSummaryRepository) CountByProject(ctx context.Context) ([]domain.ScopeCount, error) {
	counts, err := queryAll(ctx, r.Pool, mapping.ToDomainScopeCountSlice, countQuery("projects", "project_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count records by project: %w", err)
	}
	return counts, nil
}

func (r *PgxSummaryRepository) CountByBank(ctx context.Context) ([]domain.ScopeCount, error) {
	counts, err := queryAll(ctx, r.Pool, mapping.ToDomainScopeCountSlice, countQuery("banks", "bank_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to count records by bank: %w", err)
	}
	return counts, nil
}
