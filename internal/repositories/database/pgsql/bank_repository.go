package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	"github.com/SscSPs/teminat_takip/internal/models"
	"github.com/SscSPs/teminat_takip/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankRepository struct {
	BaseRepository
}

// newPgxBankRepository creates a new repository for bank data.
func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

const bankColumns = `id, name, code, contact_info, status, created_at`

func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	m, err := queryOne[models.Bank](ctx, r.Pool,
		`SELECT `+bankColumns+` FROM banks WHERE id = $1`, bankID)
	if err != nil {
		return nil, mapReadError(err, "bank "+bankID)
	}
	d := mapping.ToDomainBank(m)
	return &d, nil
}

func (r *PgxBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	banks, err := queryAll(ctx, r.Pool, mapping.ToDomainBankSlice,
		`SELECT `+bankColumns+` FROM banks ORDER BY name, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	return banks, nil
}

func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) (*domain.Bank, error) {
	m := mapping.ToModelBank(bank)
	saved, err := queryOne[models.Bank](ctx, r.Pool, `
		INSERT INTO banks (name, code, contact_info, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bankColumns,
		m.Name, m.Code, m.ContactInfo, m.Status,
	)
	if err != nil {
		return nil, mapWriteError(err, "bank")
	}
	d := mapping.ToDomainBank(saved)
	return &d, nil
}

func (r *PgxBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) (*domain.Bank, error) {
	m := mapping.ToModelBank(bank)
	updated, err := queryOne[models.Bank](ctx, r.Pool, `
		UPDATE banks SET name = $2, code = $3, contact_info = $4, status = $5
		WHERE id = $1
		RETURNING `+bankColumns,
		m.ID, m.Name, m.Code, m.ContactInfo, m.Status,
	)
	if err != nil {
		return nil, mapWriteError(err, "bank "+bank.ID)
	}
	d := mapping.ToDomainBank(updated)
	return &d, nil
}

func (r *PgxBankRepository) DeleteBank(ctx context.Context, bankID string) error {
	return r.execDelete(ctx, `DELETE FROM banks WHERE id = $1`, bankID, "bank")
}
