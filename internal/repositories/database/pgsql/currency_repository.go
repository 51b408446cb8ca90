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

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencyColumns = `id, code, name, symbol, is_active`

func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	m, err := queryOne[models.Currency](ctx, r.Pool,
		`SELECT `+currencyColumns+` FROM currencies WHERE id = $1`, currencyID)
	if err != nil {
		return nil, mapReadError(err, "currency "+currencyID)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	m, err := queryOne[models.Currency](ctx, r.Pool,
		`SELECT `+currencyColumns+` FROM currencies WHERE code = $1`, currencyCode)
	if err != nil {
		return nil, mapReadError(err, "currency "+currencyCode)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrencies retrieves currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code`

	currencies, err := queryAll(ctx, r.Pool, mapping.ToDomainCurrencySlice, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	m := mapping.ToModelCurrency(currency)
	saved, err := queryOne[models.Currency](ctx, r.Pool, `
		INSERT INTO currencies (code, name, symbol, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING `+currencyColumns,
		m.Code, m.Name, m.Symbol, m.IsActive,
	)
	if err != nil {
		return nil, mapWriteError(err, "currency "+currency.Code)
	}
	d := mapping.ToDomainCurrency(saved)
	return &d, nil
}

func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	m := mapping.ToModelCurrency(currency)
	updated, err := queryOne[models.Currency](ctx, r.Pool, `
		UPDATE currencies SET code = $2, name = $3, symbol = $4, is_active = $5
		WHERE id = $1
		RETURNING `+currencyColumns,
		m.ID, m.Code, m.Name, m.Symbol, m.IsActive,
	)
	if err != nil {
		return nil, mapWriteError(err, "currency "+currency.ID)
	}
	d := mapping.ToDomainCurrency(updated)
	return &d, nil
}

func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	return r.execDelete(ctx, `DELETE FROM currencies WHERE id = $1`, currencyID, "currency")
}
