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

// PgxExchangeRateRepository implements the exchange rate repository using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `id, from_currency, to_currency, rate, updated_at`

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	m, err := queryOne[models.ExchangeRate](ctx, r.Pool,
		`SELECT `+exchangeRateColumns+` FROM exchange_rates WHERE id = $1`, rateID)
	if err != nil {
		return nil, mapReadError(err, "exchange rate "+rateID)
	}
	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// FindExchangeRate retrieves the rate of the exact ordered pair. The inverse pair is never consulted.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	m, err := queryOne[models.ExchangeRate](ctx, r.Pool,
		`SELECT `+exchangeRateColumns+` FROM exchange_rates WHERE from_currency = $1 AND to_currency = $2`,
		fromCurrency, toCurrency)
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("exchange rate %s/%s", fromCurrency, toCurrency))
	}
	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// ListExchangeRates returns the rows oldest first so a rate table built from them keeps the newest write.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := queryAll(ctx, r.Pool, mapping.ToDomainExchangeRateSlice,
		`SELECT `+exchangeRateColumns+` FROM exchange_rates ORDER BY updated_at, from_currency, to_currency`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}

// SaveExchangeRate inserts the rate of a pair, replacing the stored rate when the pair exists.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	m := mapping.ToModelExchangeRate(rate)
	saved, err := queryOne[models.ExchangeRate](ctx, r.Pool, `
		INSERT INTO exchange_rates (from_currency, to_currency, rate, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (from_currency, to_currency) DO UPDATE SET
			rate = EXCLUDED.rate,
			updated_at = EXCLUDED.updated_at
		RETURNING `+exchangeRateColumns,
		m.FromCurrency, m.ToCurrency, m.Rate,
	)
	if err != nil {
		return nil, mapWriteError(err, fmt.Sprintf("exchange rate %s/%s", rate.FromCurrency, rate.ToCurrency))
	}
	d := mapping.ToDomainExchangeRate(saved)
	return &d, nil
}

func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	updated, err := queryOne[models.ExchangeRate](ctx, r.Pool, `
		UPDATE exchange_rates SET rate = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+exchangeRateColumns,
		rate.ID, rate.Rate,
	)
	if err != nil {
		return nil, mapWriteError(err, "exchange rate "+rate.ID)
	}
	d := mapping.ToDomainExchangeRate(updated)
	return &d, nil
}

func (r *PgxExchangeRateRepository) DeleteExchangeRate(ctx context.Context, rateID string) error {
	return r.execDelete(ctx, `DELETE FROM exchange_rates WHERE id = $1`, rateID, "exchange rate")
}
