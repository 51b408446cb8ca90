package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	"github.com/SscSPs/teminat_takip/internal/models"
	"github.com/SscSPs/teminat_takip/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCreditRepository struct {
	BaseRepository
}

func newPgxCreditRepository(pool *pgxpool.Pool) portsrepo.CreditRepositoryWithTx {
	return &PgxCreditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CreditRepositoryWithTx = (*PgxCreditRepository)(nil)

const creditColumns = `
	id, bank_id, project_id, principal_amount, interest_amount, total_repaid_amount,
	currency, credit_date, maturity_date, status, notes, created_at, updated_at`

func (r *PgxCreditRepository) FindCreditByID(ctx context.Context, creditID string) (*domain.Credit, error) {
	m, err := queryOne[models.Credit](ctx, r.Pool,
		`SELECT `+creditColumns+` FROM credits WHERE id = $1`, creditID)
	if err != nil {
		return nil, mapReadError(err, "credit "+creditID)
	}
	d := mapping.ToDomainCredit(m)
	return &d, nil
}

func (r *PgxCreditRepository) ListCredits(ctx context.Context) ([]domain.Credit, error) {
	credits, err := queryAll(ctx, r.Pool, mapping.ToDomainCreditSlice,
		`SELECT `+creditColumns+` FROM credits ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	return credits, nil
}

func (r *PgxCreditRepository) SaveCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error) {
	m := mapping.ToModelCredit(credit)
	saved, err := queryOne[models.Credit](ctx, r.Pool, `
		INSERT INTO credits (
			bank_id, project_id, principal_amount, interest_amount, total_repaid_amount,
			currency, credit_date, maturity_date, status, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+creditColumns,
		m.BankID, m.ProjectID, m.PrincipalAmount, m.InterestAmount, m.TotalRepaidAmount,
		m.Currency, m.CreditDate, m.MaturityDate, m.Status, m.Notes,
	)
	if err != nil {
		return nil, mapWriteError(err, "credit")
	}
	d := mapping.ToDomainCredit(saved)
	return &d, nil
}

// UpdateCredit locks the row so a concurrent repayment cannot slip under the new repaid total.
// A repayment recorded after the caller read the credit is kept, never overwritten.
func (r *PgxCreditRepository) UpdateCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	var currentRepaid decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT total_repaid_amount FROM credits WHERE id = $1 FOR UPDATE`, credit.ID).Scan(&currentRepaid)
	if err != nil {
		return nil, mapReadError(err, "credit "+credit.ID)
	}
	credit.TotalRepaidAmount = keepRepaid(credit.TotalRepaidAmount, currentRepaid)

	m := mapping.ToModelCredit(credit)
	updated, err := queryOne[models.Credit](ctx, tx, `
		UPDATE credits SET
			bank_id = $2, project_id = $3, principal_amount = $4, interest_amount = $5,
			total_repaid_amount = $6, currency = $7, credit_date = $8, maturity_date = $9,
			status = $10, notes = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING `+creditColumns,
		m.ID, m.BankID, m.ProjectID, m.PrincipalAmount, m.InterestAmount,
		m.TotalRepaidAmount, m.Currency, m.CreditDate, m.MaturityDate,
		m.Status, m.Notes,
	)
	if err != nil {
		return nil, mapWriteError(err, "credit "+credit.ID)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := mapping.ToDomainCredit(updated)
	return &d, nil
}

// AddRepayment increments the repaid total atomically in the database.
func (r *PgxCreditRepository) AddRepayment(ctx context.Context, creditID string, amount decimal.Decimal) (*domain.Credit, error) {
	updated, err := queryOne[models.Credit](ctx, r.Pool, `
		UPDATE credits SET total_repaid_amount = total_repaid_amount + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+creditColumns,
		creditID, amount,
	)
	if err != nil {
		return nil, mapWriteError(err, "credit "+creditID)
	}
	d := mapping.ToDomainCredit(updated)
	return &d, nil
}

func (r *PgxCreditRepository) DeleteCredit(ctx context.Context, creditID string) error {
	return r.execDelete(ctx, `DELETE FROM credits WHERE id = $1`, creditID, "credit")
}

// keepRepaid picks the repaid total to store. Explicit decreases are rejected by the service
// against the value it read, so a lower requested total here means repayments landed since.
func keepRepaid(requested, current decimal.Decimal) decimal.Decimal {
	return decimal.Max(requested, current)
}
