package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	"github.com/SscSPs/teminat_takip/internal/models"
	"github.com/SscSPs/teminat_takip/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGuaranteeLetterRepository struct {
	BaseRepository
}

func newPgxGuaranteeLetterRepository(pool *pgxpool.Pool) portsrepo.GuaranteeLetterRepositoryFacade {
	return &PgxGuaranteeLetterRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GuaranteeLetterRepositoryFacade = (*PgxGuaranteeLetterRepository)(nil)

const guaranteeLetterColumns = `
	id, bank_id, project_id, letter_type, contract_amount, letter_percentage, letter_amount,
	commission_rate, bsmv_and_other_costs, currency, purchase_date, letter_date, expiry_date,
	status, notes, created_at, updated_at`

func (r *PgxGuaranteeLetterRepository) FindGuaranteeLetterByID(ctx context.Context, letterID string) (*domain.GuaranteeLetter, error) {
	m, err := queryOne[models.GuaranteeLetter](ctx, r.Pool,
		`SELECT `+guaranteeLetterColumns+` FROM guarantee_letters WHERE id = $1`, letterID)
	if err != nil {
		return nil, mapReadError(err, "guarantee letter "+letterID)
	}
	d := mapping.ToDomainGuaranteeLetter(m)
	return &d, nil
}

func (r *PgxGuaranteeLetterRepository) ListGuaranteeLetters(ctx context.Context) ([]domain.GuaranteeLetter, error) {
	letters, err := queryAll(ctx, r.Pool, mapping.ToDomainGuaranteeLetterSlice,
		`SELECT `+guaranteeLetterColumns+` FROM guarantee_letters ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list guarantee letters: %w", err)
	}
	return letters, nil
}

// ListLettersExpiringBetween returns active letters whose expiry date lies in [from, to], soonest first.
func (r *PgxGuaranteeLetterRepository) ListLettersExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.GuaranteeLetter, error) {
	letters, err := queryAll(ctx, r.Pool, mapping.ToDomainGuaranteeLetterSlice, `
		SELECT `+guaranteeLetterColumns+`
		FROM guarantee_letters
		WHERE status = $1 AND expiry_date BETWEEN $2::date AND $3::date
		ORDER BY expiry_date, id`,
		string(domain.LetterActive), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring guarantee letters: %w", err)
	}
	return letters, nil
}

func (r *PgxGuaranteeLetterRepository) SaveGuaranteeLetter(ctx context.Context, letter domain.GuaranteeLetter) (*domain.GuaranteeLetter, error) {
	m := mapping.ToModelGuaranteeLetter(letter)
	saved, err := queryOne[models.GuaranteeLetter](ctx, r.Pool, `
		INSERT INTO guarantee_letters (
			bank_id, project_id, letter_type, contract_amount, letter_percentage, letter_amount,
			commission_rate, bsmv_and_other_costs, currency, purchase_date, letter_date, expiry_date,
			status, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+guaranteeLetterColumns,
		m.BankID, m.ProjectID, m.LetterType, m.ContractAmount, m.LetterPercentage, m.LetterAmount,
		m.CommissionRate, m.BsmvAndOtherCosts, m.Currency, m.PurchaseDate, m.LetterDate, m.ExpiryDate,
		m.Status, m.Notes,
	)
	if err != nil {
		return nil, mapWriteError(err, "guarantee letter")
	}
	d := mapping.ToDomainGuaranteeLetter(saved)
	return &d, nil
}

func (r *PgxGuaranteeLetterRepository) UpdateGuaranteeLetter(ctx context.Context, letter domain.GuaranteeLetter) (*domain.GuaranteeLetter, error) {
	m := mapping.ToModelGuaranteeLetter(letter)
	updated, err := queryOne[models.GuaranteeLetter](ctx, r.Pool, `
		UPDATE guarantee_letters SET
			bank_id = $2, project_id = $3, letter_type = $4, contract_amount = $5,
			letter_percentage = $6, letter_amount = $7, commission_rate = $8,
			bsmv_and_other_costs = $9, currency = $10, purchase_date = $11, letter_date = $12,
			expiry_date = $13, status = $14, notes = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING `+guaranteeLetterColumns,
		m.ID, m.BankID, m.ProjectID, m.LetterType, m.ContractAmount,
		m.LetterPercentage, m.LetterAmount, m.CommissionRate,
		m.BsmvAndOtherCosts, m.Currency, m.PurchaseDate, m.LetterDate,
		m.ExpiryDate, m.Status, m.Notes,
	)
	if err != nil {
		return nil, mapWriteError(err, "guarantee letter "+letter.ID)
	}
	d := mapping.ToDomainGuaranteeLetter(updated)
	return &d, nil
}

func (r *PgxGuaranteeLetterRepository) DeleteGuaranteeLetter(ctx context.Context, letterID string) error {
	return r.execDelete(ctx, `DELETE FROM guarantee_letters WHERE id = $1`, letterID, "guarantee letter")
}
