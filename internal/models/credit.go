package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit is the row shape of the credits table.
type Credit struct {
	ID                string          `db:"id"`
	BankID            string          `db:"bank_id"`
	ProjectID         string          `db:"project_id"`
	PrincipalAmount   decimal.Decimal `db:"principal_amount"`
	InterestAmount    decimal.Decimal `db:"interest_amount"`
	TotalRepaidAmount decimal.Decimal `db:"total_repaid_amount"`
	Currency          string          `db:"currency"`
	CreditDate        time.Time       `db:"credit_date"`
	MaturityDate      time.Time       `db:"maturity_date"`
	Status            string          `db:"status"`
	Notes             *string         `db:"notes"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}
