package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuaranteeLetter is the row shape of the guarantee_letters table.
type GuaranteeLetter struct {
	ID                string          `db:"id"`
	BankID            string          `db:"bank_id"`
	ProjectID         string          `db:"project_id"`
	LetterType        string          `db:"letter_type"`
	ContractAmount    decimal.Decimal `db:"contract_amount"`
	LetterPercentage  decimal.Decimal `db:"letter_percentage"`
	LetterAmount      decimal.Decimal `db:"letter_amount"`
	CommissionRate    decimal.Decimal `db:"commission_rate"`
	BsmvAndOtherCosts decimal.Decimal `db:"bsmv_and_other_costs"`
	Currency          string          `db:"currency"`
	PurchaseDate      time.Time       `db:"purchase_date"`
	LetterDate        time.Time       `db:"letter_date"`
	ExpiryDate        *time.Time      `db:"expiry_date"`
	Status            string          `db:"status"`
	Notes             *string         `db:"notes"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}
