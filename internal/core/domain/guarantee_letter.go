package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LetterType is the kind of guarantee a letter provides.
type LetterType string

const (
	LetterTypeGuarantee LetterType = "teminat"
	LetterTypeAdvance   LetterType = "avans"
	LetterTypeFinal     LetterType = "kesin-teminat"
	LetterTypeTemporary LetterType = "gecici-teminat"
)

// Valid reports whether t is one of the known letter types.
func (t LetterType) Valid() bool {
	switch t {
	case LetterTypeGuarantee, LetterTypeAdvance, LetterTypeFinal, LetterTypeTemporary:
		return true
	}
	return false
}

// LetterStatus is the lifecycle state of a guarantee letter.
type LetterStatus string

const (
	LetterActive    LetterStatus = "aktif"
	LetterPending   LetterStatus = "beklemede"
	LetterClosed    LetterStatus = "kapali"
	LetterCancelled LetterStatus = "iptal"
)

// Valid reports whether s is one of the known letter statuses.
func (s LetterStatus) Valid() bool {
	switch s {
	case LetterActive, LetterPending, LetterClosed, LetterCancelled:
		return true
	}
	return false
}

var hundred = decimal.NewFromInt(100)

// GuaranteeLetter is a bank-issued instrument guaranteeing a contractual obligation.
// LetterAmount is stored as given and is not recomputed from the contract fields.
type GuaranteeLetter struct {
	ID                string          `json:"id"`
	BankID            string          `json:"bankId"`
	ProjectID         string          `json:"projectId"`
	LetterType        LetterType      `json:"letterType"`
	ContractAmount    decimal.Decimal `json:"contractAmount"`    // NUMERIC(15,2)
	LetterPercentage  decimal.Decimal `json:"letterPercentage"`  // NUMERIC(5,2)
	LetterAmount      decimal.Decimal `json:"letterAmount"`      // NUMERIC(15,2)
	CommissionRate    decimal.Decimal `json:"commissionRate"`    // NUMERIC(5,2)
	BsmvAndOtherCosts decimal.Decimal `json:"bsmvAndOtherCosts"` // NUMERIC(15,2), defaults to 0
	Currency          string          `json:"currency"`
	PurchaseDate      time.Time       `json:"purchaseDate"`
	LetterDate        time.Time       `json:"letterDate"`
	ExpiryDate        *time.Time      `json:"expiryDate"`
	Status            LetterStatus    `json:"status"`
	Notes             string          `json:"notes"`
	AuditFields
}

// ExpectedLetterAmount computes contractAmount × letterPercentage / 100 rounded to 2 places.
func ExpectedLetterAmount(contractAmount, letterPercentage decimal.Decimal) decimal.Decimal {
	return contractAmount.Mul(letterPercentage).Div(hundred).Round(2)
}

// ExpectedLetterAmount returns the nominal amount derived from the contract fields.
func (g GuaranteeLetter) ExpectedLetterAmount() decimal.Decimal {
	return ExpectedLetterAmount(g.ContractAmount, g.LetterPercentage)
}

// LetterAmountConsistent reports whether the stored letter amount matches the derived one.
func (g GuaranteeLetter) LetterAmountConsistent() bool {
	return g.LetterAmount.Equal(g.ExpectedLetterAmount())
}

// Scope implements Scoped.
func (g GuaranteeLetter) Scope() (string, string) {
	return g.BankID, g.ProjectID
}

// GuaranteeLetterWithRelations embeds the referenced bank and project.
type GuaranteeLetterWithRelations struct {
	GuaranteeLetter
	Bank    *Bank    `json:"bank"`
	Project *Project `json:"project"`
}
