package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditStatus is the lifecycle state of a credit.
type CreditStatus string

const (
	CreditInProgress CreditStatus = "devam-ediyor"
	CreditClosed     CreditStatus = "kapali"
	CreditCancelled  CreditStatus = "iptal"
)

// Valid reports whether s is one of the known credit statuses.
func (s CreditStatus) Valid() bool {
	switch s {
	case CreditInProgress, CreditClosed, CreditCancelled:
		return true
	}
	return false
}

// Credit is a bank loan with principal, interest and repayment tracking.
type Credit struct {
	ID                string          `json:"id"`
	BankID            string          `json:"bankId"`
	ProjectID         string          `json:"projectId"`
	PrincipalAmount   decimal.Decimal `json:"principalAmount"`
	InterestAmount    decimal.Decimal `json:"interestAmount"`
	TotalRepaidAmount decimal.Decimal `json:"totalRepaidAmount"` // never decreases
	Currency          string          `json:"currency"`
	CreditDate        time.Time       `json:"creditDate"`
	MaturityDate      time.Time       `json:"maturityDate"`
	Status            CreditStatus    `json:"status"`
	Notes             string          `json:"notes"`
	AuditFields
}

// OutstandingAmount is principal plus interest minus what has been repaid.
func (c Credit) OutstandingAmount() decimal.Decimal {
	return c.PrincipalAmount.Add(c.InterestAmount).Sub(c.TotalRepaidAmount)
}

// Scope implements Scoped.
func (c Credit) Scope() (string, string) {
	return c.BankID, c.ProjectID
}

// CreditWithRelations embeds the referenced bank and project.
type CreditWithRelations struct {
	Credit
	Bank    *Bank    `json:"bank"`
	Project *Project `json:"project"`
}
