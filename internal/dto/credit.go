package dto

import (
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCreditRequest defines the data needed to record a credit.
type CreateCreditRequest struct {
	BankID            string              `json:"bankId" binding:"required,uuid"`
	ProjectID         string              `json:"projectId" binding:"required,uuid"`
	PrincipalAmount   decimal.Decimal     `json:"principalAmount" binding:"dgt0"`
	InterestAmount    decimal.Decimal     `json:"interestAmount" binding:"dgte0"`
	TotalRepaidAmount *decimal.Decimal    `json:"totalRepaidAmount" binding:"omitempty,dgte0"`
	Currency          string              `json:"currency" binding:"required,len=3,alpha"`
	CreditDate        string              `json:"creditDate" binding:"required,datetime=2006-01-02"`
	MaturityDate      string              `json:"maturityDate" binding:"required,datetime=2006-01-02"`
	Status            domain.CreditStatus `json:"status" binding:"omitempty,oneof=devam-ediyor kapali iptal"`
	Notes             string              `json:"notes"`
}

// UpdateCreditRequest defines the fields that can be changed on a credit.
// TotalRepaidAmount may only grow.
type UpdateCreditRequest struct {
	BankID            *string              `json:"bankId" binding:"omitempty,uuid"`
	ProjectID         *string              `json:"projectId" binding:"omitempty,uuid"`
	PrincipalAmount   *decimal.Decimal     `json:"principalAmount" binding:"omitempty,dgt0"`
	InterestAmount    *decimal.Decimal     `json:"interestAmount" binding:"omitempty,dgte0"`
	TotalRepaidAmount *decimal.Decimal     `json:"totalRepaidAmount" binding:"omitempty,dgte0"`
	Currency          *string              `json:"currency" binding:"omitempty,len=3,alpha"`
	CreditDate        *string              `json:"creditDate" binding:"omitempty,datetime=2006-01-02"`
	MaturityDate      *string              `json:"maturityDate" binding:"omitempty,datetime=2006-01-02"`
	Status            *domain.CreditStatus `json:"status" binding:"omitempty,oneof=devam-ediyor kapali iptal"`
	Notes             *string              `json:"notes"`
}

// RepaymentRequest records a payment against a credit.
type RepaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"dgt0"`
}

// CreditResponse defines the data returned for a credit.
type CreditResponse struct {
	ID                string              `json:"id"`
	BankID            string              `json:"bankId"`
	ProjectID         string              `json:"projectId"`
	PrincipalAmount   decimal.Decimal     `json:"principalAmount"`
	InterestAmount    decimal.Decimal     `json:"interestAmount"`
	TotalRepaidAmount decimal.Decimal     `json:"totalRepaidAmount"`
	OutstandingAmount decimal.Decimal     `json:"outstandingAmount"`
	Currency          string              `json:"currency"`
	CreditDate        string              `json:"creditDate"`
	MaturityDate      string              `json:"maturityDate"`
	Status            domain.CreditStatus `json:"status"`
	Notes             string              `json:"notes"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
	Bank              *BankResponse       `json:"bank,omitempty"`
	Project           *ProjectResponse    `json:"project,omitempty"`
}

// ToCreditResponse converts a domain.Credit to CreditResponse DTO
func ToCreditResponse(c *domain.Credit) CreditResponse {
	return CreditResponse{
		ID:                c.ID,
		BankID:            c.BankID,
		ProjectID:         c.ProjectID,
		PrincipalAmount:   c.PrincipalAmount,
		InterestAmount:    c.InterestAmount,
		TotalRepaidAmount: c.TotalRepaidAmount,
		OutstandingAmount: c.OutstandingAmount(),
		Currency:          c.Currency,
		CreditDate:        FormatDate(c.CreditDate),
		MaturityDate:      FormatDate(c.MaturityDate),
		Status:            c.Status,
		Notes:             c.Notes,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

// ToCreditWithRelationsResponse embeds the bank and project when present.
func ToCreditWithRelationsResponse(c *domain.CreditWithRelations) CreditResponse {
	res := ToCreditResponse(&c.Credit)
	if c.Bank != nil {
		bank := ToBankResponse(c.Bank)
		res.Bank = &bank
	}
	if c.Project != nil {
		project := ToProjectResponse(c.Project)
		res.Project = &project
	}
	return res
}

// ToListCreditResponse converts a slice of credits to response DTOs
func ToListCreditResponse(credits []domain.Credit) []CreditResponse {
	res := make([]CreditResponse, len(credits))
	for i := range credits {
		res[i] = ToCreditResponse(&credits[i])
	}
	return res
}

// ToListCreditWithRelationsResponse converts joined credits to response DTOs
func ToListCreditWithRelationsResponse(credits []domain.CreditWithRelations) []CreditResponse {
	res := make([]CreditResponse, len(credits))
	for i := range credits {
		res[i] = ToCreditWithRelationsResponse(&credits[i])
	}
	return res
}
