package dto

import (
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGuaranteeLetterRequest defines the data needed to record a guarantee letter.
// LetterAmount is derived from the contract amount and percentage when omitted.
type CreateGuaranteeLetterRequest struct {
	BankID            string              `json:"bankId" binding:"required,uuid"`
	ProjectID         string              `json:"projectId" binding:"required,uuid"`
	LetterType        domain.LetterType   `json:"letterType" binding:"required,oneof=teminat avans kesin-teminat gecici-teminat"`
	ContractAmount    decimal.Decimal     `json:"contractAmount" binding:"dgte0"`
	LetterPercentage  decimal.Decimal     `json:"letterPercentage" binding:"dgte0,dlte100"`
	LetterAmount      *decimal.Decimal    `json:"letterAmount" binding:"omitempty,dgte0"`
	CommissionRate    decimal.Decimal     `json:"commissionRate" binding:"dgte0,dlte100"`
	BsmvAndOtherCosts decimal.Decimal     `json:"bsmvAndOtherCosts" binding:"dgte0"`
	Currency          string              `json:"currency" binding:"required,len=3,alpha"`
	PurchaseDate      string              `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
	LetterDate        string              `json:"letterDate" binding:"required,datetime=2006-01-02"`
	ExpiryDate        *string             `json:"expiryDate" binding:"omitempty,datetime=2006-01-02"`
	Status            domain.LetterStatus `json:"status" binding:"omitempty,oneof=aktif beklemede kapali iptal"`
	Notes             string              `json:"notes"`
}

// UpdateGuaranteeLetterRequest defines the fields that can be changed on a letter.
// Nil fields are left untouched.
type UpdateGuaranteeLetterRequest struct {
	BankID            *string              `json:"bankId" binding:"omitempty,uuid"`
	ProjectID         *string              `json:"projectId" binding:"omitempty,uuid"`
	LetterType        *domain.LetterType   `json:"letterType" binding:"omitempty,oneof=teminat avans kesin-teminat gecici-teminat"`
	ContractAmount    *decimal.Decimal     `json:"contractAmount" binding:"omitempty,dgte0"`
	LetterPercentage  *decimal.Decimal     `json:"letterPercentage" binding:"omitempty,dgte0,dlte100"`
	LetterAmount      *decimal.Decimal     `json:"letterAmount" binding:"omitempty,dgte0"`
	CommissionRate    *decimal.Decimal     `json:"commissionRate" binding:"omitempty,dgte0,dlte100"`
	BsmvAndOtherCosts *decimal.Decimal     `json:"bsmvAndOtherCosts" binding:"omitempty,dgte0"`
	Currency          *string              `json:"currency" binding:"omitempty,len=3,alpha"`
	PurchaseDate      *string              `json:"purchaseDate" binding:"omitempty,datetime=2006-01-02"`
	LetterDate        *string              `json:"letterDate" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate        *string              `json:"expiryDate" binding:"omitempty,datetime=2006-01-02"`
	Status            *domain.LetterStatus `json:"status" binding:"omitempty,oneof=aktif beklemede kapali iptal"`
	Notes             *string              `json:"notes"`
}

// ListParams defines query parameters shared by the letter and credit list endpoints.
type ListParams struct {
	WithRelations bool `form:"withRelations"`
}

// ExpiringParams defines the query of the expiring letters endpoint.
type ExpiringParams struct {
	Days int `form:"days,default=30" binding:"min=0,max=3650"`
}

// GuaranteeLetterResponse defines the data returned for a guarantee letter.
type GuaranteeLetterResponse struct {
	ID                     string              `json:"id"`
	BankID                 string              `json:"bankId"`
	ProjectID              string              `json:"projectId"`
	LetterType             domain.LetterType   `json:"letterType"`
	ContractAmount         decimal.Decimal     `json:"contractAmount"`
	LetterPercentage       decimal.Decimal     `json:"letterPercentage"`
	LetterAmount           decimal.Decimal     `json:"letterAmount"`
	ExpectedLetterAmount   decimal.Decimal     `json:"expectedLetterAmount"`
	LetterAmountConsistent bool                `json:"letterAmountConsistent"`
	CommissionRate         decimal.Decimal     `json:"commissionRate"`
	BsmvAndOtherCosts      decimal.Decimal     `json:"bsmvAndOtherCosts"`
	Currency               string              `json:"currency"`
	PurchaseDate           string              `json:"purchaseDate"`
	LetterDate             string              `json:"letterDate"`
	ExpiryDate             *string             `json:"expiryDate"`
	Status                 domain.LetterStatus `json:"status"`
	Notes                  string              `json:"notes"`
	CreatedAt              time.Time           `json:"createdAt"`
	UpdatedAt              time.Time           `json:"updatedAt"`
	Bank                   *BankResponse       `json:"bank,omitempty"`
	Project                *ProjectResponse    `json:"project,omitempty"`
}

// ToGuaranteeLetterResponse converts a domain.GuaranteeLetter to its response DTO
func ToGuaranteeLetterResponse(g *domain.GuaranteeLetter) GuaranteeLetterResponse {
	return GuaranteeLetterResponse{
		ID:                     g.ID,
		BankID:                 g.BankID,
		ProjectID:              g.ProjectID,
		LetterType:             g.LetterType,
		ContractAmount:         g.ContractAmount,
		LetterPercentage:       g.LetterPercentage,
		LetterAmount:           g.LetterAmount,
		ExpectedLetterAmount:   g.ExpectedLetterAmount(),
		LetterAmountConsistent: g.LetterAmountConsistent(),
		CommissionRate:         g.CommissionRate,
		BsmvAndOtherCosts:      g.BsmvAndOtherCosts,
		Currency:               g.Currency,
		PurchaseDate:           FormatDate(g.PurchaseDate),
		LetterDate:             FormatDate(g.LetterDate),
		ExpiryDate:             FormatOptionalDate(g.ExpiryDate),
		Status:                 g.Status,
		Notes:                  g.Notes,
		CreatedAt:              g.CreatedAt,
		UpdatedAt:              g.UpdatedAt,
	}
}

// ToGuaranteeLetterWithRelationsResponse embeds the bank and project when present.
func ToGuaranteeLetterWithRelationsResponse(g *domain.GuaranteeLetterWithRelations) GuaranteeLetterResponse {
	res := ToGuaranteeLetterResponse(&g.GuaranteeLetter)
	if g.Bank != nil {
		bank := ToBankResponse(g.Bank)
		res.Bank = &bank
	}
	if g.Project != nil {
		project := ToProjectResponse(g.Project)
		res.Project = &project
	}
	return res
}

// ToListGuaranteeLetterResponse converts a slice of letters to response DTOs
func ToListGuaranteeLetterResponse(letters []domain.GuaranteeLetter) []GuaranteeLetterResponse {
	res := make([]GuaranteeLetterResponse, len(letters))
	for i := range letters {
		res[i] = ToGuaranteeLetterResponse(&letters[i])
	}
	return res
}

// ToListGuaranteeLetterWithRelationsResponse converts joined letters to response DTOs
func ToListGuaranteeLetterWithRelationsResponse(letters []domain.GuaranteeLetterWithRelations) []GuaranteeLetterResponse {
	res := make([]GuaranteeLetterResponse, len(letters))
	for i := range letters {
		res[i] = ToGuaranteeLetterWithRelationsResponse(&letters[i])
	}
	return res
}
