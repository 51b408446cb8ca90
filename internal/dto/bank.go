package dto

import (
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
)

// CreateBankRequest defines the data needed to create a bank.
type CreateBankRequest struct {
	Name        string              `json:"name" binding:"required,max=255"`
	Code        string              `json:"code" binding:"omitempty,max=50"`
	ContactInfo string              `json:"contactInfo"`
	Status      domain.RecordStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateBankRequest defines the fields that can be changed on a bank.
type UpdateBankRequest struct {
	Name        *string              `json:"name" binding:"omitempty,min=1,max=255"`
	Code        *string              `json:"code" binding:"omitempty,max=50"`
	ContactInfo *string              `json:"contactInfo"`
	Status      *domain.RecordStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// BankResponse defines the data returned for a bank.
type BankResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Code        string              `json:"code"`
	ContactInfo string              `json:"contactInfo"`
	Status      domain.RecordStatus `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ToBankResponse converts a domain.Bank to BankResponse DTO
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		ID:          b.ID,
		Name:        b.Name,
		Code:        b.Code,
		ContactInfo: b.ContactInfo,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

// ToListBankResponse converts a slice of domain.Bank to BankResponse DTOs
func ToListBankResponse(banks []domain.Bank) []BankResponse {
	res := make([]BankResponse, len(banks))
	for i := range banks {
		res[i] = ToBankResponse(&banks[i])
	}
	return res
}
