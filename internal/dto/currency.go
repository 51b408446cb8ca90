package dto

import (
	"github.com/SscSPs/teminat_takip/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code     string `json:"code" binding:"required,len=3,alpha"`
	Name     string `json:"name" binding:"required,max=100"`
	Symbol   string `json:"symbol" binding:"omitempty,max=10"`
	IsActive *bool  `json:"isActive"` // defaults to true
}

// UpdateCurrencyRequest defines the fields that can be changed on a currency. The code is immutable.
type UpdateCurrencyRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Symbol   *string `json:"symbol" binding:"omitempty,max=10"`
	IsActive *bool   `json:"isActive"`
}

// ListCurrenciesParams defines query parameters for listing currencies.
type ListCurrenciesParams struct {
	ActiveOnly bool `form:"activeOnly"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	IsActive bool   `json:"isActive"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:       curr.ID,
		Code:     curr.Code,
		Name:     curr.Name,
		Symbol:   curr.Symbol,
		IsActive: curr.IsActive,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
