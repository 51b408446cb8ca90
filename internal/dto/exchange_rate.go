package dto

import (
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating or replacing the rate of a pair.
type CreateExchangeRateRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,alpha"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,alpha,nefield=FromCurrency"`
	Rate         decimal.Decimal `json:"rate" binding:"dgt0"`
}

// UpdateExchangeRateRequest changes the rate of an existing pair.
type UpdateExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"dgt0"`
}

// ConvertQuery is the query string of the conversion endpoint.
type ConvertQuery struct {
	Amount string `form:"amount" binding:"required,numeric"`
	From   string `form:"from" binding:"required,len=3,alpha"`
	To     string `form:"to" binding:"required,len=3,alpha"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID           string          `json:"id"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ConversionResponse is the result of converting an amount for display.
type ConversionResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Rate      decimal.Decimal `json:"rate"`
	Result    decimal.Decimal `json:"result"`
	Currency  string          `json:"currency"` // currency of Result; From when not converted
	Converted bool            `json:"converted"`
	Formatted string          `json:"formatted"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:           rate.ID,
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		UpdatedAt:    rate.UpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToConversionResponse converts a conversion outcome and its rendered text.
func ToConversionResponse(c fx.Conversion, to, formatted string) ConversionResponse {
	return ConversionResponse{
		Amount:    c.Original.Amount,
		From:      c.Original.Currency,
		To:        fx.NormalizeCode(to),
		Rate:      c.Rate,
		Result:    c.Amount,
		Currency:  c.Currency,
		Converted: c.Converted,
		Formatted: formatted,
	}
}
