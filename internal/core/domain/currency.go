package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency in the domain.
type Currency struct {
	ID       string `json:"id"`
	Code     string `json:"code"`   // Unique, 3 upper-case letters (e.g., "TRY")
	Name     string `json:"name"`   // e.g., "Türk Lirası"
	Symbol   string `json:"symbol"` // Nullable, e.g., "₺"
	IsActive bool   `json:"isActive"`
}

// DisplaySymbol returns the configured symbol, or the raw code when none is set.
func (c Currency) DisplaySymbol() string {
	if c.Symbol != "" {
		return c.Symbol
	}
	return c.Code
}

// Money is an amount tagged with its currency code.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}
