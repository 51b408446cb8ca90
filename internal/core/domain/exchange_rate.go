package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate states that 1 unit of FromCurrency equals Rate units of ToCurrency.
type ExchangeRate struct {
	ID           string          `json:"id"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"` // NUMERIC(12,6), always > 0
	UpdatedAt    time.Time       `json:"updatedAt"`
}
