package fx

import (
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals sums a column of amounts into a target currency. Amounts without a usable rate are
// kept aside per native currency instead of being dropped.
type Totals struct {
	Currency         string                     `json:"currency"`
	Total            decimal.Decimal            `json:"total"`
	ConvertedCount   int                        `json:"convertedCount"`
	Unconverted      map[string]decimal.Decimal `json:"unconverted"`
	UnconvertedCount int                        `json:"unconvertedCount"`
}

// Aggregate converts each amount with ConvertOrFallback and sums the results.
func (t RateTable) Aggregate(amounts []domain.Money, target string) Totals {
	totals := Totals{
		Currency:    NormalizeCode(target),
		Total:       decimal.Zero,
		Unconverted: map[string]decimal.Decimal{},
	}
	for _, m := range amounts {
		c := t.ConvertOrFallback(m.Amount, m.Currency, target)
		if c.Converted {
			totals.Total = totals.Total.Add(c.Amount)
			totals.ConvertedCount++
			continue
		}
		totals.Unconverted[c.Currency] = totals.Unconverted[c.Currency].Add(c.Amount)
		totals.UnconvertedCount++
	}
	return totals
}
