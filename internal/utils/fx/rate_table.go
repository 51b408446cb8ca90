// Package fx holds the exchange-rate snapshot and the pure conversion logic built on it.
package fx

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/shopspring/decimal"
)

type pair struct {
	from string
	to   string
}

// RateTable is an immutable snapshot of exchange rates keyed by the ordered currency pair.
// A rate for USD→TRY says nothing about TRY→USD.
type RateTable struct {
	rates    map[pair]domain.ExchangeRate
	loadedAt time.Time
}

// NormalizeCode upper-cases and trims a currency code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewRateTable builds a snapshot from persisted rows. Later rows for the same pair replace
// earlier ones, so callers pass rows ordered by update time. Rows with a non-positive rate
// are skipped.
func NewRateTable(rows []domain.ExchangeRate, loadedAt time.Time) RateTable {
	rates := make(map[pair]domain.ExchangeRate, len(rows))
	for _, row := range rows {
		if !row.Rate.IsPositive() {
			continue
		}
		row.FromCurrency = NormalizeCode(row.FromCurrency)
		row.ToCurrency = NormalizeCode(row.ToCurrency)
		rates[pair{from: row.FromCurrency, to: row.ToCurrency}] = row
	}
	return RateTable{rates: rates, loadedAt: loadedAt}
}

// Lookup returns the rate for the exact ordered pair.
func (t RateTable) Lookup(fromCode, toCode string) (decimal.Decimal, error) {
	from, to := NormalizeCode(fromCode), NormalizeCode(toCode)
	row, ok := t.rates[pair{from: from, to: to}]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s→%s", apperrors.ErrRateNotFound, from, to)
	}
	return row.Rate, nil
}

// Len is the number of distinct pairs in the snapshot.
func (t RateTable) Len() int {
	return len(t.rates)
}

// LoadedAt is when the snapshot was built.
func (t RateTable) LoadedAt() time.Time {
	return t.loadedAt
}

// Entries returns the snapshot rows sorted by pair.
func (t RateTable) Entries() []domain.ExchangeRate {
	entries := make([]domain.ExchangeRate, 0, len(t.rates))
	for _, row := range t.rates {
		entries = append(entries, row)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].FromCurrency != entries[j].FromCurrency {
			return entries[i].FromCurrency < entries[j].FromCurrency
		}
		return entries[i].ToCurrency < entries[j].ToCurrency
	})
	return entries
}
