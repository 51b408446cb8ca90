package fx_test

import (
	"testing"
	"time"

	"github.com/SscSPs/teminat_takip/internal/apperrors"
	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleTable() fx.RateTable {
	return fx.NewRateTable([]domain.ExchangeRate{
		{FromCurrency: "USD", ToCurrency: "TRY", Rate: d("32.5")},
		{FromCurrency: "eur", ToCurrency: "try", Rate: d("35.123456")},
		{FromCurrency: "GBP", ToCurrency: "TRY", Rate: d("0")},
	}, time.Now())
}

func TestRateTable_Lookup(t *testing.T) {
	table := sampleTable()

	rate, err := table.Lookup("USD", "TRY")
	require.NoError(t, err)
	assert.True(t, d("32.5").Equal(rate))

	rate, err = table.Lookup("EUR", "TRY")
	require.NoError(t, err)
	assert.True(t, d("35.123456").Equal(rate))

	// no inversion
	_, err = table.Lookup("TRY", "USD")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	// non-positive rows are ignored
	_, err = table.Lookup("GBP", "TRY")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
	assert.Equal(t, 2, table.Len())
}

func TestRateTable_LaterRowWins(t *testing.T) {
	table := fx.NewRateTable([]domain.ExchangeRate{
		{FromCurrency: "USD", ToCurrency: "TRY", Rate: d("30")},
		{FromCurrency: "USD", ToCurrency: "TRY", Rate: d("32.5")},
	}, time.Now())

	rate, err := table.Lookup("USD", "TRY")
	require.NoError(t, err)
	assert.True(t, d("32.5").Equal(rate))
	assert.Len(t, table.Entries(), 1)
}

func TestRateTable_ZeroValue(t *testing.T) {
	var table fx.RateTable
	_, err := table.Lookup("USD", "TRY")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	got, err := table.Convert(d("10"), "TRY", "TRY")
	require.NoError(t, err)
	assert.True(t, d("10").Equal(got))
}

func TestConvert(t *testing.T) {
	table := sampleTable()

	tests := []struct {
		name    string
		amount  string
		from    string
		to      string
		want    string
		wantErr error
	}{
		{name: "usd to try", amount: "100", from: "USD", to: "TRY", want: "3250.00"},
		{name: "rounds half-up", amount: "1.01", from: "USD", to: "TRY", want: "32.83"},
		{name: "six place rate", amount: "1000", from: "EUR", to: "TRY", want: "35123.46"},
		{name: "case insensitive", amount: "2", from: "usd", to: "try", want: "65"},
		{name: "identity is untouched", amount: "1.23456", from: "TRY", to: "TRY", want: "1.23456"},
		{name: "missing pair", amount: "100", from: "TRY", to: "USD", wantErr: apperrors.ErrRateNotFound},
		{name: "negative amount", amount: "-1", from: "USD", to: "TRY", wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Convert(d(tt.amount), tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestConvertOrFallback(t *testing.T) {
	table := sampleTable()

	converted := table.ConvertOrFallback(d("100"), "USD", "TRY")
	assert.True(t, converted.Converted)
	assert.Equal(t, "TRY", converted.Currency)
	assert.True(t, d("3250").Equal(converted.Amount))
	assert.True(t, d("32.5").Equal(converted.Rate))
	assert.Equal(t, "USD", converted.Original.Currency)

	missing := table.ConvertOrFallback(d("100"), "TRY", "USD")
	assert.False(t, missing.Converted)
	assert.Equal(t, "TRY", missing.Currency)
	assert.True(t, d("100").Equal(missing.Amount))

	identity := table.ConvertOrFallback(d("5"), "EUR", "EUR")
	assert.True(t, identity.Converted)
	assert.True(t, decimal.NewFromInt(1).Equal(identity.Rate))

	noTarget := table.ConvertOrFallback(d("5"), "EUR", "")
	assert.False(t, noTarget.Converted)
	assert.Equal(t, "EUR", noTarget.Currency)
}

func TestAggregate(t *testing.T) {
	table := sampleTable()
	amounts := []domain.Money{
		{Amount: d("100"), Currency: "USD"},
		{Amount: d("1000"), Currency: "TRY"},
		{Amount: d("10"), Currency: "EUR"},
		{Amount: d("50"), Currency: "CHF"},
		{Amount: d("25"), Currency: "CHF"},
	}

	totals := table.Aggregate(amounts, "TRY")
	assert.Equal(t, "TRY", totals.Currency)
	// 3250.00 + 1000 + 351.23
	assert.True(t, d("4601.23").Equal(totals.Total), "got %s", totals.Total)
	assert.Equal(t, 3, totals.ConvertedCount)
	assert.Equal(t, 2, totals.UnconvertedCount)
	assert.True(t, d("75").Equal(totals.Unconverted["CHF"]))
}

func TestConvertOrFallback_NegativeKeepsSign(t *testing.T) {
	table := sampleTable()

	c := table.ConvertOrFallback(d("-100"), "USD", "TRY")
	assert.True(t, c.Converted)
	assert.Equal(t, "TRY", c.Currency)
	assert.True(t, d("-3250").Equal(c.Amount), "got %s", c.Amount)

	// half-up applies to the magnitude
	c = table.ConvertOrFallback(d("-0.01"), "EUR", "TRY")
	assert.True(t, d("-0.35").Equal(c.Amount), "got %s", c.Amount)

	totals := table.Aggregate([]domain.Money{
		{Amount: d("-100"), Currency: "USD"},
		{Amount: d("5000"), Currency: "TRY"},
	}, "TRY")
	assert.Equal(t, 2, totals.ConvertedCount)
	assert.Zero(t, totals.UnconvertedCount)
	assert.True(t, d("1750").Equal(totals.Total), "got %s", totals.Total)
}
