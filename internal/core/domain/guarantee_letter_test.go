package domain_test

import (
	"testing"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpectedLetterAmount(t *testing.T) {
	tests := []struct {
		name       string
		contract   string
		percentage string
		want       string
	}{
		{name: "round percentage", contract: "1000000.00", percentage: "10.00", want: "100000"},
		{name: "fractional percentage", contract: "250000.00", percentage: "2.50", want: "6250"},
		{name: "half-up at cent", contract: "0.10", percentage: "5.00", want: "0.01"},
		{name: "zero contract", contract: "0", percentage: "6.00", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ExpectedLetterAmount(decimal.RequireFromString(tt.contract), decimal.RequireFromString(tt.percentage))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestGuaranteeLetter_LetterAmountConsistent(t *testing.T) {
	letter := domain.GuaranteeLetter{
		ContractAmount:   decimal.RequireFromString("500000.00"),
		LetterPercentage: decimal.RequireFromString("3.00"),
		LetterAmount:     decimal.RequireFromString("15000.00"),
	}
	assert.True(t, letter.LetterAmountConsistent())

	// stored independently; a different value is kept but flagged
	letter.LetterAmount = decimal.RequireFromString("15500.00")
	assert.False(t, letter.LetterAmountConsistent())
	assert.True(t, decimal.RequireFromString("15000").Equal(letter.ExpectedLetterAmount()))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, domain.LetterTypeFinal.Valid())
	assert.False(t, domain.LetterType("kefalet").Valid())
	assert.True(t, domain.LetterPending.Valid())
	assert.False(t, domain.LetterStatus("active").Valid())
	assert.True(t, domain.CreditInProgress.Valid())
	assert.False(t, domain.CreditStatus("aktif").Valid())
}

func TestCredit_OutstandingAmount(t *testing.T) {
	credit := domain.Credit{
		PrincipalAmount:   decimal.RequireFromString("100000.00"),
		InterestAmount:    decimal.RequireFromString("12500.50"),
		TotalRepaidAmount: decimal.RequireFromString("40000.25"),
	}
	assert.True(t, decimal.RequireFromString("72500.25").Equal(credit.OutstandingAmount()))
}

func TestScope(t *testing.T) {
	withRelations := domain.GuaranteeLetterWithRelations{
		GuaranteeLetter: domain.GuaranteeLetter{BankID: "b1", ProjectID: "p1"},
	}
	var scoped domain.Scoped = withRelations
	bankID, projectID := scoped.Scope()
	assert.Equal(t, "b1", bankID)
	assert.Equal(t, "p1", projectID)
}

func TestCurrency_DisplaySymbol(t *testing.T) {
	assert.Equal(t, "₺", domain.Currency{Code: "TRY", Symbol: "₺"}.DisplaySymbol())
	assert.Equal(t, "CHF", domain.Currency{Code: "CHF"}.DisplaySymbol())
}
