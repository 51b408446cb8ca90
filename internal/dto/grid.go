package dto

import (
	"time"

	"github.com/SscSPs/teminat_takip/internal/utils/filtering"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/SscSPs/teminat_takip/internal/utils/grid"
	"github.com/shopspring/decimal"
)

// GridQuery is the query string of the grid endpoints. projectId and bankId may repeat.
type GridQuery struct {
	ProjectIDs []string `form:"projectId"`
	BankIDs    []string `form:"bankId"`
	Currency   string   `form:"currency" binding:"omitempty,len=3,alpha"`
	Page       int      `form:"page,default=1" binding:"min=1"`
	PageSize   int      `form:"pageSize,default=25" binding:"min=0,max=100"`
}

// ViewState returns the sidebar selection the query describes.
func (q GridQuery) ViewState() filtering.ViewState {
	return filtering.ViewState{
		ProjectIDs: q.ProjectIDs,
		BankIDs:    q.BankIDs,
		Currency:   q.Currency,
	}.Normalize()
}

// MoneyCell is an amount as shown in a grid cell: the value, its currency after conversion
// and the rendered text.
type MoneyCell struct {
	Value     decimal.Decimal `json:"value"`
	Currency  string          `json:"currency"`
	Converted bool            `json:"converted"`
	Display   string          `json:"display"`
}

// GuaranteeLetterGridRow is one rendered row of the letter grid.
type GuaranteeLetterGridRow struct {
	ID                     string    `json:"id"`
	BankID                 string    `json:"bankId"`
	BankName               string    `json:"bankName"`
	ProjectID              string    `json:"projectId"`
	ProjectName            string    `json:"projectName"`
	LetterType             string    `json:"letterType"`
	ContractAmount         MoneyCell `json:"contractAmount"`
	LetterPercentage       string    `json:"letterPercentage"`
	LetterAmount           MoneyCell `json:"letterAmount"`
	LetterAmountConsistent bool      `json:"letterAmountConsistent"`
	CommissionRate         string    `json:"commissionRate"`
	Currency               string    `json:"currency"`
	PurchaseDate           string    `json:"purchaseDate"`
	LetterDate             string    `json:"letterDate"`
	ExpiryDate             string    `json:"expiryDate"`
	Status                 string    `json:"status"`
	Notes                  string    `json:"notes"`
}

// CreditGridRow is one rendered row of the credit grid.
type CreditGridRow struct {
	ID                string    `json:"id"`
	BankID            string    `json:"bankId"`
	BankName          string    `json:"bankName"`
	ProjectID         string    `json:"projectId"`
	ProjectName       string    `json:"projectName"`
	PrincipalAmount   MoneyCell `json:"principalAmount"`
	InterestAmount    MoneyCell `json:"interestAmount"`
	TotalRepaidAmount MoneyCell `json:"totalRepaidAmount"`
	OutstandingAmount MoneyCell `json:"outstandingAmount"`
	Currency          string    `json:"currency"`
	CreditDate        string    `json:"creditDate"`
	MaturityDate      string    `json:"maturityDate"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes"`
}

// GridTotals is the aggregated amount column of the filtered rows.
type GridTotals struct {
	fx.Totals
	Display            string            `json:"display"`
	UnconvertedDisplay map[string]string `json:"unconvertedDisplay"`
}

// GridResponse is a page of grid rows with the column model and totals of all filtered rows.
type GridResponse[T any] struct {
	Columns    []grid.Column       `json:"columns"`
	Rows       []T                 `json:"rows"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalRows  int                 `json:"totalRows"`
	TotalPages int                 `json:"totalPages"`
	Totals     GridTotals          `json:"totals"`
	ViewState  filtering.ViewState `json:"viewState"`
	// RatesLoadedAt is when the rate snapshot used for conversion was built; absent without one.
	RatesLoadedAt *time.Time `json:"ratesLoadedAt,omitempty"`
}
