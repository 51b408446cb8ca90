package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/teminat_takip/internal/core/ports/services"
	"github.com/SscSPs/teminat_takip/internal/dto"
	"github.com/SscSPs/teminat_takip/internal/utils"
	"github.com/SscSPs/teminat_takip/internal/utils/filtering"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/SscSPs/teminat_takip/internal/utils/grid"
	"github.com/shopspring/decimal"
)

type gridService struct {
	BaseService
	letterRepo   portsrepo.GuaranteeLetterReader
	creditRepo   portsrepo.CreditReader
	currencyRepo portsrepo.CurrencyReader
	rates        portssvc.RateTableSvc
	relations    relationLoader
	locale       string
}

// GridServiceOption is a functional option for configuring the grid service
type GridServiceOption func(*gridService)

// WithDisplayLocale selects the number format used in grid cells ("tr" or "en").
func WithDisplayLocale(locale string) GridServiceOption {
	return func(s *gridService) {
		s.locale = locale
	}
}

// NewGridService creates the service that renders the letter and credit grids.
func NewGridService(
	letterRepo portsrepo.GuaranteeLetterReader,
	creditRepo portsrepo.CreditReader,
	bankRepo portsrepo.BankReader,
	projectRepo portsrepo.ProjectReader,
	currencyRepo portsrepo.CurrencyReader,
	rates portssvc.RateTableSvc,
	opts ...GridServiceOption,
) portssvc.GridSvc {
	s := &gridService{
		letterRepo:   letterRepo,
		creditRepo:   creditRepo,
		currencyRepo: currencyRepo,
		rates:        rates,
		relations:    relationLoader{bankRepo: bankRepo, projectRepo: projectRepo},
		locale:       utils.LocaleTR.Name,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.GridSvc = (*gridService)(nil)

// gridContext is what every cell needs: the rate snapshot, the formatter and the target currency.
type gridContext struct {
	table     fx.RateTable
	formatter utils.Formatter
	target    string
}

func (g gridContext) money(amount decimal.Decimal, currency string) dto.MoneyCell {
	c := g.table.ConvertOrFallback(amount, currency, g.target)
	return dto.MoneyCell{
		Value:     c.Amount,
		Currency:  c.Currency,
		Converted: c.Converted,
		Display:   g.formatter.Format(c.Amount, c.Currency),
	}
}

func (g gridContext) ratesLoadedAt() *time.Time {
	at := g.table.LoadedAt()
	if at.IsZero() {
		return nil
	}
	return &at
}

func (g gridContext) totals(amounts []domain.Money) dto.GridTotals {
	totals := g.table.Aggregate(amounts, g.target)
	res := dto.GridTotals{
		Totals:             totals,
		UnconvertedDisplay: make(map[string]string, len(totals.Unconverted)),
	}
	if totals.Currency != "" {
		res.Display = g.formatter.Format(totals.Total, totals.Currency)
	}
	for code, sum := range totals.Unconverted {
		res.UnconvertedDisplay[code] = g.formatter.Format(sum, code)
	}
	return res
}

func (s *gridService) GuaranteeLetterGrid(ctx context.Context, state filtering.ViewState, page, pageSize int) (*dto.GridResponse[dto.GuaranteeLetterGridRow], error) {
	state = state.Normalize()

	letters, err := s.letterRepo.ListGuaranteeLetters(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load guarantee letters for grid")
		return nil, err
	}
	idx, err := s.relations.load(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load grid relations")
		return nil, err
	}

	rows := filtering.FilterRows(idx.letters(letters), state)
	gc := s.gridContext(ctx, state.Currency)

	amounts := make([]domain.Money, len(rows))
	for i, r := range rows {
		amounts[i] = domain.Money{Amount: r.LetterAmount, Currency: r.Currency}
	}

	pageRows, totalPages := grid.Paginate(rows, page, pageSize)
	out := make([]dto.GuaranteeLetterGridRow, len(pageRows))
	for i, r := range pageRows {
		out[i] = dto.GuaranteeLetterGridRow{
			ID:                     r.ID,
			BankID:                 r.BankID,
			BankName:               bankName(r.Bank),
			ProjectID:              r.ProjectID,
			ProjectName:            projectName(r.Project),
			LetterType:             grid.LetterTypeLabel(r.LetterType),
			ContractAmount:         gc.money(r.ContractAmount, r.Currency),
			LetterPercentage:       grid.Percent(r.LetterPercentage),
			LetterAmount:           gc.money(r.LetterAmount, r.Currency),
			LetterAmountConsistent: r.LetterAmountConsistent(),
			CommissionRate:         grid.Percent(r.CommissionRate),
			Currency:               r.Currency,
			PurchaseDate:           grid.Date(r.PurchaseDate),
			LetterDate:             grid.Date(r.LetterDate),
			ExpiryDate:             grid.OptionalDate(r.ExpiryDate),
			Status:                 grid.LetterStatusLabel(r.Status),
			Notes:                  grid.Notes(r.Notes),
		}
	}

	return &dto.GridResponse[dto.GuaranteeLetterGridRow]{
		Columns:    grid.GuaranteeLetterColumns(),
		Rows:       out,
		Page:       max(page, 1),
		PageSize:   grid.NormalizePageSize(pageSize),
		TotalRows:  len(rows),
		TotalPages: totalPages,
		Totals:     gc.totals(amounts),
		ViewState:  state,

		RatesLoadedAt: gc.ratesLoadedAt(),
	}, nil
}

func (s *gridService) CreditGrid(ctx context.Context, state filtering.ViewState, page, pageSize int) (*dto.GridResponse[dto.CreditGridRow], error) {
	state = state.Normalize()

	credits, err := s.creditRepo.ListCredits(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load credits for grid")
		return nil, err
	}
	idx, err := s.relations.load(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load grid relations")
		return nil, err
	}

	rows := filtering.FilterRows(idx.credits(credits), state)
	gc := s.gridContext(ctx, state.Currency)

	amounts := make([]domain.Money, len(rows))
	for i, r := range rows {
		amounts[i] = domain.Money{Amount: r.OutstandingAmount(), Currency: r.Currency}
	}

	pageRows, totalPages := grid.Paginate(rows, page, pageSize)
	out := make([]dto.CreditGridRow, len(pageRows))
	for i, r := range pageRows {
		out[i] = dto.CreditGridRow{
			ID:                r.ID,
			BankID:            r.BankID,
			BankName:          bankName(r.Bank),
			ProjectID:         r.ProjectID,
			ProjectName:       projectName(r.Project),
			PrincipalAmount:   gc.money(r.PrincipalAmount, r.Currency),
			InterestAmount:    gc.money(r.InterestAmount, r.Currency),
			TotalRepaidAmount: gc.money(r.TotalRepaidAmount, r.Currency),
			OutstandingAmount: gc.money(r.OutstandingAmount(), r.Currency),
			Currency:          r.Currency,
			CreditDate:        grid.Date(r.CreditDate),
			MaturityDate:      grid.Date(r.MaturityDate),
			Status:            grid.CreditStatusLabel(r.Status),
			Notes:             grid.Notes(r.Notes),
		}
	}

	return &dto.GridResponse[dto.CreditGridRow]{
		Columns:    grid.CreditColumns(),
		Rows:       out,
		Page:       max(page, 1),
		PageSize:   grid.NormalizePageSize(pageSize),
		TotalRows:  len(rows),
		TotalPages: totalPages,
		Totals:     gc.totals(amounts),
		ViewState:  state,

		RatesLoadedAt: gc.ratesLoadedAt(),
	}, nil
}

// gridContext never fails: without rates amounts stay native, without currencies codes replace symbols.
func (s *gridService) gridContext(ctx context.Context, target string) gridContext {
	table, err := s.rates.RateTable(ctx)
	if err != nil {
		s.LogWarn(ctx, "Rate table unavailable, showing native amounts", slog.String("error", err.Error()))
		table = fx.RateTable{}
	}
	currencies, err := s.currencyRepo.ListCurrencies(ctx, false)
	if err != nil {
		s.LogWarn(ctx, "Currency list unavailable, formatting with codes", slog.String("error", err.Error()))
		currencies = nil
	}
	return gridContext{
		table:     table,
		formatter: utils.NewFormatter(s.locale, currencies),
		target:    fx.NormalizeCode(target),
	}
}

func bankName(b *domain.Bank) string {
	if b == nil {
		return grid.Missing
	}
	return b.Name
}

func projectName(p *domain.Project) string {
	if p == nil {
		return grid.Missing
	}
	return p.Name
}
