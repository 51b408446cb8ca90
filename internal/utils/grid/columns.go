// Package grid describes the data-grid columns and renders cell values for display.
package grid

// Column is one column of the data grid.
type Column struct {
	Title     string `json:"title"`
	Field     string `json:"field"`
	Width     int    `json:"width"`
	Formatter string `json:"formatter,omitempty"`
	Frozen    bool   `json:"frozen,omitempty"`
}

// Formatter names understood by the frontend.
const (
	FormatterMoney   = "money"
	FormatterPercent = "percent"
	FormatterDate    = "date"
	FormatterLabel   = "label"
	FormatterText    = "text"
)

// Page sizes offered by the grid.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is used when the requested size is not one of PageSizes.
const DefaultPageSize = 25

// GuaranteeLetterColumns is the column model of the guarantee letter grid.
func GuaranteeLetterColumns() []Column {
	return []Column{
		{Title: "Banka", Field: "bankName", Width: 150, Frozen: true},
		{Title: "Proje", Field: "projectName", Width: 150, Frozen: true},
		{Title: "Mektup Türü", Field: "letterType", Width: 120, Formatter: FormatterLabel},
		{Title: "Sözleşme Tutarı", Field: "contractAmount", Width: 150, Formatter: FormatterMoney},
		{Title: "Mektup %", Field: "letterPercentage", Width: 100, Formatter: FormatterPercent},
		{Title: "Mektup Tutarı", Field: "letterAmount", Width: 150, Formatter: FormatterMoney},
		{Title: "Komisyon %", Field: "commissionRate", Width: 100, Formatter: FormatterPercent},
		{Title: "Para Birimi", Field: "currency", Width: 80},
		{Title: "Alım Tarihi", Field: "purchaseDate", Width: 120, Formatter: FormatterDate},
		{Title: "Mektup Tarihi", Field: "letterDate", Width: 120, Formatter: FormatterDate},
		{Title: "Son Tarih", Field: "expiryDate", Width: 120, Formatter: FormatterDate},
		{Title: "Durum", Field: "status", Width: 100, Formatter: FormatterLabel},
		{Title: "Notlar", Field: "notes", Width: 200, Formatter: FormatterText},
	}
}

// CreditColumns is the column model of the credit grid.
func CreditColumns() []Column {
	return []Column{
		{Title: "Banka", Field: "bankName", Width: 150, Frozen: true},
		{Title: "Proje", Field: "projectName", Width: 150, Frozen: true},
		{Title: "Anapara", Field: "principalAmount", Width: 150, Formatter: FormatterMoney},
		{Title: "Faiz", Field: "interestAmount", Width: 130, Formatter: FormatterMoney},
		{Title: "Geri Ödenen", Field: "totalRepaidAmount", Width: 150, Formatter: FormatterMoney},
		{Title: "Kalan", Field: "outstandingAmount", Width: 150, Formatter: FormatterMoney},
		{Title: "Para Birimi", Field: "currency", Width: 80},
		{Title: "Kredi Tarihi", Field: "creditDate", Width: 120, Formatter: FormatterDate},
		{Title: "Vade Tarihi", Field: "maturityDate", Width: 120, Formatter: FormatterDate},
		{Title: "Durum", Field: "status", Width: 110, Formatter: FormatterLabel},
		{Title: "Notlar", Field: "notes", Width: 200, Formatter: FormatterText},
	}
}

// NormalizePageSize returns size when it is an offered page size, DefaultPageSize otherwise.
func NormalizePageSize(size int) int {
	for _, s := range PageSizes {
		if s == size {
			return size
		}
	}
	return DefaultPageSize
}

// Paginate returns the 1-based page of rows and the total page count.
func Paginate[T any](rows []T, page, pageSize int) ([]T, int) {
	pageSize = NormalizePageSize(pageSize)
	totalPages := (len(rows) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []T{}, totalPages
	}
	end := min(start+pageSize, len(rows))
	return rows[start:end], totalPages
}
