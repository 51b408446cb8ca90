package utils

import (
	"strings"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of fraction digits shown for every amount.
const DisplayPlaces = 2

// Locale describes separators used when rendering amounts.
type Locale struct {
	Name     string
	Grouping string
	Decimal  string
}

var (
	LocaleTR = Locale{Name: "tr", Grouping: ".", Decimal: ","}
	LocaleEN = Locale{Name: "en", Grouping: ",", Decimal: "."}
)

// LookupLocale returns the locale for name, falling back to Turkish.
func LookupLocale(name string) Locale {
	if strings.EqualFold(strings.TrimSpace(name), LocaleEN.Name) {
		return LocaleEN
	}
	return LocaleTR
}

// Formatter renders amounts with a currency symbol taken from the currency list.
// It holds no mutable state and is safe to share between goroutines.
type Formatter struct {
	locale  Locale
	symbols map[string]string
}

// NewFormatter builds a formatter for the locale named by localeName.
// Currencies without a symbol are rendered with their code.
func NewFormatter(localeName string, currencies []domain.Currency) Formatter {
	symbols := make(map[string]string, len(currencies))
	for _, c := range currencies {
		if c.Symbol == "" {
			continue
		}
		symbols[strings.ToUpper(c.Code)] = c.Symbol
	}
	return Formatter{locale: LookupLocale(localeName), symbols: symbols}
}

// Locale returns the locale the formatter renders with.
func (f Formatter) Locale() Locale {
	return f.locale
}

// Format renders amount as e.g. "₺1.234,50" (tr) or "$1,234.50" (en).
// Unknown currencies get the code followed by a space: "CHF 1.234,50".
func (f Formatter) Format(amount decimal.Decimal, currencyCode string) string {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	prefix := code + " "
	if symbol, ok := f.symbols[code]; ok {
		prefix = symbol
	}

	rounded := amount.Round(DisplayPlaces)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + prefix + f.FormatNumber(rounded.Abs())
}

// FormatNumber renders amount with locale separators and two fraction digits, without a symbol.
func (f Formatter) FormatNumber(amount decimal.Decimal) string {
	rounded := amount.Round(DisplayPlaces)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	fixed := rounded.StringFixed(DisplayPlaces)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + groupDigits(intPart, f.locale.Grouping) + f.locale.Decimal + fracPart
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
