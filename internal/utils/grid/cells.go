package grid

import (
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Missing is rendered for absent dates and notes.
const Missing = "-"

// NotesPreviewRunes is how many characters of a note the grid shows.
const NotesPreviewRunes = 50

const dateLayout = "02.01.2006"

var letterTypeLabels = map[domain.LetterType]string{
	domain.LetterTypeGuarantee: "Teminat",
	domain.LetterTypeAdvance:   "Avans Teminat",
	domain.LetterTypeFinal:     "Kesin Teminat",
	domain.LetterTypeTemporary: "Geçici Teminat",
}

var letterStatusLabels = map[domain.LetterStatus]string{
	domain.LetterActive:    "Aktif",
	domain.LetterPending:   "Beklemede",
	domain.LetterClosed:    "Kapalı",
	domain.LetterCancelled: "İptal",
}

var creditStatusLabels = map[domain.CreditStatus]string{
	domain.CreditInProgress: "Devam Ediyor",
	domain.CreditClosed:     "Kapalı",
	domain.CreditCancelled:  "İptal",
}

// LetterTypeLabel returns the display label, or the raw value when unknown.
func LetterTypeLabel(t domain.LetterType) string {
	if label, ok := letterTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// LetterStatusLabel returns the display label, or the raw value when unknown.
func LetterStatusLabel(s domain.LetterStatus) string {
	if label, ok := letterStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// CreditStatusLabel returns the display label, or the raw value when unknown.
func CreditStatusLabel(s domain.CreditStatus) string {
	if label, ok := creditStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Percent renders "%12.50".
func Percent(p decimal.Decimal) string {
	return "%" + p.StringFixed(2)
}

// Date renders dd.mm.yyyy.
func Date(t time.Time) string {
	if t.IsZero() {
		return Missing
	}
	return t.Format(dateLayout)
}

// OptionalDate renders dd.mm.yyyy, or Missing for nil.
func OptionalDate(t *time.Time) string {
	if t == nil {
		return Missing
	}
	return Date(*t)
}

// Notes shortens long notes to NotesPreviewRunes characters followed by "...".
func Notes(notes string) string {
	if notes == "" {
		return Missing
	}
	runes := []rune(notes)
	if len(runes) <= NotesPreviewRunes {
		return notes
	}
	return string(runes[:NotesPreviewRunes]) + "..."
}
