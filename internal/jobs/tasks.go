package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	"github.com/SscSPs/teminat_takip/internal/middleware"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
	"github.com/SscSPs/teminat_takip/internal/utils/grid"
)

const (
	RateRefreshJobName = "rate-table-refresh"
	ExpiryScanJobName  = "expiry-scan"
)

// RateRefresher rebuilds the shared rate table snapshot.
type RateRefresher interface {
	RefreshRateTable(ctx context.Context) (fx.RateTable, error)
}

// ExpiringLetterLister finds active letters expiring soon.
type ExpiringLetterLister interface {
	ListExpiringLetters(ctx context.Context, withinDays int) ([]domain.GuaranteeLetterWithRelations, error)
}

// RefreshRates reloads the rate table so rates written by other instances become visible.
func RefreshRates(refresher RateRefresher) Job {
	return func(ctx context.Context) error {
		table, err := refresher.RefreshRateTable(ctx)
		if err != nil {
			return fmt.Errorf("failed to refresh rate table: %w", err)
		}
		middleware.GetLoggerFromCtx(ctx).Info("Rate table refreshed", slog.Int("pairs", table.Len()))
		return nil
	}
}

// ScanExpiringLetters logs a warning per active letter expiring within withinDays days.
func ScanExpiringLetters(lister ExpiringLetterLister, withinDays int) Job {
	return func(ctx context.Context) error {
		letters, err := lister.ListExpiringLetters(ctx, withinDays)
		if err != nil {
			return fmt.Errorf("failed to list expiring letters: %w", err)
		}
		logger := middleware.GetLoggerFromCtx(ctx)
		for _, l := range letters {
			logger.Warn("Guarantee letter expiring soon",
				slog.String("letter_id", l.ID),
				slog.String("bank", bankLabel(l.Bank)),
				slog.String("project", projectLabel(l.Project)),
				slog.String("expiry_date", grid.OptionalDate(l.ExpiryDate)),
				slog.String("amount", l.LetterAmount.StringFixed(2)+" "+l.Currency),
			)
		}
		logger.Info("Expiry scan finished", slog.Int("within_days", withinDays), slog.Int("expiring", len(letters)))
		return nil
	}
}

func bankLabel(b *domain.Bank) string {
	if b == nil {
		return grid.Missing
	}
	return b.Name
}

func projectLabel(p *domain.Project) string {
	if p == nil {
		return grid.Missing
	}
	return p.Name
}
