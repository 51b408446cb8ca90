package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	"github.com/SscSPs/teminat_takip/internal/utils/fx"
)

// RateTableProvider owns the current rate table snapshot. Readers get an immutable value;
// reloads build a new table and swap it in atomically.
type RateTableProvider struct {
	BaseService
	rateRepo portsrepo.ExchangeRateReader
	cache    portsrepo.RateTableCache
	current  atomic.Pointer[fx.RateTable]
	reloadMu sync.Mutex
	now      func() time.Time
}

// RateTableProviderOption is a functional option for configuring the provider
type RateTableProviderOption func(*RateTableProvider)

// WithRateTableCache lets the provider seed snapshots from a shared cache.
func WithRateTableCache(cache portsrepo.RateTableCache) RateTableProviderOption {
	return func(p *RateTableProvider) {
		p.cache = cache
	}
}

// WithClock overrides the time source used to stamp snapshots.
func WithClock(now func() time.Time) RateTableProviderOption {
	return func(p *RateTableProvider) {
		p.now = now
	}
}

// NewRateTableProvider creates a provider reading rates from rateRepo.
func NewRateTableProvider(rateRepo portsrepo.ExchangeRateReader, opts ...RateTableProviderOption) *RateTableProvider {
	p := &RateTableProvider{rateRepo: rateRepo, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Current returns the active snapshot, loading one first if none exists yet.
// The first load prefers the cache.
func (p *RateTableProvider) Current(ctx context.Context) (fx.RateTable, error) {
	if t := p.current.Load(); t != nil {
		return *t, nil
	}

	p.reloadMu.Lock()
	defer p.reloadMu.Unlock()
	if t := p.current.Load(); t != nil {
		return *t, nil
	}

	if p.cache != nil {
		rows, ok, err := p.cache.GetRates(ctx)
		if err != nil {
			p.LogWarn(ctx, "Rate cache read failed, loading from database", slog.String("error", err.Error()))
		} else if ok {
			table := fx.NewRateTable(rows, p.now())
			p.current.Store(&table)
			p.LogDebug(ctx, "Rate table loaded from cache", slog.Int("pairs", table.Len()))
			return table, nil
		}
	}
	return p.reloadLocked(ctx)
}

// Refresh rebuilds the snapshot from the database and refreshes the cache.
// On failure the previous snapshot stays active.
func (p *RateTableProvider) Refresh(ctx context.Context) (fx.RateTable, error) {
	p.reloadMu.Lock()
	defer p.reloadMu.Unlock()
	return p.reloadLocked(ctx)
}

func (p *RateTableProvider) reloadLocked(ctx context.Context) (fx.RateTable, error) {
	rows, err := p.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		p.LogError(ctx, err, "Failed to load exchange rates")
		return fx.RateTable{}, fmt.Errorf("failed to load rate table: %w", err)
	}

	table := fx.NewRateTable(rows, p.now())
	p.current.Store(&table)

	if p.cache != nil {
		if err := p.cache.SetRates(ctx, table.Entries()); err != nil {
			p.LogWarn(ctx, "Failed to refresh rate cache", slog.String("error", err.Error()))
			// stale rows must not seed other instances
			if err := p.cache.Invalidate(ctx); err != nil {
				p.LogWarn(ctx, "Failed to invalidate rate cache", slog.String("error", err.Error()))
			}
		}
	}
	p.LogDebug(ctx, "Rate table reloaded", slog.Int("pairs", table.Len()))
	return table, nil
}
