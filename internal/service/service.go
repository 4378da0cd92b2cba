package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"reskin-calc/internal/catalog"
	"reskin-calc/internal/config"
	"reskin-calc/internal/pricing"
	"reskin-calc/internal/selection"
	"reskin-calc/internal/storage"
	redisstore "reskin-calc/internal/storage/redis"
	"reskin-calc/pkg/api"
)

// Calculator wires the pricing core to its collaborators: the rates
// backend, the draft store and the quote store. It owns the current catalog
// snapshot and swaps it atomically on refresh.
type Calculator struct {
	cfg    *config.Config
	api    *api.Client
	quotes *storage.PostgresStorage
	drafts *redisstore.Storage
	logger *zap.Logger

	mu  sync.RWMutex
	cat *catalog.Catalog
}

func New(
	cfg *config.Config,
	apiClient *api.Client,
	quotes *storage.PostgresStorage,
	drafts *redisstore.Storage,
	logger *zap.Logger,
) *Calculator {
	return &Calculator{
		cfg:    cfg,
		api:    apiClient,
		quotes: quotes,
		drafts: drafts,
		logger: logger,
		cat:    catalog.Defaults(),
	}
}

// Catalog returns the current snapshot. Snapshots are immutable, so the
// pointer is safe to hold across a whole computation.
func (c *Calculator) Catalog() *catalog.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cat
}

// NewSelection starts a fresh selection against the current catalog.
func (c *Calculator) NewSelection() *selection.Manager {
	return selection.NewManager(c.Catalog())
}

// RefreshCatalog fetches rate overrides and swaps in a new complete
// snapshot. On backend failure it tries the last cached rates, and failing
// that keeps whatever snapshot is already in place. The engine never sees
// a partial catalog.
func (c *Calculator) RefreshCatalog(ctx context.Context) {
	rates, err := c.fetchRates(ctx)
	if err != nil {
		c.logger.Warn("Catalog rates fetch failed, trying cache", zap.Error(err))

		rates, err = c.drafts.CachedRates(ctx)
		if err != nil || rates == nil {
			c.logger.Warn("No cached rates, calculator keeps current catalog",
				zap.String("source", string(c.Catalog().Source)),
				zap.Error(err))
			return
		}
	} else {
		if err := c.drafts.CacheRates(ctx, rates); err != nil {
			c.logger.Warn("Failed to cache catalog rates", zap.Error(err))
		}
	}

	merged := catalog.ApplyOverrides(catalog.Defaults(), rates)

	c.mu.Lock()
	c.cat = merged
	c.mu.Unlock()

	c.logger.Info("Catalog snapshot replaced", zap.String("source", string(merged.Source)))
}

func (c *Calculator) fetchRates(ctx context.Context) (*catalog.RateOverrides, error) {
	var rates *catalog.RateOverrides

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = c.cfg.HTTPRequestTimeout
	retryPolicy.MaxInterval = 5 * time.Second

	err := backoff.RetryNotify(
		func() error {
			var err error
			rates, err = c.api.GetCatalogRates(ctx)
			return err
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			c.logger.Warn("Catalog rates request failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, err
	}
	return rates, nil
}

// Run refreshes the catalog once at startup and then on the configured
// interval until the context is cancelled.
func (c *Calculator) Run(ctx context.Context) error {
	c.RefreshCatalog(ctx)

	ticker := time.NewTicker(c.cfg.CatalogRefresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.RefreshCatalog(ctx)
		}
	}
}

// SaveDraft persists the user's current selection snapshot.
func (c *Calculator) SaveDraft(ctx context.Context, userID int64, m *selection.Manager) error {
	draft := &redisstore.Draft{
		Snapshot: m.Snapshot(),
		SavedAt:  time.Now().UTC(),
	}
	if err := c.drafts.SaveDraft(ctx, userID, draft); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// LoadDraft restores the user's saved selection against the current
// catalog, or starts a fresh one when no draft exists.
func (c *Calculator) LoadDraft(ctx context.Context, userID int64) (*selection.Manager, error) {
	m := c.NewSelection()

	draft, err := c.drafts.GetDraft(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if draft != nil {
		m.LoadSnapshot(draft.Snapshot)
	}
	return m, nil
}

// Totals recomputes the breakdown for a selection under the configured
// minimum-order policy. The selection's own catalog snapshot is used, not
// the service's current one: a refresh that landed mid-session must not mix
// new item prices with multipliers resolved under the old snapshot.
func (c *Calculator) Totals(ctx context.Context, userID int64, m *selection.Manager) (pricing.Totals, error) {
	min, err := c.minimumOrder(ctx, userID)
	if err != nil {
		return pricing.Totals{}, err
	}
	return pricing.ComputeTotals(m.Catalog(), m.State(), min), nil
}

func (c *Calculator) minimumOrder(ctx context.Context, userID int64) (pricing.MinimumOrder, error) {
	min := pricing.MinimumOrder{
		Amount:  c.cfg.MinOrderAmount,
		Enabled: c.cfg.MinOrderEnabled,
	}
	if !min.Enabled {
		return min, nil
	}

	first, err := c.quotes.IsFirstOrder(ctx, userID)
	if err != nil {
		return pricing.MinimumOrder{}, fmt.Errorf("check first order: %w", err)
	}
	min.FirstOrder = first
	return min, nil
}

// Finalize computes the final breakdown, persists the quote and exports the
// specification workbook. The draft is dropped once the quote is stored.
func (c *Calculator) Finalize(ctx context.Context, userID int64, title string, m *selection.Manager) (*storage.Quote, error) {
	totals, err := c.Totals(ctx, userID, m)
	if err != nil {
		return nil, fmt.Errorf("compute totals: %w", err)
	}

	snapshotJSON, err := json.Marshal(m.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	totalsJSON, err := json.Marshal(totals)
	if err != nil {
		return nil, fmt.Errorf("marshal totals: %w", err)
	}

	promoCode := ""
	if totals.AppliedPromo != nil {
		promoCode = totals.AppliedPromo.Code
	}

	quote := storage.Quote{
		UserID:         userID,
		Title:          title,
		Status:         storage.StatusFinalized,
		SnapshotJSON:   snapshotJSON,
		TotalsJSON:     totalsJSON,
		GrandTotal:     totals.GrandTotal,
		MinimumApplied: totals.MinimumApplied,
		PromoCode:      promoCode,
		CatalogSource:  string(m.Catalog().Source),
		CreatedAt:      time.Now().UTC(),
	}

	quote.ID, err = c.quotes.SaveQuote(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}

	if path, err := storage.ExportQuoteToExcel(quote, totals, c.cfg.ReportsDir); err != nil {
		c.logger.Warn("Quote export failed", zap.Int64("quote_id", quote.ID), zap.Error(err))
	} else {
		c.logger.Info("Quote exported", zap.Int64("quote_id", quote.ID), zap.String("path", path))
	}

	if err := c.drafts.DropDraft(ctx, userID); err != nil {
		c.logger.Warn("Failed to drop draft after finalize",
			zap.Int64("user_id", userID), zap.Error(err))
	}

	return &quote, nil
}

// AcceptOffer marks a finalized quote's legal offer as accepted.
func (c *Calculator) AcceptOffer(ctx context.Context, quoteID int64) error {
	return c.quotes.UpdateQuoteStatus(ctx, quoteID, storage.StatusAccepted)
}
