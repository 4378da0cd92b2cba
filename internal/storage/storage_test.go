package storage

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reskin-calc/internal/catalog"
	"reskin-calc/internal/pricing"
)

func TestValidTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to string
		ok       bool
	}{
		{StatusDraft, StatusFinalized, true},
		{StatusFinalized, StatusAccepted, true},
		{StatusDraft, StatusAccepted, false},
		{StatusAccepted, StatusFinalized, false},
		{StatusAccepted, StatusDraft, false},
		{StatusFinalized, StatusDraft, false},
		{"bogus", StatusAccepted, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.ok, ValidTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestExportQuoteToExcel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	quote := Quote{
		ID:            42,
		UserID:        7,
		Title:         "Dragon slot reskin",
		Status:        StatusFinalized,
		GrandTotal:    812.5,
		CatalogSource: string(catalog.SourceLive),
		CreatedAt:     time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
	totals := pricing.Totals{
		LineItems: []pricing.LineItem{
			{
				Item:      catalog.Item{ID: "symbol_high", Name: "High-value symbol", BasePrice: 80},
				Animation: catalog.AnimationTier{ID: "light", Name: "Light animation", Coeff: 1.25},
				Quantity:  4,
				UnitPrice: 180,
				LineTotal: 720,
			},
		},
		ProductionSum:  720,
		RevisionCost:   36,
		WithRights:     756,
		FinalTotal:     756,
		DiscountAmount: 0,
		GrandTotal:     756,
		RevisionRounds: 2,
	}

	path, err := ExportQuoteToExcel(quote, totals, dir)
	require.NoError(t, err)
	require.FileExists(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

func TestExportQuoteMinimumNote(t *testing.T) {
	t.Parallel()

	quote := Quote{ID: 1, CreatedAt: time.Now()}
	totals := pricing.Totals{
		FinalTotal:     600,
		DiscountAmount: 100,
		GrandTotal:     500,
		MinimumApplied: true,
		LineItems:      []pricing.LineItem{},
	}

	path, err := ExportQuoteToExcel(quote, totals, t.TempDir())
	require.NoError(t, err)
	require.FileExists(t, path)
}
