package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsAreComplete(t *testing.T) {
	t.Parallel()

	cat := Defaults()

	require.Equal(t, SourceFallback, cat.Source)
	require.NotEmpty(t, cat.Items())
	require.NotEmpty(t, cat.Styles)
	require.NotEmpty(t, cat.Rights)
	require.NotEmpty(t, cat.Payments)

	seen := map[string]bool{}
	for _, item := range cat.Items() {
		require.False(t, seen[item.ID], "duplicate item id %s", item.ID)
		seen[item.ID] = true
		require.GreaterOrEqual(t, item.BasePrice, 0.0)
	}

	none := cat.NoneTier()
	require.True(t, none.IsNone())
	require.Equal(t, 1.0, none.Coeff)
	require.False(t, cat.LightTier().IsNone())

	for _, tier := range cat.Animations {
		require.GreaterOrEqual(t, tier.Coeff, 1.0)
	}
	for _, s := range cat.Styles {
		require.GreaterOrEqual(t, s.Coeff, 1.0)
	}
	for _, r := range cat.Rights {
		require.GreaterOrEqual(t, r.Coeff, 1.0)
	}
	for _, p := range cat.Payments {
		require.Greater(t, p.Coeff, 0.0)
	}
}

func TestDefaultPresetsReferenceCatalogEntries(t *testing.T) {
	t.Parallel()

	cat := Defaults()
	require.NotEmpty(t, cat.Presets)

	for _, preset := range cat.Presets {
		_, ok := cat.StyleByID(preset.StyleID)
		require.True(t, ok, "preset %s references unknown style %s", preset.ID, preset.StyleID)
		require.Equal(t, preset.AnimationID, cat.AnimationByID(preset.AnimationID).ID,
			"preset %s references unknown animation %s", preset.ID, preset.AnimationID)
		require.NotEmpty(t, preset.ItemQuantities)
		for itemID, qty := range preset.ItemQuantities {
			_, ok := cat.ItemByID(itemID)
			require.True(t, ok, "preset %s references unknown item %s", preset.ID, itemID)
			require.Greater(t, qty, 0)
		}
	}
}

func TestAnimationByIDFallsBackToNone(t *testing.T) {
	t.Parallel()

	cat := Defaults()
	require.True(t, cat.AnimationByID("no_such_tier").IsNone())
	require.Equal(t, "standard", cat.AnimationByID("standard").ID)
}

func TestApplyOverridesProducesNewSnapshot(t *testing.T) {
	t.Parallel()

	base := Defaults()
	overrides := &RateOverrides{
		ItemBasePrices:  map[string]float64{"symbol_low": 55, "ghost_item": 10},
		AnimationCoeffs: map[string]float64{"light": 1.35, "none": 3.0},
		StyleCoeffs:     map[string]float64{"cartoon": 1.2},
		Promos:          []PromoCode{{Code: "SPRING", Kind: PromoPercentage, Discount: 0.05}},
	}

	merged := ApplyOverrides(base, overrides)

	require.Equal(t, SourceLive, merged.Source)

	item, _ := merged.ItemByID("symbol_low")
	require.Equal(t, 55.0, item.BasePrice)
	require.Equal(t, 1.35, merged.AnimationByID("light").Coeff)
	style, _ := merged.StyleByID("cartoon")
	require.Equal(t, 1.2, style.Coeff)

	// The sentinel tier never takes an override.
	require.Equal(t, 1.0, merged.NoneTier().Coeff)

	// Promo table is replaced wholesale.
	_, ok := merged.PromoByCode("PR20")
	require.False(t, ok)
	_, ok = merged.PromoByCode("SPRING")
	require.True(t, ok)

	// The base snapshot stays untouched.
	baseItem, _ := base.ItemByID("symbol_low")
	require.NotEqual(t, 55.0, baseItem.BasePrice)
	require.Equal(t, SourceFallback, base.Source)
}

func TestApplyOverridesEmptyKeepsDefaults(t *testing.T) {
	t.Parallel()

	base := Defaults()
	merged := ApplyOverrides(base, &RateOverrides{})

	require.Equal(t, SourceLive, merged.Source)
	require.Equal(t, len(base.Items()), len(merged.Items()))
	for _, item := range base.Items() {
		got, ok := merged.ItemByID(item.ID)
		require.True(t, ok)
		require.Equal(t, item.BasePrice, got.BasePrice)
	}
	require.Equal(t, base.Promos, merged.Promos)
}
