package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reskin-calc/internal/catalog"
)

func TestNewManagerDefaults(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)
	st := m.State()

	require.Len(t, st.Items, len(cat.Items()))
	for id, is := range st.Items {
		require.Zero(t, is.Quantity, "item %s should start at zero", id)
		require.Equal(t, catalog.AnimationTierNone, is.AnimationID)
		require.Equal(t, OrderArtAndAnim, is.OrderType)
	}
	require.Equal(t, cat.Styles[0].ID, st.Style.ID)
	require.Equal(t, cat.Rights[0].ID, st.Rights.ID)
	require.Equal(t, cat.Payments[0].ID, st.Payment.ID)
	require.Zero(t, st.RevisionRounds)
	require.Nil(t, st.Promo)
}

func TestSetQuantityClampsNegative(t *testing.T) {
	t.Parallel()

	m := NewManager(catalog.Defaults())
	m.SetQuantity("symbol_low", -3)
	require.Zero(t, m.State().Items["symbol_low"].Quantity)

	m.SetQuantity("symbol_low", 5)
	require.Equal(t, 5, m.State().Items["symbol_low"].Quantity)

	m.SetQuantity("no_such_item", 5) // ignored, no panic
}

func TestSetAnimationUnknownFallsBackToNone(t *testing.T) {
	t.Parallel()

	m := NewManager(catalog.Defaults())
	m.SetAnimation("symbol_high", "hyperdrive")
	require.Equal(t, catalog.AnimationTierNone, m.State().Items["symbol_high"].AnimationID)

	m.SetAnimation("symbol_high", "premium")
	require.Equal(t, "premium", m.State().Items["symbol_high"].AnimationID)
}

func TestSetOrderTypeArtOnlyForcesNone(t *testing.T) {
	t.Parallel()

	m := NewManager(catalog.Defaults())
	m.SetAnimation("symbol_high", "standard")
	m.SetOrderType("symbol_high", OrderArtOnly)

	is := m.State().Items["symbol_high"]
	require.Equal(t, OrderArtOnly, is.OrderType)
	require.Equal(t, catalog.AnimationTierNone, is.AnimationID)
}

func TestSetOrderTypeLeavingArtOnlyPicksLightTier(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)
	m.SetOrderType("symbol_high", OrderArtOnly)
	m.SetOrderType("symbol_high", OrderArtAndAnim)

	is := m.State().Items["symbol_high"]
	require.Equal(t, cat.LightTier().ID, is.AnimationID)
}

func TestSetOrderTypeKeepsExplicitTier(t *testing.T) {
	t.Parallel()

	m := NewManager(catalog.Defaults())
	m.SetAnimation("symbol_high", "premium")
	m.SetOrderType("symbol_high", OrderAnimOnly)

	require.Equal(t, "premium", m.State().Items["symbol_high"].AnimationID)
}

func TestApplyPresetIsFullReplace(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)
	m.SetQuantity("popup", 7)
	m.SetAnimation("popup", "premium")

	preset, ok := cat.PresetByID("starter")
	require.True(t, ok)
	m.ApplyPreset(preset)

	st := m.State()
	require.Zero(t, st.Items["popup"].Quantity, "items outside the bundle reset to zero")
	require.Equal(t, catalog.AnimationTierNone, st.Items["popup"].AnimationID)

	for id, qty := range preset.ItemQuantities {
		require.Equal(t, qty, st.Items[id].Quantity)
		require.Equal(t, preset.AnimationID, st.Items[id].AnimationID)
	}
	require.Equal(t, preset.StyleID, st.Style.ID)
}

func TestResetAll(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)
	m.SetQuantity("symbol_low", 6)
	m.SetRevisionRounds(3)
	m.SetPromo(&catalog.PromoCode{Code: "PR20", Kind: catalog.PromoPercentage, Discount: 0.2})
	m.SetStyle(cat.Styles[2])

	m.ResetAll()

	st := m.State()
	require.Zero(t, st.Items["symbol_low"].Quantity)
	require.Zero(t, st.RevisionRounds)
	require.Nil(t, st.Promo)
	require.Equal(t, cat.Styles[0].ID, st.Style.ID)
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)
	m.SetQuantity("symbol_low", 6)
	m.SetAnimation("symbol_low", "light")
	m.SetRevisionRounds(2)
	m.SetStyle(cat.Styles[1])

	snap := m.Snapshot()

	restored := NewManager(cat)
	restored.LoadSnapshot(snap)

	st := restored.State()
	require.Equal(t, 6, st.Items["symbol_low"].Quantity)
	require.Equal(t, "light", st.Items["symbol_low"].AnimationID)
	require.Equal(t, 2, st.RevisionRounds)
	require.Equal(t, cat.Styles[1].ID, st.Style.ID)
}

func TestLoadSnapshotSynthesizesNewCatalogItems(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)

	// An old draft saved before most of the catalog existed.
	m.LoadSnapshot(Snapshot{
		GlobalStyle:    cat.Styles[0],
		UsageRights:    cat.Rights[0],
		PaymentModel:   cat.Payments[0],
		RevisionRounds: 1,
		Items: map[string]SnapshotItem{
			"symbol_low": {Qty: 4, Anim: "light"},
		},
	})

	st := m.State()
	require.Len(t, st.Items, len(cat.Items()))
	require.Equal(t, 4, st.Items["symbol_low"].Quantity)
	require.Zero(t, st.Items["bg_main"].Quantity)
	require.Equal(t, catalog.AnimationTierNone, st.Items["bg_main"].AnimationID)
}

func TestLoadSnapshotReResolvesGlobalsByID(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)

	// The saved style carries a stale coefficient; the id must win.
	stale := cat.Styles[1]
	stale.Coeff = 99.0
	m.LoadSnapshot(Snapshot{
		GlobalStyle:  stale,
		UsageRights:  cat.Rights[1],
		PaymentModel: cat.Payments[1],
		Items:        map[string]SnapshotItem{},
	})

	require.Equal(t, cat.Styles[1].Coeff, m.State().Style.Coeff)
}

func TestLoadSnapshotReResolvesPromoByCode(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)

	// The saved promo carries a stale discount; the current table must win.
	m.LoadSnapshot(Snapshot{
		GlobalStyle:  cat.Styles[0],
		UsageRights:  cat.Rights[0],
		PaymentModel: cat.Payments[0],
		AppliedPromo: &catalog.PromoCode{Code: "PR20", Kind: catalog.PromoPercentage, Discount: 0.99},
		Items:        map[string]SnapshotItem{},
	})

	current, ok := cat.PromoByCode("PR20")
	require.True(t, ok)
	require.NotNil(t, m.State().Promo)
	require.InDelta(t, current.Discount, m.State().Promo.Discount, 1e-9)
}

func TestLoadSnapshotKeepsEmbeddedPromoForRemovedCode(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)

	retired := &catalog.PromoCode{Code: "GONE5", Kind: catalog.PromoFixed, Discount: 5}
	m.LoadSnapshot(Snapshot{
		GlobalStyle:  cat.Styles[0],
		UsageRights:  cat.Rights[0],
		PaymentModel: cat.Payments[0],
		AppliedPromo: retired,
		Items:        map[string]SnapshotItem{},
	})

	require.Equal(t, retired, m.State().Promo)
}

func TestLoadSnapshotKeepsEmbeddedObjectForRemovedIDs(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)

	removed := catalog.VisualStyle{ID: "retro", Name: "Retro", Coeff: 1.2}
	m.LoadSnapshot(Snapshot{
		GlobalStyle:  removed,
		UsageRights:  cat.Rights[0],
		PaymentModel: cat.Payments[0],
		Items:        map[string]SnapshotItem{},
	})

	require.Equal(t, removed, m.State().Style)
}

func TestLoadSnapshotClampsNegativeValues(t *testing.T) {
	t.Parallel()

	cat := catalog.Defaults()
	m := NewManager(cat)
	m.LoadSnapshot(Snapshot{
		GlobalStyle:    cat.Styles[0],
		UsageRights:    cat.Rights[0],
		PaymentModel:   cat.Payments[0],
		RevisionRounds: -2,
		Items: map[string]SnapshotItem{
			"symbol_low": {Qty: -4, Anim: "light"},
		},
	})

	st := m.State()
	require.Zero(t, st.RevisionRounds)
	require.Zero(t, st.Items["symbol_low"].Quantity)
}
