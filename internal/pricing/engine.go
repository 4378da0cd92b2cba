package pricing

import (
	"reskin-calc/internal/catalog"
	"reskin-calc/internal/selection"
)

// RevisionRate is the flat share of the production sum one revision round
// adds. Rounds are strictly linear, not compounding.
const RevisionRate = 0.025

// LineItem is one catalog item's priced contribution at the selected
// quantity and animation tier.
type LineItem struct {
	Item      catalog.Item          `json:"item"`
	Animation catalog.AnimationTier `json:"animation"`
	Quantity  int                   `json:"quantity"`
	UnitPrice float64               `json:"unit_price"`
	LineTotal float64               `json:"line_total"`
}

// MinimumOrder is the first-order floor policy. It is supplied by the
// caller, the engine does not own it.
type MinimumOrder struct {
	Amount     float64 `json:"amount"`
	FirstOrder bool    `json:"first_order"`
	Enabled    bool    `json:"enabled"`
}

// Totals is the full price breakdown. All sums are raw floating-point;
// rounding to display precision is the renderer's job.
type Totals struct {
	LineItems      []LineItem         `json:"line_items"`
	ProductionSum  float64            `json:"production_sum"`
	RevisionCost   float64            `json:"revision_cost"`
	WithRights     float64            `json:"with_rights"`
	FinalTotal     float64            `json:"final_total"`
	DiscountAmount float64            `json:"discount_amount"`
	GrandTotal     float64            `json:"grand_total"`
	MinimumApplied bool               `json:"minimum_applied"`
	RevisionRounds int                `json:"revision_rounds"`
	AppliedPromo   *catalog.PromoCode `json:"applied_promo"`
}

// ComputeTotals folds the catalog and the current selection into a price
// breakdown. Pure: identical inputs always produce identical output, and
// the operation order below is fixed for float reproducibility.
//
// Items are walked in catalog order. An unknown animation id resolves to
// the none tier. Quantities above an item's MaxQty are the caller's input
// validation problem; negative quantities are clamped to zero.
func ComputeTotals(cat *catalog.Catalog, st *selection.State, min MinimumOrder) Totals {
	totals := Totals{
		LineItems:      []LineItem{},
		RevisionRounds: st.RevisionRounds,
		AppliedPromo:   st.Promo,
	}

	for _, item := range cat.Items() {
		is, ok := st.Items[item.ID]
		if !ok {
			continue
		}
		qty := is.Quantity
		if qty <= 0 {
			continue
		}

		tier := cat.AnimationByID(is.AnimationID)

		baseArtPrice := item.BasePrice * st.Style.Coeff
		animCost := 0.0
		if !tier.IsNone() {
			animCost = baseArtPrice * tier.Coeff * item.EffectiveComplexity()
		}
		unitPrice := baseArtPrice + animCost
		lineTotal := unitPrice * float64(qty)

		totals.ProductionSum += lineTotal
		totals.LineItems = append(totals.LineItems, LineItem{
			Item:      item,
			Animation: tier,
			Quantity:  qty,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
	}

	totals.RevisionCost = totals.ProductionSum * (RevisionRate * float64(st.RevisionRounds))
	subtotal := totals.ProductionSum + totals.RevisionCost
	totals.WithRights = subtotal * st.Rights.Coeff
	totals.FinalTotal = totals.WithRights * st.Payment.Coeff

	if st.Promo != nil {
		switch st.Promo.Kind {
		case catalog.PromoFixed:
			totals.DiscountAmount = st.Promo.Discount
			if totals.DiscountAmount > totals.FinalTotal {
				totals.DiscountAmount = totals.FinalTotal
			}
		default:
			totals.DiscountAmount = totals.FinalTotal * st.Promo.Discount
		}
	}
	totals.GrandTotal = totals.FinalTotal - totals.DiscountAmount

	applyMinimum(&totals, min)

	return totals
}

// applyMinimum clamps a first order's grand total up to the configured
// floor, but only when the discount alone pushed it under: a selection
// whose undiscounted price is already below the floor is never raised.
func applyMinimum(t *Totals, min MinimumOrder) {
	if !min.Enabled || !min.FirstOrder || min.Amount <= 0 {
		return
	}
	if t.GrandTotal >= min.Amount || t.FinalTotal < min.Amount {
		return
	}
	t.GrandTotal = min.Amount
	t.DiscountAmount = t.FinalTotal - min.Amount
	t.MinimumApplied = true
}
