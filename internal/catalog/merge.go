package catalog

// RateOverrides carries server-sourced numeric overrides for the built-in
// catalog. Keys are catalog ids; unknown keys are ignored so the backend
// can publish rates for items a given build does not ship yet.
type RateOverrides struct {
	ItemBasePrices  map[string]float64 `json:"item_base_prices"`
	AnimationCoeffs map[string]float64 `json:"animation_coeffs"`
	StyleCoeffs     map[string]float64 `json:"style_coeffs"`
	RightsCoeffs    map[string]float64 `json:"rights_coeffs"`
	PaymentCoeffs   map[string]float64 `json:"payment_coeffs"`
	Promos          []PromoCode        `json:"promos"`
}

// ApplyOverrides merges overrides onto base and returns a new catalog
// tagged SourceLive. The merge is a single step producing one complete
// snapshot: base is never mutated, and no caller can observe a catalog with
// a mix of old and new multipliers.
func ApplyOverrides(base *Catalog, o *RateOverrides) *Catalog {
	merged := &Catalog{
		Source:     SourceLive,
		Categories: make([]Category, len(base.Categories)),
		Animations: make([]AnimationTier, len(base.Animations)),
		Styles:     make([]VisualStyle, len(base.Styles)),
		Rights:     make([]UsageRights, len(base.Rights)),
		Payments:   make([]PaymentModel, len(base.Payments)),
		Promos:     make([]PromoCode, len(base.Promos)),
		Presets:    base.Presets,
	}

	for i, cat := range base.Categories {
		items := make([]Item, len(cat.Items))
		for j, item := range cat.Items {
			if price, ok := o.ItemBasePrices[item.ID]; ok && price >= 0 {
				item.BasePrice = price
			}
			items[j] = item
		}
		merged.Categories[i] = Category{Name: cat.Name, Items: items}
	}

	for i, t := range base.Animations {
		// The none tier is a sentinel, its coefficient stays 1.0.
		if coeff, ok := o.AnimationCoeffs[t.ID]; ok && coeff >= 1.0 && !t.IsNone() {
			t.Coeff = coeff
		}
		merged.Animations[i] = t
	}
	for i, s := range base.Styles {
		if coeff, ok := o.StyleCoeffs[s.ID]; ok && coeff >= 1.0 {
			s.Coeff = coeff
		}
		merged.Styles[i] = s
	}
	for i, r := range base.Rights {
		if coeff, ok := o.RightsCoeffs[r.ID]; ok && coeff >= 1.0 {
			r.Coeff = coeff
		}
		merged.Rights[i] = r
	}
	for i, p := range base.Payments {
		if coeff, ok := o.PaymentCoeffs[p.ID]; ok && coeff > 0 {
			p.Coeff = coeff
		}
		merged.Payments[i] = p
	}

	copy(merged.Promos, base.Promos)
	if len(o.Promos) > 0 {
		merged.Promos = append([]PromoCode(nil), o.Promos...)
	}

	return merged
}
