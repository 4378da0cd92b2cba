package catalog

// Text holds a display string in both supported locales. Rendering is the
// caller's concern; the catalog only carries the data.
type Text struct {
	EN string `json:"en"`
	RU string `json:"ru"`
}

// ItemDetails is optional rich content shown in the item's expanded card.
type ItemDetails struct {
	Description Text `json:"description"`
	Examples    Text `json:"examples"`
	TechNotes   Text `json:"tech_notes"`
}

// Item is one orderable production position. Identity is the ID field.
type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	BasePrice   float64      `json:"base_price"`
	Complexity  float64      `json:"complexity"` // animation complexity multiplier, 0 means 1.0
	Surcharge   float64      `json:"surcharge"`  // fraction, e.g. 0.15
	MaxQty      int          `json:"max_qty"`    // 0 means unbounded
	NoOrderType bool         `json:"no_order_type"`
	NoAnimation bool         `json:"no_animation"`
	Recommended bool         `json:"recommended"`
	Details     *ItemDetails `json:"details,omitempty"`
}

// EffectiveComplexity returns the animation complexity multiplier with the
// 1.0 default applied.
func (i Item) EffectiveComplexity() float64 {
	if i.Complexity <= 0 {
		return 1.0
	}
	return i.Complexity
}

// Category groups items for display. Order is significant.
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// AnimationTierNone is the sentinel tier: coefficient 1.0, zero animation cost.
const AnimationTierNone = "none"

type AnimationTier struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Short string  `json:"short"`
	Coeff float64 `json:"coeff"`
}

// IsNone reports whether the tier is the sentinel no-animation tier.
func (t AnimationTier) IsNone() bool {
	return t.ID == AnimationTierNone
}

type VisualStyle struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Coeff       float64 `json:"coeff"`
	Description Text    `json:"description"`
}

type UsageRights struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Coeff       float64 `json:"coeff"`
	Description Text    `json:"description"`
}

type PaymentModel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Coeff       float64 `json:"coeff"` // <1.0 discount, >1.0 surcharge
	Description Text    `json:"description"`
}

type PromoKind string

const (
	PromoPercentage PromoKind = "percentage"
	PromoFixed      PromoKind = "fixed"
)

// PromoCode maps a normalized code to either a fraction of the final total
// or a fixed currency amount.
type PromoCode struct {
	Code     string    `json:"code"`
	Kind     PromoKind `json:"kind"`
	Discount float64   `json:"discount"`
}

// Source tags where a catalog snapshot's numbers came from.
type Source string

const (
	SourceFallback Source = "fallback"
	SourceLive     Source = "live"
)

// Catalog is one immutable snapshot of reference data. It is replaced as a
// whole on refresh, never patched field by field.
type Catalog struct {
	Source     Source          `json:"source"`
	Categories []Category      `json:"categories"`
	Animations []AnimationTier `json:"animations"`
	Styles     []VisualStyle   `json:"styles"`
	Rights     []UsageRights   `json:"rights"`
	Payments   []PaymentModel  `json:"payments"`
	Promos     []PromoCode     `json:"promos"`
	Presets    []Preset        `json:"presets"`
}

// Items returns every item across categories in catalog order.
func (c *Catalog) Items() []Item {
	var items []Item
	for _, cat := range c.Categories {
		items = append(items, cat.Items...)
	}
	return items
}

func (c *Catalog) ItemByID(id string) (Item, bool) {
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return Item{}, false
}

// AnimationByID resolves a tier id, falling back to the none tier for
// unknown ids. Stale ids from old snapshots degrade silently.
func (c *Catalog) AnimationByID(id string) AnimationTier {
	for _, t := range c.Animations {
		if t.ID == id {
			return t
		}
	}
	return c.NoneTier()
}

// NoneTier returns the sentinel no-animation tier.
func (c *Catalog) NoneTier() AnimationTier {
	for _, t := range c.Animations {
		if t.IsNone() {
			return t
		}
	}
	return AnimationTier{ID: AnimationTierNone, Name: "No animation", Coeff: 1.0}
}

// LightTier returns the first non-none tier in catalog order. Used when an
// item's order type switches back to producing animation.
func (c *Catalog) LightTier() AnimationTier {
	for _, t := range c.Animations {
		if !t.IsNone() {
			return t
		}
	}
	return c.NoneTier()
}

func (c *Catalog) StyleByID(id string) (VisualStyle, bool) {
	for _, s := range c.Styles {
		if s.ID == id {
			return s, true
		}
	}
	return VisualStyle{}, false
}

func (c *Catalog) RightsByID(id string) (UsageRights, bool) {
	for _, r := range c.Rights {
		if r.ID == id {
			return r, true
		}
	}
	return UsageRights{}, false
}

func (c *Catalog) PaymentByID(id string) (PaymentModel, bool) {
	for _, p := range c.Payments {
		if p.ID == id {
			return p, true
		}
	}
	return PaymentModel{}, false
}

func (c *Catalog) PromoByCode(code string) (PromoCode, bool) {
	for _, p := range c.Promos {
		if p.Code == code {
			return p, true
		}
	}
	return PromoCode{}, false
}

func (c *Catalog) PresetByID(id string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
