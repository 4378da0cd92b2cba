package selection

import (
	"reskin-calc/internal/catalog"
)

// OrderType says which halves of an item are produced.
type OrderType string

const (
	OrderArtOnly    OrderType = "art_only"
	OrderAnimOnly   OrderType = "anim_only"
	OrderArtAndAnim OrderType = "art_and_anim"
)

// ItemState is the per-item part of the selection.
type ItemState struct {
	Quantity    int
	AnimationID string
	OrderType   OrderType
	Expanded    bool // UI card state, never priced
}

// State is the user's full current selection. It is a plain value: the
// pricing engine reads it, the Manager mutates it.
type State struct {
	Items          map[string]ItemState
	Style          catalog.VisualStyle
	Rights         catalog.UsageRights
	Payment        catalog.PaymentModel
	RevisionRounds int
	Promo          *catalog.PromoCode
}

// Manager mutates a State against a fixed catalog snapshot, one setter per
// field. Every mutation leaves the state valid for ComputeTotals.
type Manager struct {
	cat   *catalog.Catalog
	state State
}

func NewManager(cat *catalog.Catalog) *Manager {
	m := &Manager{cat: cat}
	m.state = defaultState(cat)
	return m
}

// State returns the managed state for reading. Callers must not mutate it.
func (m *Manager) State() *State {
	return &m.state
}

// Catalog returns the snapshot this selection was built against. Pricing
// must use the same snapshot the selection resolved its choices from, so a
// refresh never mixes old and new multipliers in one computation.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.cat
}

func defaultState(cat *catalog.Catalog) State {
	st := State{
		Items: make(map[string]ItemState, len(cat.Items())),
	}
	for _, item := range cat.Items() {
		st.Items[item.ID] = zeroItemState()
	}
	if len(cat.Styles) > 0 {
		st.Style = cat.Styles[0]
	}
	if len(cat.Rights) > 0 {
		st.Rights = cat.Rights[0]
	}
	if len(cat.Payments) > 0 {
		st.Payment = cat.Payments[0]
	}
	return st
}

func zeroItemState() ItemState {
	return ItemState{
		Quantity:    0,
		AnimationID: catalog.AnimationTierNone,
		OrderType:   OrderArtAndAnim,
	}
}

// SetQuantity clamps to zero from below. MaxQty is enforced by the quantity
// stepper, not here.
func (m *Manager) SetQuantity(itemID string, qty int) {
	is, ok := m.state.Items[itemID]
	if !ok {
		return
	}
	if qty < 0 {
		qty = 0
	}
	is.Quantity = qty
	m.state.Items[itemID] = is
}

func (m *Manager) SetAnimation(itemID, animID string) {
	is, ok := m.state.Items[itemID]
	if !ok {
		return
	}
	is.AnimationID = m.cat.AnimationByID(animID).ID
	m.state.Items[itemID] = is
}

// SetOrderType keeps the animation choice consistent with the order type:
// art_only forces the none tier, and leaving art_only with no tier chosen
// auto-selects the lightest one so the animation half is never silently
// free. The user can still pick none explicitly afterwards.
func (m *Manager) SetOrderType(itemID string, ot OrderType) {
	is, ok := m.state.Items[itemID]
	if !ok {
		return
	}
	prev := is.OrderType
	is.OrderType = ot
	if ot == OrderArtOnly {
		is.AnimationID = catalog.AnimationTierNone
	} else if prev == OrderArtOnly && is.AnimationID == catalog.AnimationTierNone {
		is.AnimationID = m.cat.LightTier().ID
	}
	m.state.Items[itemID] = is
}

func (m *Manager) SetExpanded(itemID string, expanded bool) {
	is, ok := m.state.Items[itemID]
	if !ok {
		return
	}
	is.Expanded = expanded
	m.state.Items[itemID] = is
}

func (m *Manager) SetStyle(s catalog.VisualStyle) {
	m.state.Style = s
}

func (m *Manager) SetUsageRights(r catalog.UsageRights) {
	m.state.Rights = r
}

func (m *Manager) SetPaymentModel(p catalog.PaymentModel) {
	m.state.Payment = p
}

func (m *Manager) SetRevisionRounds(n int) {
	if n < 0 {
		n = 0
	}
	m.state.RevisionRounds = n
}

// SetPromo applies a validated promo, or clears it with nil.
func (m *Manager) SetPromo(p *catalog.PromoCode) {
	m.state.Promo = p
}

// ResetAll restores every item to the zero state and every global field to
// its default.
func (m *Manager) ResetAll() {
	m.state = defaultState(m.cat)
}

// ApplyPreset is a full replace, not a merge: all quantities drop to zero
// first, then the bundle's quantities, animation and style are applied.
// Items the bundle leaves at zero keep the none tier.
func (m *Manager) ApplyPreset(p catalog.Preset) {
	for id := range m.state.Items {
		m.state.Items[id] = zeroItemState()
	}
	for id, qty := range p.ItemQuantities {
		is, ok := m.state.Items[id]
		if !ok || qty <= 0 {
			continue
		}
		is.Quantity = qty
		is.AnimationID = m.cat.AnimationByID(p.AnimationID).ID
		m.state.Items[id] = is
	}
	if style, ok := m.cat.StyleByID(p.StyleID); ok {
		m.state.Style = style
	}
}
