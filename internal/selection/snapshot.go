package selection

import (
	"reskin-calc/internal/catalog"
)

// Snapshot is the persisted shape of a selection. Only ids are trusted on
// reload: global choices are re-resolved against the current catalog so
// catalog edits apply retroactively, with the embedded object as fallback
// when the id no longer exists.
type Snapshot struct {
	GlobalStyle    catalog.VisualStyle     `json:"globalStyle"`
	UsageRights    catalog.UsageRights     `json:"usageRights"`
	PaymentModel   catalog.PaymentModel    `json:"paymentModel"`
	RevisionRounds int                     `json:"revisionRounds"`
	AppliedPromo   *catalog.PromoCode      `json:"appliedPromo"`
	Items          map[string]SnapshotItem `json:"items"`
}

type SnapshotItem struct {
	Qty  int    `json:"qty"`
	Anim string `json:"anim"`
}

// Snapshot captures the current selection for persistence.
func (m *Manager) Snapshot() Snapshot {
	snap := Snapshot{
		GlobalStyle:    m.state.Style,
		UsageRights:    m.state.Rights,
		PaymentModel:   m.state.Payment,
		RevisionRounds: m.state.RevisionRounds,
		AppliedPromo:   m.state.Promo,
		Items:          make(map[string]SnapshotItem, len(m.state.Items)),
	}
	for id, is := range m.state.Items {
		snap.Items[id] = SnapshotItem{Qty: is.Quantity, Anim: is.AnimationID}
	}
	return snap
}

// LoadSnapshot restores a persisted selection. Catalog items absent from an
// older snapshot are synthesized with the zero default, so saved drafts
// survive catalog growth. Unknown animation ids degrade to the none tier.
func (m *Manager) LoadSnapshot(snap Snapshot) {
	st := State{
		Items:          make(map[string]ItemState, len(m.cat.Items())),
		RevisionRounds: snap.RevisionRounds,
		Promo:          m.resolvePromo(snap.AppliedPromo),
	}
	if st.RevisionRounds < 0 {
		st.RevisionRounds = 0
	}

	for _, item := range m.cat.Items() {
		is := zeroItemState()
		if si, ok := snap.Items[item.ID]; ok {
			qty := si.Qty
			if qty < 0 {
				qty = 0
			}
			is.Quantity = qty
			is.AnimationID = m.cat.AnimationByID(si.Anim).ID
		}
		st.Items[item.ID] = is
	}

	st.Style = m.resolveStyle(snap.GlobalStyle)
	st.Rights = m.resolveRights(snap.UsageRights)
	st.Payment = m.resolvePayment(snap.PaymentModel)

	m.state = st
}

// resolvePromo re-resolves a saved promo against the current promo table so
// the catalog's discount wins over whatever the snapshot recorded. A code
// removed from the table keeps the embedded object as fallback.
func (m *Manager) resolvePromo(saved *catalog.PromoCode) *catalog.PromoCode {
	if saved == nil {
		return nil
	}
	if p, ok := m.cat.PromoByCode(saved.Code); ok {
		return &p
	}
	return saved
}

func (m *Manager) resolveStyle(saved catalog.VisualStyle) catalog.VisualStyle {
	if s, ok := m.cat.StyleByID(saved.ID); ok {
		return s
	}
	if saved.ID != "" {
		return saved
	}
	if len(m.cat.Styles) > 0 {
		return m.cat.Styles[0]
	}
	return saved
}

func (m *Manager) resolveRights(saved catalog.UsageRights) catalog.UsageRights {
	if r, ok := m.cat.RightsByID(saved.ID); ok {
		return r
	}
	if saved.ID != "" {
		return saved
	}
	if len(m.cat.Rights) > 0 {
		return m.cat.Rights[0]
	}
	return saved
}

func (m *Manager) resolvePayment(saved catalog.PaymentModel) catalog.PaymentModel {
	if p, ok := m.cat.PaymentByID(saved.ID); ok {
		return p
	}
	if saved.ID != "" {
		return saved
	}
	if len(m.cat.Payments) > 0 {
		return m.cat.Payments[0]
	}
	return saved
}
