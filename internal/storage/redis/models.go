package redis

import (
	"time"

	"reskin-calc/internal/selection"
)

// Draft is a saved calculator session: the selection snapshot plus when it
// was last written. Drafts expire with the configured TTL.
type Draft struct {
	Snapshot selection.Snapshot `json:"snapshot"`
	SavedAt  time.Time          `json:"saved_at"`
}
