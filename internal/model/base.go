package model

import (
	"time"
)

// Timestamps is embedded by the community records that track edits.
// swagger:model
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Record is implemented by every entity kept in the content store.
type Record interface {
	RecordID() uint
	CollectionName() string
}

// Touch stamps UpdatedAt, and CreatedAt the first time it is called.
func (t *Timestamps) Touch(at time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = at
	}
	t.UpdatedAt = at
}
