package model

import (
	"time"

	"github.com/google/uuid"
)

// Entity carries the identity and timestamp fields shared by every
// record in the directory. ID and CreatedAt are assigned once at
// construction; UpdatedAt is refreshed on every successful mutation.
type Entity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newEntity() Entity {
	now := time.Now().UTC()
	return Entity{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
}

// Touch refreshes UpdatedAt. UpdatedAt must strictly increase across
// mutations, so back-to-back calls within the clock's resolution are
// nudged forward by a nanosecond.
func (e *Entity) Touch() {
	now := time.Now().UTC()
	if !now.After(e.UpdatedAt) {
		now = e.UpdatedAt.Add(time.Nanosecond)
	}
	e.UpdatedAt = now
}
