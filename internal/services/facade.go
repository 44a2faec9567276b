// Package services contains the facade coordinating all cross-entity
// operations over the directory's stores. It is the only entry point
// the transport layer consumes.
package services

import (
	"github.com/stayhub/stayhub/internal/store"
)

// Facade orchestrates the entity tables and enforces the invariants no
// single table can enforce alone: email uniqueness, case-insensitive
// amenity-name uniqueness, and foreign-id existence on create.
//
// Lookups return (nil, nil) when nothing matches; errors are reserved
// for constraint violations and driver failures.
type Facade struct {
	store store.Store
}

// New creates a Facade over the given store. The store is injected so
// callers control its lifetime; there is no shared global instance.
func New(s store.Store) *Facade {
	return &Facade{store: s}
}
