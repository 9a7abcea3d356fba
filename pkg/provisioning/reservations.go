// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"sync"
)

// nameReservations serializes the duplicate-check-then-import span per
// candidate slug, so two concurrent registrations normalizing to the same
// name cannot both pass the duplicate check.
type nameReservations struct {
	mu    sync.Mutex
	slots map[string]*reservation
}

type reservation struct {
	mu   sync.Mutex
	refs int
}

// acquire blocks until the slug is free and returns the release func.
func (r *nameReservations) acquire(name string) func() {
	r.mu.Lock()
	slot, ok := r.slots[name]
	if !ok {
		slot = &reservation{}
		r.slots[name] = slot
	}
	slot.refs++
	r.mu.Unlock()

	slot.mu.Lock()

	return func() {
		slot.mu.Unlock()

		r.mu.Lock()
		slot.refs--
		if slot.refs == 0 {
			delete(r.slots, name)
		}
		r.mu.Unlock()
	}
}

func newNameReservations() *nameReservations {
	return &nameReservations{slots: make(map[string]*reservation)}
}
