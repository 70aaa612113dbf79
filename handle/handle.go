// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

// Package handle provides the opaque token a caller holds after
// registering an item with the collision detection engine, used to later
// deregister it. Identity is a generated UUID rather than a slice index so
// a handle stays valid across engine Clone operations and item removals
// that shift other items' positions.
package handle

import "github.com/google/uuid"

// Hazard identifies one dynamic hazard registration.
type Hazard struct {
	id uuid.UUID
}

// New returns a fresh, globally unique Hazard handle.
func New() Hazard {
	return Hazard{id: uuid.New()}
}

// String renders the handle for logs.
func (h Hazard) String() string {
	return h.id.String()
}
