// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package collision

import "github.com/packsmith/cde/geo"

// Hazard pairs a shape with the HazardEntity naming its origin, plus an
// Active toggle so a hazard can be rolled back from HPG contribution
// without being removed outright -- used by the heuristic layer when
// evaluating alternative placements cheaply.
type Hazard struct {
	shape  geo.SimplePolygon
	e      HazardEntity
	active bool
}

// NewHazard builds an active Hazard for entity e over shape.
func NewHazard(e HazardEntity, shape geo.SimplePolygon) *Hazard {
	return &Hazard{shape: shape, e: e, active: true}
}

// Entity returns the hazard's classifier.
func (h *Hazard) Entity() HazardEntity { return h.e }

// Shape returns the hazard's shape.
func (h *Hazard) Shape() geo.SimplePolygon { return h.shape }

// Active reports whether the hazard currently participates in queries.
func (h *Hazard) Active() bool { return h.active }

// SetActive toggles the hazard's participation without removing it,
// implementing the Active <-> Inactive transition of the per-hazard state
// machine. HPG consistency on this transition is the caller's (CDE's)
// responsibility -- Hazard itself holds no spatial index state.
func (h *Hazard) SetActive(active bool) { h.active = active }
