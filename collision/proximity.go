// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package collision

import (
	"math"

	"github.com/packsmith/cde/geo"
)

// Proximity is a totally ordered closeness-to-hazard value: a GeoPosition
// tag plus a non-negative absolute distance to the boundary. Interior
// proximities compare by greater distance first (deeper inside is closer to
// the hazard, i.e. smaller under the order), then Exterior proximities by
// smaller distance. Keeping position separate from magnitude removes
// sign-handling branches from the hot HPCell update loop.
type Proximity struct {
	Position geo.GeoPosition
	Dist     float64
}

// NewProximity builds a Proximity, panicking on a non-finite or negative
// distance (other than the +Inf sentinel).
func NewProximity(pos geo.GeoPosition, dist float64) Proximity {
	if math.IsNaN(dist) || dist < 0 {
		panic("collision: NewProximity requires a finite, non-negative distance")
	}
	return Proximity{Position: pos, Dist: dist}
}

// DefaultProximity is the sentinel value: Exterior at +Inf, farther than
// any real hazard.
func DefaultProximity() Proximity {
	return Proximity{Position: geo.Exterior, Dist: math.Inf(1)}
}

// Less reports whether p is strictly closer to a hazard than o under the
// total order described above.
func (p Proximity) Less(o Proximity) bool {
	if p.Position != o.Position {
		return p.Position == geo.Interior
	}
	if p.Position == geo.Interior {
		return p.Dist > o.Dist
	}
	return p.Dist < o.Dist
}

// Min returns whichever of p, o is closer to a hazard; ties favor p.
func (p Proximity) Min(o Proximity) Proximity {
	if o.Less(p) {
		return o
	}
	return p
}

// Signed returns the equivalent signed-distance value: -Dist when Interior,
// +Dist when Exterior, ascending order matching Less. A convenience for
// callers that want a single orderable float64 (e.g. sorting) rather than
// two-field compares, with the important caveat that it collapses the
// Interior/Exterior tie at distance zero, which Less does not.
func (p Proximity) Signed() float64 {
	if p.Position == geo.Interior {
		return -p.Dist
	}
	return p.Dist
}
