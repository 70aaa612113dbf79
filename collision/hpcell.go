// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package collision

import (
	"math"

	"github.com/packsmith/cde/geo"
)

// NQualities is the fixed number of quality classes a bin's quality zones
// may use; quality indices must lie in [0, NQualities).
const NQualities = 10

// HPCellUpdate reports how a register/deregister call changed an HPCell,
// driving the fan-out pruning a caller walking neighboring cells performs:
// Boundary promises every further-out cell is also Unaffected.
type HPCellUpdate int

const (
	// Affected: the cell's universal hazard proximity changed.
	Affected HPCellUpdate = iota
	// Unaffected: no change, and nothing can be inferred about neighbors.
	Unaffected
	// Boundary: unaffected, and every cell farther from the update than
	// this one is guaranteed unaffected too.
	Boundary
)

func (u HPCellUpdate) String() string {
	switch u {
	case Affected:
		return "Affected"
	case Unaffected:
		return "Unaffected"
	case Boundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}

// uniHazProx pairs a Proximity with the entity it is measured to, so an
// HPCell can report not just "how close" but "close to what" -- needed by
// deregister_hazards to tell whether the removed set includes the cell's
// current closest hazard.
type uniHazProx struct {
	prox   Proximity
	entity HazardEntity
}

// HPCell caches, for one cell of a HazardProximityGrid, the proximity to
// the nearest universal hazard (bin boundary, hole, or placed item) and to
// the nearest quality zone of each quality class. Holding these as running
// minimums lets register/deregister update a cell in time proportional to
// the hazards that changed, not the hazards in the whole instance.
type HPCell struct {
	bbox   geo.AARectangle
	centroid geo.Point
	radius float64

	uniHazProx       uniHazProx
	staticUniHazProx uniHazProx
	qzHazProx        [NQualities]Proximity
}

// NewHPCell builds a cell over bbox, seeding its proximity caches from the
// static hazards (bin outer, holes, quality zones) alone. Dynamic hazards
// (placed items) are added later via RegisterHazards.
func NewHPCell(bbox geo.AARectangle, staticHazards []*Hazard) *HPCell {
	centroid := bbox.Centroid()
	radius := math.Hypot(bbox.Width()/2, bbox.Height()/2)

	cell := &HPCell{
		bbox:     bbox,
		centroid: centroid,
		radius:   radius,
		staticUniHazProx: uniHazProx{
			prox:   DefaultProximity(),
			entity: BinOuter(),
		},
	}
	for i := range cell.qzHazProx {
		cell.qzHazProx[i] = DefaultProximity()
	}

	for _, hazard := range staticHazards {
		pos, dist := hazard.Shape().DistanceFromBorder(centroid)
		var prox Proximity
		if pos == hazard.Entity().Presence() {
			prox = NewProximity(geo.Interior, dist)
		} else {
			prox = NewProximity(geo.Exterior, dist)
		}

		switch hazard.Entity().Kind {
		case BinOuterKind, BinHoleKind:
			if prox.Less(cell.staticUniHazProx.prox) {
				cell.staticUniHazProx = uniHazProx{prox: prox, entity: hazard.Entity()}
			}
		case QualityZoneInferiorKind:
			q := hazard.Entity().Quality
			cell.qzHazProx[q] = cell.qzHazProx[q].Min(prox)
		default:
			panic("collision: NewHPCell received a non-static hazard entity")
		}
	}

	cell.uniHazProx = cell.staticUniHazProx
	return cell
}

// RegisterHazard folds a single dynamic hazard into the cell, using the
// hazard's surrogate poles as a fast, conservative stand-in for its true
// shape. Returns how the cell was affected.
func (c *HPCell) RegisterHazard(toRegister *Hazard) HPCellUpdate {
	currentProx := c.uniHazProx.prox

	if toRegister.Entity().Presence() != geo.Interior {
		panic("collision: RegisterHazard has no support for dynamic exterior hazards")
	}
	hazProx := c.distanceToSurrogatePolesBorder(toRegister.Shape().Surrogate().Poles())

	if hazProx.Less(currentProx) {
		c.uniHazProx = uniHazProx{prox: hazProx, entity: toRegister.Entity()}
		return Affected
	}
	if hazProx.Dist > currentProx.Dist+2*c.radius {
		return Boundary
	}
	return Unaffected
}

// RegisterHazards folds a batch of dynamic hazards into the cell in
// ascending order of their bounding-circle lower bound, stopping as soon as
// a candidate's lower bound can no longer beat the current closest hazard
// -- every hazard after that point in the order is guaranteed farther
// still. A hazard with no applicable lower bound (non-Interior presence,
// which RegisterHazard itself rejects) has no ordering to participate in,
// so every such candidate is processed first, unconditionally, before the
// ascending-bound scan begins: otherwise one could be left stranded behind
// an early exit and never get the chance to fail fast.
func (c *HPCell) RegisterHazards(toRegister []*Hazard) {
	type candidate struct {
		hazard *Hazard
		bound  Proximity
	}

	candidates := make([]candidate, 0, len(toRegister))
	for _, h := range toRegister {
		if !h.Active() {
			continue
		}
		if h.Entity().Presence() != geo.Interior {
			c.RegisterHazard(h)
			continue
		}
		boundCircle := h.Shape().Surrogate().PolesBoundingCircle()
		pos, dist := boundCircle.DistanceFromBorder(c.centroid)
		candidates = append(candidates, candidate{hazard: h, bound: NewProximity(pos, absFloat(dist))})
	}

	for len(candidates) > 0 {
		minIdx := 0
		for i := 1; i < len(candidates); i++ {
			if candidates[i].bound.Less(candidates[minIdx].bound) {
				minIdx = i
			}
		}

		cand := candidates[minIdx]
		currentProx := c.uniHazProx.prox
		if !currentProx.Less(cand.bound) {
			c.RegisterHazard(cand.hazard)
			candidates = removeAt(candidates, minIdx)
		} else {
			break
		}
	}
}

func removeAt[T any](s []T, i int) []T {
	last := len(s) - 1
	s[i] = s[last]
	return s[:last]
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// DeregisterHazards removes toDeregister's influence on the cell if any of
// them is its current closest hazard, resetting to the static baseline and
// re-registering the remaining live dynamic hazards. Quality-zone
// proximities never change after construction (they are static-only).
func (c *HPCell) DeregisterHazards(toDeregister []HazardEntity, remaining []*Hazard) HPCellUpdate {
	closest := c.uniHazProx.entity
	for _, e := range toDeregister {
		if e == closest {
			c.uniHazProx = c.staticUniHazProx
			c.RegisterHazards(remaining)
			return Affected
		}
	}
	return Unaffected
}

// BBox returns the cell's axis-aligned extent.
func (c *HPCell) BBox() geo.AARectangle { return c.bbox }

// Radius returns half the cell's diagonal, the slack used in Boundary
// classification.
func (c *HPCell) Radius() float64 { return c.radius }

// Centroid returns the cell's center point.
func (c *HPCell) Centroid() geo.Point { return c.centroid }

// Value returns the placement-heuristic score for this cell: the squared
// universal hazard distance, scaled down if the centroid lies within a
// quality zone.
func (c *HPCell) Value() float64 {
	return calculateValue(c.uniHazProx.prox, c.qzHazProx)
}

func calculateValue(uniProx Proximity, qzProx [NQualities]Proximity) float64 {
	value := uniProx.Dist * uniProx.Dist

	quality := -1
	for q, p := range qzProx {
		if p.Position == geo.Interior {
			quality = q
			break
		}
	}

	factor := 1.0
	if quality >= 0 {
		factor = float64(quality) / float64(NQualities)
	}
	return value * factor
}

// ValueLoss reports the drop in Value a new hazard at newProx would cause
// if registered, along with the resulting HPCellUpdate, without mutating
// the cell -- used by the placement heuristic to score candidates cheaply.
func (c *HPCell) ValueLoss(newProx Proximity) (float64, bool, HPCellUpdate) {
	current := c.uniHazProx.prox
	if newProx.Less(current) {
		newValue := calculateValue(newProx, c.qzHazProx)
		return c.Value() - newValue, true, Affected
	}
	if newProx.Dist > current.Dist+2*c.radius {
		return 0, false, Boundary
	}
	return 0, false, Unaffected
}

// HazardProximity returns the minimum proximity over the universal hazard
// and every quality zone up to (but excluding) qualityLevel; pass -1 to
// consider all quality classes.
func (c *HPCell) HazardProximity(qualityLevel int) Proximity {
	hazProx := c.uniHazProx.prox
	upTo := NQualities
	if qualityLevel >= 0 {
		upTo = qualityLevel
	}
	for q := 0; q < upTo; q++ {
		hazProx = hazProx.Min(c.qzHazProx[q])
	}
	return hazProx
}

// UniversalHazardProximity returns the cell's current closest hazard and
// its proximity.
func (c *HPCell) UniversalHazardProximity() (Proximity, HazardEntity) {
	return c.uniHazProx.prox, c.uniHazProx.entity
}

// StaticUniversalHazardProximity returns the closest static-only hazard,
// ignoring any dynamic (placed-item) contribution.
func (c *HPCell) StaticUniversalHazardProximity() (Proximity, HazardEntity) {
	return c.staticUniHazProx.prox, c.staticUniHazProx.entity
}

// QualityZoneProximity returns the closest proximity recorded for quality
// class q.
func (c *HPCell) QualityZoneProximity(q int) Proximity {
	return c.qzHazProx[q]
}

func (c *HPCell) distanceToSurrogatePolesBorder(poles []geo.Circle) Proximity {
	best := DefaultProximity()
	for _, p := range poles {
		pos, dist := p.DistanceFromBorder(c.centroid)
		prox := NewProximity(pos, absFloat(dist))
		best = best.Min(prox)
	}
	return best
}
