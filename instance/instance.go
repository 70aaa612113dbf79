// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

// Package instance holds the construction-time description the collision
// detection engine is built from: a Bin (the container region) and the
// Items a packing heuristic will place into it. This is the boundary where
// parser-supplied data is validated before anything reaches collision.CDE.
package instance

import (
	"math"

	"github.com/packsmith/cde/cdeconfig"
	"github.com/packsmith/cde/cdeerr"
	"github.com/packsmith/cde/collision"
	"github.com/packsmith/cde/geo"
)

// QualityZone tags a sub-region of a Bin with the minimum quality class
// items must carry to be placed inside it.
type QualityZone struct {
	Polygon geo.SimplePolygon
	Quality int
}

// Bin is the container region into which items are packed: its outer
// boundary, zero or more holes, and zero or more quality zones.
type Bin struct {
	Outer        geo.SimplePolygon
	Holes        []geo.SimplePolygon
	QualityZones []QualityZone
}

// Item is a placeable shape plus the rotations a heuristic is allowed to
// try and a filter declaring which hazards this item should ignore during
// its own collision queries (typically its own prior placement, and any
// quality zone whose quality it meets).
type Item struct {
	ID               int
	Polygon          geo.SimplePolygon
	AllowedRotations []float64
	Filter           collision.HazardFilter
}

// Instance bundles a Bin and its candidate Items -- the complete,
// validated construction input for BuildCDE.
type Instance struct {
	Bin   Bin
	Items []Item
}

// BuildCDE validates inst (quality-zone indices in [0, NQualities), finite
// allowed rotations) and constructs the collision detection engine seeded
// with the bin's static hazards (outer boundary, holes, quality zones); cfg
// is passed to collision.New unchecked. Items are not registered here: RegisterItem is a
// mutating operation the heuristic layer drives itself as it places items.
func BuildCDE(inst Instance, cfg cdeconfig.CDEConfig) (*collision.CDE, error) {
	if err := validate(inst); err != nil {
		return nil, err
	}

	staticHazards := make([]*collision.Hazard, 0, 1+len(inst.Bin.Holes)+len(inst.Bin.QualityZones))
	staticHazards = append(staticHazards, collision.NewHazard(collision.BinOuter(), inst.Bin.Outer))
	for i, hole := range inst.Bin.Holes {
		staticHazards = append(staticHazards, collision.NewHazard(collision.BinHole(i), hole))
	}
	for i, zone := range inst.Bin.QualityZones {
		staticHazards = append(staticHazards, collision.NewHazard(
			collision.QualityZoneInferior(zone.Quality, i), zone.Polygon))
	}

	return collision.New(inst.Bin.Outer.BBox(), staticHazards, cfg)
}

func validate(inst Instance) error {
	for _, zone := range inst.Bin.QualityZones {
		if zone.Quality < 0 || zone.Quality >= collision.NQualities {
			return cdeerr.Newf(cdeerr.InvalidInput, "BuildCDE",
				"quality zone index %d out of range [0, %d)", zone.Quality, collision.NQualities)
		}
	}
	for _, item := range inst.Items {
		for _, theta := range item.AllowedRotations {
			if !finite(theta) {
				return cdeerr.Newf(cdeerr.InvalidInput, "BuildCDE", "item %d has a non-finite allowed rotation", item.ID)
			}
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
