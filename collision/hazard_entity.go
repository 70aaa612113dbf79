// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package collision

import "github.com/packsmith/cde/geo"

// EntityKind closes the set of hazard origins a HazardEntity can name. Go
// has no enum-with-payload sum type, so this is a Kind field plus payload
// fields instead, switched on in Presence() and anywhere hpcell.go needs to
// branch by origin.
type EntityKind int

const (
	// BinOuterKind: collision if an item touches the strip/bin boundary
	// from the inside (its presence is Exterior -- the hazard is "being
	// outside the bin").
	BinOuterKind EntityKind = iota
	// BinHoleKind: a hole cut out of the bin; items must stay outside it.
	BinHoleKind
	// QualityZoneInferiorKind: a sub-region only items of sufficient
	// quality may intersect.
	QualityZoneInferiorKind
	// PlacedItemKind: an already-placed item; new items must stay outside it.
	PlacedItemKind
)

// HazardEntity is a tagged classifier naming the origin of a Hazard. ID is
// used by BinHoleKind and PlacedItemKind; Quality and ID are used by
// QualityZoneInferiorKind. Comparable by value so it can key a map or be
// compared for equality when deregistering.
type HazardEntity struct {
	Kind    EntityKind
	ID      int
	Quality int
}

// BinOuter returns the singleton-like BinOuter entity (there is exactly one
// per bin, but it still carries no state so a fresh value is always equal
// to any other).
func BinOuter() HazardEntity { return HazardEntity{Kind: BinOuterKind} }

// BinHole returns the entity for bin hole id.
func BinHole(id int) HazardEntity { return HazardEntity{Kind: BinHoleKind, ID: id} }

// QualityZoneInferior returns the entity for a quality-zone hazard of the
// given quality class and zone id.
func QualityZoneInferior(quality, id int) HazardEntity {
	return HazardEntity{Kind: QualityZoneInferiorKind, Quality: quality, ID: id}
}

// PlacedItem returns the entity for a placed item id.
func PlacedItem(id int) HazardEntity {
	return HazardEntity{Kind: PlacedItemKind, ID: id}
}

// Presence returns the GeoPosition at which an item is considered
// colliding with a hazard of this entity: Exterior for BinOuter (you must
// stay inside the bin), Interior for everything else (you must stay
// outside holes, quality-zone-exclusive regions, and other items).
func (e HazardEntity) Presence() geo.GeoPosition {
	if e.Kind == BinOuterKind {
		return geo.Exterior
	}
	return geo.Interior
}

// IsStatic reports whether this entity kind is fixed at construction time
// (bin geometry) rather than added/removed during packing (placed items).
func (e HazardEntity) IsStatic() bool {
	return e.Kind == BinOuterKind || e.Kind == BinHoleKind || e.Kind == QualityZoneInferiorKind
}

// String renders the entity for logs and test failures.
func (e HazardEntity) String() string {
	switch e.Kind {
	case BinOuterKind:
		return "BinOuter"
	case BinHoleKind:
		return "BinHole"
	case QualityZoneInferiorKind:
		return "QualityZoneInferior"
	case PlacedItemKind:
		return "PlacedItem"
	default:
		return "Unknown"
	}
}
