// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package collision

// HazardFilter is a predicate over HazardEntity declaring which hazards a
// particular query should ignore -- used so a caller probing "can this item
// go here" can exclude, say, the item's own previous placement or a quality
// zone it is itself exempt from.
type HazardFilter func(HazardEntity) bool

// NoFilter ignores nothing.
func NoFilter(HazardEntity) bool { return false }

// ExcludeEntity builds a filter that ignores exactly the given entity.
func ExcludeEntity(e HazardEntity) HazardFilter {
	return func(candidate HazardEntity) bool { return candidate == e }
}

// ExcludeKind builds a filter that ignores every hazard of the given kind.
func ExcludeKind(k EntityKind) HazardFilter {
	return func(candidate HazardEntity) bool { return candidate.Kind == k }
}

// GetIrrelevantHazardEntities returns the subset of allHazards' entities
// that filter marks as ignorable, in the order they were supplied. The
// result has the form CDE.SurrogateCollides and CDE.ShapeCollides accept as
// their ignore list, so a query site need not re-walk the hazard list itself.
func GetIrrelevantHazardEntities(filter HazardFilter, allHazards []*Hazard) []HazardEntity {
	if filter == nil {
		return nil
	}
	var irrelevant []HazardEntity
	for _, h := range allHazards {
		if filter(h.Entity()) {
			irrelevant = append(irrelevant, h.Entity())
		}
	}
	return irrelevant
}
