// SPDX-FileCopyrightText : © 2024 Packsmith Contributors
// SPDX-License-Identifier: BSD-2-Clause

package collision

import (
	"testing"

	"github.com/packsmith/cde/geo"
)

func square(x0, y0, side float64) []geo.Point {
	return []geo.Point{
		{X: x0, Y: y0},
		{X: x0 + side, Y: y0},
		{X: x0 + side, Y: y0 + side},
		{X: x0, Y: y0 + side},
	}
}

func mustPolygon(t *testing.T, vs []geo.Point) geo.SimplePolygon {
	t.Helper()
	p, err := geo.NewSimplePolygon(vs, geo.DefaultSurrogateConfig())
	if err != nil {
		t.Fatalf("unexpected polygon error: %v", err)
	}
	return p
}

func TestNewHPCellStaticOnly(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	binHazard := NewHazard(BinOuter(), bin)

	cell := NewHPCell(geo.NewAARectangle(4, 4, 6, 6), []*Hazard{binHazard})

	prox, entity := cell.UniversalHazardProximity()
	if entity.Kind != BinOuterKind {
		t.Fatalf("expected BinOuter closest, got %v", entity)
	}
	// A cell safely inside the bin is on the Exterior (non-colliding) side
	// of the BinOuter hazard, whose presence is Exterior: the proximity
	// reports how far the cell is from leaving the bin, not how "inside"
	// it is.
	if prox.Position != geo.Exterior {
		t.Errorf("expected cell exterior to the BinOuter hazard, got %v", prox.Position)
	}
}

func TestHPCellRegisterHazardAffectsCloserItem(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	binHazard := NewHazard(BinOuter(), bin)
	cell := NewHPCell(geo.NewAARectangle(4, 4, 6, 6), []*Hazard{binHazard})

	item := mustPolygon(t, square(4.5, 4.5, 1))
	itemHazard := NewHazard(PlacedItem(1), item)

	update := cell.RegisterHazard(itemHazard)
	if update != Affected {
		t.Fatalf("expected Affected, got %v", update)
	}
	_, entity := cell.UniversalHazardProximity()
	if entity.Kind != PlacedItemKind {
		t.Errorf("expected placed item to become closest hazard, got %v", entity)
	}
}

func TestHPCellRegisterHazardsEarlyTermination(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 100))
	binHazard := NewHazard(BinOuter(), bin)
	cell := NewHPCell(geo.NewAARectangle(49, 49, 51, 51), []*Hazard{binHazard})

	near := NewHazard(PlacedItem(1), mustPolygon(t, square(49.5, 49.5, 1)))
	far := NewHazard(PlacedItem(2), mustPolygon(t, square(90, 90, 1)))

	cell.RegisterHazards([]*Hazard{far, near})

	_, entity := cell.UniversalHazardProximity()
	if entity != PlacedItem(1) {
		t.Errorf("expected nearest item to win regardless of input order, got %v", entity)
	}
}

func TestHPCellDeregisterHazardsResetsToStatic(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	binHazard := NewHazard(BinOuter(), bin)
	cell := NewHPCell(geo.NewAARectangle(4, 4, 6, 6), []*Hazard{binHazard})

	item := mustPolygon(t, square(4.5, 4.5, 1))
	itemHazard := NewHazard(PlacedItem(1), item)
	cell.RegisterHazard(itemHazard)

	update := cell.DeregisterHazards([]HazardEntity{PlacedItem(1)}, nil)
	if update != Affected {
		t.Fatalf("expected Affected on removing the closest hazard, got %v", update)
	}
	_, entity := cell.UniversalHazardProximity()
	if entity.Kind != BinOuterKind {
		t.Errorf("expected fallback to static baseline, got %v", entity)
	}
}

func TestHPCellDeregisterHazardsUnaffectedWhenIrrelevant(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	binHazard := NewHazard(BinOuter(), bin)
	cell := NewHPCell(geo.NewAARectangle(4, 4, 6, 6), []*Hazard{binHazard})

	update := cell.DeregisterHazards([]HazardEntity{PlacedItem(99)}, nil)
	if update != Unaffected {
		t.Errorf("expected Unaffected, got %v", update)
	}
}

func TestHPCellValueScaledByQualityZone(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	zone := mustPolygon(t, square(5, 0, 5))
	binHazard := NewHazard(BinOuter(), bin)
	zoneHazard := NewHazard(QualityZoneInferior(3, 1), zone)

	// Both cells sit the same distance (3) from the bin border, so the
	// quality-zone scaling is the only thing that can separate their values.
	plainCell := NewHPCell(geo.NewAARectangle(2.5, 4.5, 3.5, 5.5), []*Hazard{binHazard})
	zonedCell := NewHPCell(geo.NewAARectangle(6.5, 4.5, 7.5, 5.5), []*Hazard{binHazard, zoneHazard})

	if zonedCell.Value() >= plainCell.Value() {
		t.Errorf("expected quality zone to scale down cell value: zoned=%v plain=%v", zonedCell.Value(), plainCell.Value())
	}
}
