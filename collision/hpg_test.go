// SPDX-FileCopyrightText : © 2024 Packsmith Contributors
// SPDX-License-Identifier: BSD-2-Clause

package collision

import (
	"testing"

	"github.com/packsmith/cde/geo"
)

func TestNewHPGTilesBoundingBox(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	binHazard := NewHazard(BinOuter(), bin)

	grid := NewHPG(geo.NewAARectangle(0, 0, 10, 10), 25, []*Hazard{binHazard})
	if grid.NCells() == 0 {
		t.Fatalf("expected at least one cell")
	}
}

func TestHPGQueryClampsOutOfBounds(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	binHazard := NewHazard(BinOuter(), bin)
	grid := NewHPG(geo.NewAARectangle(0, 0, 10, 10), 25, []*Hazard{binHazard})

	inBounds := grid.Query(geo.Point{X: 5, Y: 5})
	outOfBounds := grid.Query(geo.Point{X: -100, Y: -100})
	if inBounds == nil || outOfBounds == nil {
		t.Fatalf("expected non-nil cells for both queries")
	}
}

func TestHPGRegisterAffectsOnlyNearbyCells(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 100))
	binHazard := NewHazard(BinOuter(), bin)
	grid := NewHPG(geo.NewAARectangle(0, 0, 100, 100), 100, []*Hazard{binHazard})

	item := NewHazard(PlacedItem(1), mustPolygon(t, square(50, 50, 1)))
	affected := grid.Register([]*Hazard{item})
	if len(affected) == 0 {
		t.Errorf("expected at least one affected cell near the placed item")
	}
	if len(affected) == grid.NCells() {
		t.Errorf("expected registering a small item not to affect every cell's value")
	}
}

func TestHPGDeregisterRestoresValue(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 20))
	binHazard := NewHazard(BinOuter(), bin)
	grid := NewHPG(geo.NewAARectangle(0, 0, 20, 20), 16, []*Hazard{binHazard})

	cell := grid.Query(geo.Point{X: 10, Y: 10})
	before := cell.Value()

	item := NewHazard(PlacedItem(1), mustPolygon(t, square(9.5, 9.5, 1)))
	grid.Register([]*Hazard{item})
	if cell.Value() == before {
		t.Fatalf("expected registration to change the queried cell's value")
	}

	grid.Deregister([]HazardEntity{PlacedItem(1)}, nil)
	if cell.Value() != before {
		t.Errorf("expected deregistration to restore original value, got %v want %v", cell.Value(), before)
	}
}
