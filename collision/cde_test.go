// SPDX-FileCopyrightText : © 2024 Packsmith Contributors
// SPDX-License-Identifier: BSD-2-Clause

package collision

import (
	"testing"

	"github.com/packsmith/cde/cdeconfig"
	"github.com/packsmith/cde/geo"
)

func mustCDE(t *testing.T, bbox geo.AARectangle, staticHazards []*Hazard) *CDE {
	t.Helper()
	cde, err := New(bbox, staticHazards, cdeconfig.New())
	if err != nil {
		t.Fatalf("unexpected error building CDE: %v", err)
	}
	return cde
}

func TestCDERegisterItemThenDeregister(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	binHazard := NewHazard(BinOuter(), bin)
	cde := mustCDE(t, geo.NewAARectangle(0, 0, 10, 10), []*Hazard{binHazard})

	item := mustPolygon(t, square(4, 4, 1))
	tok, err := cde.RegisterItem(PlacedItem(1), item)
	if err != nil {
		t.Fatalf("unexpected error registering item: %v", err)
	}

	if len(cde.AllHazards()) != 2 {
		t.Fatalf("expected 2 hazards after registration, got %d", len(cde.AllHazards()))
	}

	if err := cde.DeregisterItem(tok); err != nil {
		t.Fatalf("unexpected error deregistering: %v", err)
	}
	if len(cde.AllHazards()) != 1 {
		t.Errorf("expected 1 hazard after deregistration, got %d", len(cde.AllHazards()))
	}
}

func TestCDEDeregisterUnknownHandleErrors(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	cde := mustCDE(t, geo.NewAARectangle(0, 0, 10, 10), []*Hazard{NewHazard(BinOuter(), bin)})

	bogus, err := cde.RegisterItem(PlacedItem(1), mustPolygon(t, square(1, 1, 1)))
	if err != nil {
		t.Fatalf("unexpected error registering item: %v", err)
	}
	if err := cde.DeregisterItem(bogus); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cde.DeregisterItem(bogus); err == nil {
		t.Errorf("expected error deregistering an already-removed handle")
	}
}

func TestCDEShapeCollidesWithPlacedItem(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	cde := mustCDE(t, geo.NewAARectangle(0, 0, 10, 10), []*Hazard{NewHazard(BinOuter(), bin)})

	if _, err := cde.RegisterItem(PlacedItem(1), mustPolygon(t, square(3, 3, 2))); err != nil {
		t.Fatalf("unexpected error registering item: %v", err)
	}

	overlapping := mustPolygon(t, square(4, 4, 2))
	if !cde.ShapeCollides(overlapping, nil) {
		t.Errorf("expected overlap with placed item to collide")
	}

	clear := mustPolygon(t, square(8, 8, 1))
	if cde.ShapeCollides(clear, nil) {
		t.Errorf("expected non-overlapping placement to not collide")
	}
}

func TestCDEShapeCollidesOutsideBin(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	cde := mustCDE(t, geo.NewAARectangle(0, 0, 10, 10), []*Hazard{NewHazard(BinOuter(), bin)})

	outside := mustPolygon(t, square(9, 9, 5))
	if !cde.ShapeCollides(outside, nil) {
		t.Errorf("expected placement crossing the bin boundary to collide")
	}
}

func TestCDEShapeCollidesIgnoresFilteredEntity(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	cde := mustCDE(t, geo.NewAARectangle(0, 0, 10, 10), []*Hazard{NewHazard(BinOuter(), bin)})
	if _, err := cde.RegisterItem(PlacedItem(1), mustPolygon(t, square(3, 3, 2))); err != nil {
		t.Fatalf("unexpected error registering item: %v", err)
	}

	overlapping := mustPolygon(t, square(4, 4, 2))
	if cde.ShapeCollides(overlapping, []HazardEntity{PlacedItem(1)}) {
		t.Errorf("expected ignoring the item's own entity to suppress the collision")
	}
}

func TestCDECloneIsIndependent(t *testing.T) {
	bin := mustPolygon(t, square(0, 0, 10))
	cde := mustCDE(t, geo.NewAARectangle(0, 0, 10, 10), []*Hazard{NewHazard(BinOuter(), bin)})
	if _, err := cde.RegisterItem(PlacedItem(1), mustPolygon(t, square(3, 3, 2))); err != nil {
		t.Fatalf("unexpected error registering item: %v", err)
	}

	clone := cde.Clone()
	if _, err := clone.RegisterItem(PlacedItem(2), mustPolygon(t, square(7, 7, 1))); err != nil {
		t.Fatalf("unexpected error registering item: %v", err)
	}

	if len(cde.AllHazards()) == len(clone.AllHazards()) {
		t.Errorf("expected clone mutation not to affect the original: original=%d clone=%d",
			len(cde.AllHazards()), len(clone.AllHazards()))
	}
}
