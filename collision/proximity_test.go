// SPDX-FileCopyrightText : © 2024 Packsmith Contributors
// SPDX-License-Identifier: BSD-2-Clause

package collision

import (
	"testing"

	"github.com/packsmith/cde/geo"
)

func TestProximityLessInteriorDeeper(t *testing.T) {
	deep := Proximity{Position: geo.Interior, Dist: 5}
	shallow := Proximity{Position: geo.Interior, Dist: 1}
	if !deep.Less(shallow) {
		t.Errorf("expected deeper interior point to be closer")
	}
}

func TestProximityLessExteriorNearer(t *testing.T) {
	near := Proximity{Position: geo.Exterior, Dist: 1}
	far := Proximity{Position: geo.Exterior, Dist: 5}
	if !near.Less(far) {
		t.Errorf("expected nearer exterior point to be closer")
	}
}

func TestProximityInteriorAlwaysClosesThanExterior(t *testing.T) {
	interior := Proximity{Position: geo.Interior, Dist: 1000}
	exterior := Proximity{Position: geo.Exterior, Dist: 0.001}
	if !interior.Less(exterior) {
		t.Errorf("expected any interior proximity to be closer than any exterior one")
	}
}

func TestProximityMin(t *testing.T) {
	a := Proximity{Position: geo.Exterior, Dist: 5}
	b := Proximity{Position: geo.Exterior, Dist: 2}
	if got := a.Min(b); got != b {
		t.Errorf("Min: got %v, want %v", got, b)
	}
}

func TestDefaultProximityIsFarthestExterior(t *testing.T) {
	def := DefaultProximity()
	if def.Position != geo.Exterior {
		t.Errorf("expected default proximity to be Exterior")
	}
	any := Proximity{Position: geo.Exterior, Dist: 1e9}
	if !any.Less(def) {
		t.Errorf("expected any finite exterior proximity to be closer than the sentinel")
	}
}

func TestNewProximityRejectsNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on negative distance")
		}
	}()
	NewProximity(geo.Interior, -1)
}
