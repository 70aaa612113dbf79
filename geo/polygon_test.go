// SPDX-FileCopyrightText : © 2024 Packsmith Contributors
// SPDX-License-Identifier: BSD-2-Clause

package geo

import "testing"

func square(x0, y0, side float64) []Point {
	return []Point{
		{X: x0, Y: y0},
		{X: x0 + side, Y: y0},
		{X: x0 + side, Y: y0 + side},
		{X: x0, Y: y0 + side},
	}
}

func TestNewSimplePolygonArea(t *testing.T) {
	p, err := NewSimplePolygon(square(0, 0, 2), DefaultSurrogateConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Area() != 4 {
		t.Errorf("Area: got %v, want 4", p.Area())
	}
	if c := p.Centroid(); !c.Aeq(Point{X: 1, Y: 1}) {
		t.Errorf("Centroid: got %v", c)
	}
}

func TestNewSimplePolygonRejectsDegenerate(t *testing.T) {
	cases := [][]Point{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},                                // too few vertices
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},                  // duplicate vertex
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},                  // zero area (collinear)
	}
	for i, vs := range cases {
		if _, err := NewSimplePolygon(vs, DefaultSurrogateConfig()); err == nil {
			t.Errorf("case %d: expected error for %v", i, vs)
		}
	}
}

func TestNewSimplePolygonRejectsSelfIntersecting(t *testing.T) {
	bowtie := []Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	if _, err := NewSimplePolygon(bowtie, DefaultSurrogateConfig()); err == nil {
		t.Errorf("expected error for self-intersecting polygon")
	}
}

func TestSimplePolygonContains(t *testing.T) {
	p, _ := NewSimplePolygon(square(0, 0, 10), DefaultSurrogateConfig())
	if !p.Contains(Point{X: 5, Y: 5}) {
		t.Errorf("expected center point contained")
	}
	if p.Contains(Point{X: 15, Y: 5}) {
		t.Errorf("expected outside point not contained")
	}
}

func TestSimplePolygonDistanceFromBorder(t *testing.T) {
	p, _ := NewSimplePolygon(square(0, 0, 10), DefaultSurrogateConfig())

	pos, d := p.DistanceFromBorder(Point{X: 5, Y: 5})
	if pos != Interior || d != 5 {
		t.Errorf("center: got (%v, %v), want (Interior, 5)", pos, d)
	}

	pos, d = p.DistanceFromBorder(Point{X: 15, Y: 5})
	if pos != Exterior || d != 5 {
		t.Errorf("outside: got (%v, %v), want (Exterior, 5)", pos, d)
	}
}

func TestSimplePolygonIntersects(t *testing.T) {
	a, _ := NewSimplePolygon(square(0, 0, 10), DefaultSurrogateConfig())
	b, _ := NewSimplePolygon(square(5, 5, 10), DefaultSurrogateConfig())
	c, _ := NewSimplePolygon(square(100, 100, 10), DefaultSurrogateConfig())

	if !a.Intersects(b) {
		t.Errorf("expected overlapping squares to intersect")
	}
	if a.Intersects(c) {
		t.Errorf("expected distant squares to not intersect")
	}
}

func TestSimplePolygonContainsPolygon(t *testing.T) {
	outer, _ := NewSimplePolygon(square(0, 0, 10), DefaultSurrogateConfig())
	inner, _ := NewSimplePolygon(square(2, 2, 2), DefaultSurrogateConfig())
	crossing, _ := NewSimplePolygon(square(8, 8, 5), DefaultSurrogateConfig())

	if !outer.ContainsPolygon(inner) {
		t.Errorf("expected fully nested square to be contained")
	}
	if outer.ContainsPolygon(crossing) {
		t.Errorf("expected boundary-crossing square to not be contained")
	}
}

func TestSimplePolygonTransform(t *testing.T) {
	p, _ := NewSimplePolygon(square(0, 0, 2), DefaultSurrogateConfig())
	tr := FromRotation(0).Translate(10, 0)
	moved := p.Transform(tr)
	if c := moved.Centroid(); !c.Aeq(Point{X: 11, Y: 1}) {
		t.Errorf("Transform: got centroid %v", c)
	}
	if moved.Area() != p.Area() {
		t.Errorf("Transform should preserve area: got %v want %v", moved.Area(), p.Area())
	}
}
