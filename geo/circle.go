// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package geo

import "math"

// Circle is a center point and a non-negative radius. Circles back both the
// polygon surrogate's poles and its bounding circle.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle builds a Circle, clamping a negative radius to zero rather than
// rejecting it outright -- callers (e.g. pole construction) sometimes derive
// radii from subtraction and a tiny negative result is numerical noise.
func NewCircle(center Point, radius float64) Circle {
	if radius < 0 {
		radius = 0
	}
	return Circle{Center: center, Radius: radius}
}

// DistanceFromBorder returns the position of p relative to the circle and
// the absolute distance from p to the circle's boundary. SimplePolygon
// exposes the same DistanceFromBorder contract, so callers can treat
// circles and polygons uniformly.
func (c Circle) DistanceFromBorder(p Point) (GeoPosition, float64) {
	d := c.Center.Dist(p)
	if d <= c.Radius {
		return Interior, c.Radius - d
	}
	return Exterior, d - c.Radius
}

// Contains reports whether p lies within or on the circle's boundary.
func (c Circle) Contains(p Point) bool {
	pos, _ := c.DistanceFromBorder(p)
	return pos == Interior
}

// BoundingBox returns the AARectangle enclosing the circle.
func (c Circle) BoundingBox() AARectangle {
	return AARectangle{
		XMin: c.Center.X - c.Radius, YMin: c.Center.Y - c.Radius,
		XMax: c.Center.X + c.Radius, YMax: c.Center.Y + c.Radius,
	}
}

// Overlaps reports whether two circles share interior area.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Dist(o.Center) < c.Radius+o.Radius
}

// SmallestEnclosingCircle computes the minimum bounding circle of a set of
// circles (each expanded by its own radius), used to build a surrogate's
// poles_bounding_circle from its pole disks. Uses Welzl-style incremental
// expansion: start from the first circle and grow to include each
// subsequent one, which is not the provably-minimal enclosing circle but is
// a cheap, deterministic conservative cover -- sufficient for the
// surrogate's role as a fast rejection test (an oversized bounding circle
// only ever makes surrogate_collides more conservative, never incorrect).
func SmallestEnclosingCircle(circles []Circle) Circle {
	if len(circles) == 0 {
		return Circle{}
	}
	enclosing := circles[0]
	for _, c := range circles[1:] {
		enclosing = encloseCircle(enclosing, c)
	}
	return enclosing
}

// encloseCircle returns the smallest circle containing both a and b.
func encloseCircle(a, b Circle) Circle {
	d := a.Center.Dist(b.Center)
	if d+b.Radius <= a.Radius {
		return a
	}
	if d+a.Radius <= b.Radius {
		return b
	}
	r := (a.Radius + b.Radius + d) / 2
	// Move from a's center toward b's center by (r - a.Radius).
	if d == 0 {
		return NewCircle(a.Center, r)
	}
	dir := b.Center.Sub(a.Center).Scale(1 / d)
	center := a.Center.Add(dir.Scale(r - a.Radius))
	return NewCircle(center, math.Max(r, 0))
}
