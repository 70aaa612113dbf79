// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package geo

import "math"

// AARectangle is an axis-aligned bounding box, (xmin, ymin, xmax, ymax), used
// for broad-phase overlap tests and as the extent of a single HPG cell.
type AARectangle struct {
	XMin, YMin, XMax, YMax float64
}

// NewAARectangle builds a rectangle from two corners, normalizing min/max.
func NewAARectangle(x0, y0, x1, y1 float64) AARectangle {
	return AARectangle{
		XMin: math.Min(x0, x1), YMin: math.Min(y0, y1),
		XMax: math.Max(x0, x1), YMax: math.Max(y0, y1),
	}
}

// BoundingBox returns the smallest AARectangle enclosing all given points.
func BoundingBox(pts []Point) AARectangle {
	lo, hi := Min(pts), Max(pts)
	return AARectangle{XMin: lo.X, YMin: lo.Y, XMax: hi.X, YMax: hi.Y}
}

// Width returns the rectangle's extent along X.
func (r AARectangle) Width() float64 { return r.XMax - r.XMin }

// Height returns the rectangle's extent along Y.
func (r AARectangle) Height() float64 { return r.YMax - r.YMin }

// Centroid returns the rectangle's geometric center.
func (r AARectangle) Centroid() Point {
	return Point{X: (r.XMin + r.XMax) / 2, Y: (r.YMin + r.YMax) / 2}
}

// Overlaps returns true if r and o share interior area. Rectangles that
// only touch along an edge or corner are not considered overlapping.
func (r AARectangle) Overlaps(o AARectangle) bool {
	return r.XMax > o.XMin && r.XMin < o.XMax && r.YMax > o.YMin && r.YMin < o.YMax
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r AARectangle) Contains(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// ClampPoint returns the closest point to p that lies within r.
func (r AARectangle) ClampPoint(p Point) Point {
	return Point{
		X: math.Min(math.Max(p.X, r.XMin), r.XMax),
		Y: math.Min(math.Max(p.Y, r.YMin), r.YMax),
	}
}

// Union returns the smallest AARectangle enclosing both r and o.
func (r AARectangle) Union(o AARectangle) AARectangle {
	return AARectangle{
		XMin: math.Min(r.XMin, o.XMin), YMin: math.Min(r.YMin, o.YMin),
		XMax: math.Max(r.XMax, o.XMax), YMax: math.Max(r.YMax, o.YMax),
	}
}
