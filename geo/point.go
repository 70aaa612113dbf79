// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

// Package geo provides the 2D geometric primitives used throughout the
// collision detection engine: points, axis-aligned rectangles, circles,
// simple polygons, and rigid transformations. It plays the same role for
// this module that math/lin plays for a 3D engine: a small, allocation-light
// base layer that higher packages build on.
package geo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D point or vector. Arithmetic is delegated to gonum's r2.Vec
// so this package does not hand-roll vector math.
type Point struct {
	X, Y float64
}

// vec converts p to the gonum r2 representation.
func (p Point) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func fromVec(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// NewPoint creates a Point, panicking if either coordinate is not finite.
// Construction-time validation keeps NaN out of the model per the data
// model's core invariant: NaN is never permitted anywhere.
func NewPoint(x, y float64) Point {
	if !IsFinite(x) || !IsFinite(y) {
		panic("geo: NewPoint requires finite coordinates")
	}
	return Point{X: x, Y: y}
}

// IsFinite reports whether f is neither NaN nor +/-Inf.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return fromVec(r2.Add(p.vec(), q.vec())) }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return fromVec(r2.Sub(p.vec(), q.vec())) }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return fromVec(r2.Scale(f, p.vec())) }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return r2.Dot(p.vec(), q.vec()) }

// Cross returns the 2D scalar cross product (the Z component of the 3D
// cross product of the two vectors extended into the XY plane).
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the Euclidean norm of p treated as a vector.
func (p Point) Len() float64 { return r2.Norm(p.vec()) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// DistSqr returns the squared Euclidean distance between p and q, avoiding
// the sqrt when only ordering matters.
func (p Point) DistSqr(q Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// Eq (==) returns true if p and q have identical coordinates.
func (p Point) Eq(q Point) bool { return p.X == q.X && p.Y == q.Y }

// Aeq (~=) almost-equals returns true if p and q are equal up to a small
// floating point tolerance.
func (p Point) Aeq(q Point) bool {
	const eps = 1e-9
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

// Min returns the component-wise minimum of a set of points. Panics on an
// empty slice: callers always have at least one point (e.g. a polygon
// vertex list) when computing a bounding box.
func Min(pts []Point) Point {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return Point{X: floats.Min(xs), Y: floats.Min(ys)}
}

// Max returns the component-wise maximum of a set of points.
func Max(pts []Point) Point {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return Point{X: floats.Max(xs), Y: floats.Max(ys)}
}
