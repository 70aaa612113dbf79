// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package geo

import "math"

// Transformation is a 2x3 affine matrix representing a rotation followed by
// a translation:
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
type Transformation struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// Identity returns the transformation that leaves every point unchanged.
func Identity() Transformation {
	return Transformation{A: 1, B: 0, C: 0, D: 1, Tx: 0, Ty: 0}
}

// FromRotation returns the transformation that rotates by theta radians
// about the origin, with no translation.
func FromRotation(theta float64) Transformation {
	s, c := math.Sin(theta), math.Cos(theta)
	return Transformation{A: c, B: s, C: -s, D: c}
}

// Translate returns t followed by a translation of (tx, ty).
func (t Transformation) Translate(tx, ty float64) Transformation {
	t.Tx += tx
	t.Ty += ty
	return t
}

// Compose returns the transformation equivalent to applying t first, then
// next, matching the usual order for rigid placements: rotate the item's
// local shape, then translate it into place.
func (t Transformation) Compose(next Transformation) Transformation {
	return Transformation{
		A:  next.A*t.A + next.C*t.B,
		B:  next.B*t.A + next.D*t.B,
		C:  next.A*t.C + next.C*t.D,
		D:  next.B*t.C + next.D*t.D,
		Tx: next.A*t.Tx + next.C*t.Ty + next.Tx,
		Ty: next.B*t.Tx + next.D*t.Ty + next.Ty,
	}
}

// Apply transforms p by t.
func (t Transformation) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// Decompose recovers the DTransformation (rotation angle, translation) for
// a proper rigid Transformation (orthonormal 2x2 block, no scale/shear).
func (t Transformation) Decompose() DTransformation {
	theta := math.Atan2(t.B, t.A)
	return NewDTransformation(theta, t.Tx, t.Ty)
}

// Transformable is implemented by every shape kind this package transforms:
// points, circles, and simple polygons.
type Transformable[T any] interface {
	Transform(t Transformation) T
}

// Transform applies t to the point.
func (p Point) Transform(t Transformation) Point { return t.Apply(p) }

// Transform applies t to the circle. Because t is a rigid transform
// (rotation + translation, no scale), the radius is unaffected.
func (c Circle) Transform(t Transformation) Circle {
	return Circle{Center: t.Apply(c.Center), Radius: c.Radius}
}
