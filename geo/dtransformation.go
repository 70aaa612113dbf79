// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package geo

import (
	"fmt"
	"math"
)

// DTransformation is a proper rigid transformation decomposed into a
// rotation followed by a translation. It is comparable by value, used as
// the canonical placement identity so placements can be compared for
// equality without NaN surprises. Go has no not-NaN numeric type, so
// construction panics on a non-finite input instead, preserving the
// "never permit NaN" invariant at the boundary.
type DTransformation struct {
	Rotation     float64
	TranslationX float64
	TranslationY float64
}

// NewDTransformation builds a DTransformation, panicking if any component
// is not finite.
func NewDTransformation(rotation, tx, ty float64) DTransformation {
	if !IsFinite(rotation) || !IsFinite(tx) || !IsFinite(ty) {
		panic("geo: NewDTransformation requires finite components")
	}
	return DTransformation{Rotation: rotation, TranslationX: tx, TranslationY: ty}
}

// Empty returns the identity DTransformation (no rotation, no translation).
func Empty() DTransformation { return DTransformation{} }

// Translation returns the (tx, ty) pair.
func (d DTransformation) Translation() (float64, float64) { return d.TranslationX, d.TranslationY }

// Compose converts the decomposed form into the applied 2x3 matrix form,
// composing a pure rotation with a pure translation.
func (d DTransformation) Compose() Transformation {
	return FromRotation(d.Rotation).Translate(d.TranslationX, d.TranslationY)
}

// String renders the transformation for logs and test failures.
func (d DTransformation) String() string {
	return fmt.Sprintf("r: %.3f°, t: (%.3f, %.3f)", d.Rotation*180/math.Pi, d.TranslationX, d.TranslationY)
}
