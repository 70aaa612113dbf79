// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package geo

import (
	"math"
	"sort"
)

// SurrogateConfig controls pole generation for a polygon's Surrogate.
type SurrogateConfig struct {
	NFFPoles         int     `yaml:"n_ff_poles"`
	NFFPiers         int     `yaml:"n_ff_piers"`
	PoleCoverageGoal float64 `yaml:"pole_coverage_goal"`
}

// DefaultSurrogateConfig returns reasonable defaults, so a polygon can always
// be built without a caller first having to choose pole-generation knobs.
func DefaultSurrogateConfig() SurrogateConfig {
	return SurrogateConfig{NFFPoles: 8, NFFPiers: 2, PoleCoverageGoal: 0.8}
}

// Surrogate is a polygon's precomputed inner-circle cover plus bounding
// circle and convex-hull vertex indices, used as a conservative proxy for
// fast collision rejection before exact polygon tests.
type Surrogate struct {
	poles          []Circle
	polesBoundCirc Circle
	hullIndices    []int
}

// Poles returns the surrogate's inner disks, ordered by descending radius.
func (s Surrogate) Poles() []Circle { return s.poles }

// PolesBoundingCircle returns the circle enclosing all poles.
func (s Surrogate) PolesBoundingCircle() Circle { return s.polesBoundCirc }

// ConvexHullIndices returns the polygon's convex-hull vertex indices in CCW
// order, indexing into the owning SimplePolygon.Vertices.
func (s Surrogate) ConvexHullIndices() []int { return s.hullIndices }

// Transform applies a rigid transform to every pole and the bounding
// circle. Radii are unaffected; see Circle.Transform.
func (s Surrogate) Transform(t Transformation) Surrogate {
	poles := make([]Circle, len(s.poles))
	for i, p := range s.poles {
		poles[i] = p.Transform(t)
	}
	return Surrogate{
		poles:          poles,
		polesBoundCirc: s.polesBoundCirc.Transform(t),
		hullIndices:    s.hullIndices,
	}
}

// BuildSurrogate computes the pole cover, bounding circle, and convex hull
// for polygon p. Poles are generated greedily: the first pole is the
// largest inscribed disk found over a candidate grid, each subsequent pole
// is the largest remaining disk that does not overlap previously accepted
// poles by more than a small fraction (epsilon) of its own area. Generation
// stops at cfg.NFFPoles poles or once the accumulated pole area reaches
// cfg.PoleCoverageGoal of the polygon's area, whichever comes first --
// when both limits would be hit by the same candidate disk, the pole-count
// budget is treated as the binding constraint (ties never add one more
// pole than the budget allows).
func BuildSurrogate(p SimplePolygon, cfg SurrogateConfig) Surrogate {
	const epsilon = 0.05
	candidates := poleCandidates(p)

	var poles []Circle
	coveredArea := 0.0
	targetArea := p.area * cfg.PoleCoverageGoal

	for len(poles) < cfg.NFFPoles && len(candidates) > 0 {
		bestIdx, bestRadius := -1, -1.0
		for i, c := range candidates {
			r := poleRadius(p, c)
			if r > bestRadius && acceptablePole(c, r, poles, epsilon) {
				bestIdx, bestRadius = i, r
			}
		}
		if bestIdx < 0 || bestRadius <= 0 {
			break
		}
		pole := NewCircle(candidates[bestIdx], bestRadius)
		poles = append(poles, pole)
		coveredArea += math.Pi * pole.Radius * pole.Radius
		candidates = removeCovered(candidates, pole, epsilon)
		if coveredArea >= targetArea {
			break
		}
	}
	if len(poles) == 0 {
		// Degenerate fallback: a single pole at the centroid with the
		// distance to the nearest edge as radius, so every polygon has at
		// least one pole to drive surrogate_collides.
		pos, d := p.DistanceFromBorder(p.centroid)
		if pos == Exterior {
			d = 0
		}
		poles = []Circle{NewCircle(p.centroid, d)}
	}
	sort.SliceStable(poles, func(i, j int) bool { return poles[i].Radius > poles[j].Radius })

	return Surrogate{
		poles:          poles,
		polesBoundCirc: SmallestEnclosingCircle(poles),
		hullIndices:    convexHullIndices(p.Vertices),
	}
}

// poleCandidates samples a grid of interior points over the polygon's
// bounding box to seed pole-center search.
func poleCandidates(p SimplePolygon) []Point {
	const resolution = 16
	bb := p.bbox
	dx := bb.Width() / resolution
	dy := bb.Height() / resolution
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	var pts []Point
	for i := 0; i <= resolution; i++ {
		for j := 0; j <= resolution; j++ {
			q := Point{X: bb.XMin + float64(i)*dx, Y: bb.YMin + float64(j)*dy}
			if p.Contains(q) {
				pts = append(pts, q)
			}
		}
	}
	if len(pts) == 0 {
		pts = append(pts, p.centroid)
	}
	return pts
}

// poleRadius returns the distance from candidate center c to the polygon's
// nearest edge -- the radius of the largest disk centered at c that stays
// inside the polygon.
func poleRadius(p SimplePolygon, c Point) float64 {
	_, d := p.DistanceFromBorder(c)
	return d
}

// acceptablePole reports whether a disk at center c with radius r overlaps
// previously accepted poles by no more than epsilon of its own area.
func acceptablePole(c Point, r float64, poles []Circle, epsilon float64) bool {
	if r <= 0 {
		return false
	}
	for _, pole := range poles {
		d := c.Dist(pole.Center)
		if d >= r+pole.Radius {
			continue // disjoint
		}
		overlap := circleOverlapArea(c, r, pole.Center, pole.Radius)
		if overlap > epsilon*math.Pi*r*r {
			return false
		}
	}
	return true
}

// circleOverlapArea computes the lens-shaped intersection area of two
// circles given by center/radius pairs.
func circleOverlapArea(c1 Point, r1 float64, c2 Point, r2 float64) float64 {
	d := c1.Dist(c2)
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		r := math.Min(r1, r2)
		return math.Pi * r * r
	}
	a1 := math.Acos((d*d+r1*r1-r2*r2)/(2*d*r1)) * r1 * r1
	a2 := math.Acos((d*d+r2*r2-r1*r1)/(2*d*r2)) * r2 * r2
	a3 := 0.5 * math.Sqrt((-d+r1+r2)*(d+r1-r2)*(d-r1+r2)*(d+r1+r2))
	return a1 + a2 - a3
}

// removeCovered drops candidate points that now fall (mostly) within the
// accepted pole, so the next search iteration does not keep re-selecting
// variations of the same disk.
func removeCovered(candidates []Point, pole Circle, epsilon float64) []Point {
	out := candidates[:0:0]
	for _, c := range candidates {
		if pole.Center.Dist(c) > pole.Radius*(1-epsilon) {
			out = append(out, c)
		}
	}
	return out
}

// convexHullIndices computes the convex hull of the polygon's vertices
// using Andrew's monotone chain algorithm, returning indices into verts in
// CCW order.
func convexHullIndices(verts []Point) []int {
	n := len(verts)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		a, b := verts[idx[i]], verts[idx[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	cross := func(o, a, b int) float64 {
		return verts[a].Sub(verts[o]).Cross(verts[b].Sub(verts[o]))
	}

	var lower []int
	for _, i := range idx {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], i) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, i)
	}
	var upper []int
	for k := n - 1; k >= 0; k-- {
		i := idx[k]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], i) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, i)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
