// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package geo

import "math"

// SimplePolygon is an ordered sequence of distinct vertices forming a
// non-self-intersecting closed ring. It carries a precomputed area,
// centroid, bounding box, and surrogate -- all derived once at construction
// so that hot-path CDE queries never recompute them.
type SimplePolygon struct {
	Vertices []Point
	area     float64
	centroid Point
	bbox     AARectangle
	surr     Surrogate
}

// NewSimplePolygon validates and builds a SimplePolygon. Returns an error
// (rather than panicking) for degenerate input since this is a public,
// caller-facing construction boundary: a polygon with zero area or
// self-intersecting edges is rejected here rather than allowed to corrupt
// downstream geometry.
func NewSimplePolygon(vertices []Point, cfg SurrogateConfig) (SimplePolygon, error) {
	if len(vertices) < 3 {
		return SimplePolygon{}, fmt_degenerate("polygon needs at least 3 vertices")
	}
	for _, v := range vertices {
		if !IsFinite(v.X) || !IsFinite(v.Y) {
			return SimplePolygon{}, fmt_degenerate("polygon vertex is not finite")
		}
	}
	if hasDuplicateVertex(vertices) {
		return SimplePolygon{}, fmt_degenerate("polygon has duplicate vertices")
	}
	area := signedArea(vertices)
	if math.Abs(area) < 1e-12 {
		return SimplePolygon{}, fmt_degenerate("polygon has zero area")
	}
	if selfIntersects(vertices) {
		return SimplePolygon{}, fmt_degenerate("polygon is self-intersecting")
	}

	p := SimplePolygon{
		Vertices: append([]Point{}, vertices...),
		area:     math.Abs(area),
		centroid: polygonCentroid(vertices, area),
		bbox:     BoundingBox(vertices),
	}
	p.surr = BuildSurrogate(p, cfg)
	return p, nil
}

// fmt_degenerate builds the error NewSimplePolygon returns for rejected
// input: a plain geo error value, not a cdeerr.Error.
func fmt_degenerate(msg string) error { return degenerateError(msg) }

type degenerateError string

func (e degenerateError) Error() string { return "geo: " + string(e) }

func hasDuplicateVertex(vs []Point) bool {
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if vs[i].Eq(vs[j]) {
				return true
			}
		}
	}
	return false
}

// signedArea computes the shoelace signed area; positive for CCW winding.
func signedArea(vs []Point) float64 {
	sum := 0.0
	n := len(vs)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
	}
	return sum / 2
}

func polygonCentroid(vs []Point, signedA float64) Point {
	if signedA == 0 {
		return Min(vs)
	}
	cx, cy := 0.0, 0.0
	n := len(vs)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
		cx += (vs[i].X + vs[j].X) * cross
		cy += (vs[i].Y + vs[j].Y) * cross
	}
	factor := 1 / (6 * signedA)
	return Point{X: cx * factor, Y: cy * factor}
}

// selfIntersects checks whether any two non-adjacent edges of the polygon
// cross. This is the naive O(n^2) check, adequate for the item polygon
// sizes this module targets (tens of vertices, not tens of thousands).
func selfIntersects(vs []Point) bool {
	n := len(vs)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := vs[i], vs[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || j == (i+1)%n {
				continue
			}
			b1, b2 := vs[j], vs[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// segmentsIntersect reports whether segments (a1,a2) and (b1,b2) cross,
// including touching at endpoints/collinear overlap.
func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := orientation(b1, b2, a1)
	d2 := orientation(b1, b2, a2)
	d3 := orientation(a1, a2, b1)
	d4 := orientation(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d2 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	if d3 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d4 == 0 && onSegment(a1, a2, b2) {
		return true
	}
	return false
}

// Area returns the polygon's unsigned area.
func (p SimplePolygon) Area() float64 { return p.area }

// Centroid returns the polygon's area-weighted centroid.
func (p SimplePolygon) Centroid() Point { return p.centroid }

// BBox returns the polygon's axis-aligned bounding box.
func (p SimplePolygon) BBox() AARectangle { return p.bbox }

// Surrogate returns the polygon's precomputed pole cover.
func (p SimplePolygon) Surrogate() Surrogate { return p.surr }

// Contains reports whether q lies inside the polygon using a ray-casting
// parity test.
func (p SimplePolygon) Contains(q Point) bool {
	inside := false
	n := len(p.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p.Vertices[i], p.Vertices[j]
		if (vi.Y > q.Y) != (vj.Y > q.Y) {
			xInt := (vj.X-vi.X)*(q.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if q.X < xInt {
				inside = !inside
			}
		}
	}
	return inside
}

// distanceToSegment returns the distance from p to the segment [a,b].
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSqr := ab.Dot(ab)
	if lenSqr == 0 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / lenSqr
	t = math.Min(1, math.Max(0, t))
	proj := a.Add(ab.Scale(t))
	return p.Dist(proj)
}

// DistanceFromBorder returns the position of q relative to the polygon
// (Interior/Exterior, via point-in-polygon) and the distance from q to the
// nearest edge. This is the exact, ground-truth version of the same
// DistanceFromBorder contract Circle implements; HPCell construction and
// shape_collides both rely on it.
func (p SimplePolygon) DistanceFromBorder(q Point) (GeoPosition, float64) {
	minDist := math.Inf(1)
	n := len(p.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		d := distanceToSegment(q, p.Vertices[j], p.Vertices[i])
		if d < minDist {
			minDist = d
		}
	}
	if p.Contains(q) {
		return Interior, minDist
	}
	return Exterior, minDist
}

// Intersects reports whether polygons p and o share any interior area or
// their boundaries cross or touch -- the exact ground-truth test shape_collides
// uses once the cheap surrogate pass fails to reject a candidate.
func (p SimplePolygon) Intersects(o SimplePolygon) bool {
	if !p.bbox.Overlaps(o.bbox) {
		return false
	}
	// Edge-edge crossing catches partial overlaps.
	for i, j := 0, len(p.Vertices)-1; i < len(p.Vertices); j, i = i, i+1 {
		for k, l := 0, len(o.Vertices)-1; k < len(o.Vertices); l, k = k, k+1 {
			if segmentsIntersect(p.Vertices[j], p.Vertices[i], o.Vertices[l], o.Vertices[k]) {
				return true
			}
		}
	}
	// One polygon fully inside the other (no edge crossings) is still a
	// collision: test containment of a single representative vertex each way.
	if len(o.Vertices) > 0 && p.Contains(o.Vertices[0]) {
		return true
	}
	if len(p.Vertices) > 0 && o.Contains(p.Vertices[0]) {
		return true
	}
	return false
}

// ContainsPolygon reports whether o lies entirely within p: every vertex of
// o is inside p and no edge of o crosses or touches p's border, so an o
// that touches p's border from the inside is not contained.
// Used by the collision package's BinOuter exact check, where "colliding"
// means failing full containment rather than any overlap.
func (p SimplePolygon) ContainsPolygon(o SimplePolygon) bool {
	for i, j := 0, len(p.Vertices)-1; i < len(p.Vertices); j, i = i, i+1 {
		for k, l := 0, len(o.Vertices)-1; k < len(o.Vertices); l, k = k, k+1 {
			if segmentsIntersect(p.Vertices[j], p.Vertices[i], o.Vertices[l], o.Vertices[k]) {
				return false
			}
		}
	}
	for _, v := range o.Vertices {
		if !p.Contains(v) {
			return false
		}
	}
	return true
}

// Transform returns a new SimplePolygon with t applied to every vertex.
// The surrogate's poles and bounding circle are transformed directly
// (rigid transforms preserve distances) rather than recomputed from
// scratch, since the rebuild is far more expensive than the transform.
func (p SimplePolygon) Transform(t Transformation) SimplePolygon {
	verts := make([]Point, len(p.Vertices))
	for i, v := range p.Vertices {
		verts[i] = t.Apply(v)
	}
	out := SimplePolygon{
		Vertices: verts,
		area:     p.area,
		centroid: t.Apply(p.centroid),
		bbox:     BoundingBox(verts),
		surr:     p.surr.Transform(t),
	}
	return out
}
