// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

package collision

import (
	"errors"

	"github.com/packsmith/cde/cdeconfig"
	"github.com/packsmith/cde/cdeerr"
	"github.com/packsmith/cde/cdelog"
	"github.com/packsmith/cde/geo"
	"github.com/packsmith/cde/handle"
)

var errUnknownHandle = errors.New("handle does not name a live dynamic hazard")

// CDE is the collision detection engine: a frozen set of static hazards
// (bin boundary, holes, quality zones), an ordered set of dynamic hazards
// (placed items), and an HPG spatial index over their union. A CDE holds
// no package-level or shared mutable state -- every instance is
// independently Cloneable, which is what lets a placement heuristic
// explore alternatives by branching copies rather than undoing mutations.
type CDE struct {
	bbox          geo.AARectangle
	binBBox       geo.AARectangle
	staticHazards []*Hazard
	dynamic       []dynamicEntry
	hpg           *HPG
	cfg           cdeconfig.CDEConfig
}

type dynamicEntry struct {
	handle handle.Hazard
	hazard *Hazard
}

// New builds a CDE over bbox (the region the HPG indexes, typically the
// bin's bounding box) seeded with staticHazards. New does not validate
// shapes itself: geo.NewSimplePolygon rejects degenerate and non-finite
// polygons, and instance.BuildCDE checks quality indices, before reaching
// here. A panic while building the grid (e.g. a non-static entity among
// staticHazards) is recovered and returned as cdeerr.InvalidInput.
func New(bbox geo.AARectangle, staticHazards []*Hazard, cfg cdeconfig.CDEConfig) (cde *CDE, err error) {
	defer func() {
		if r := recover(); r != nil {
			cde = nil
			err = cdeerr.Newf(cdeerr.InvalidInput, "New", "%v", r)
		}
	}()

	hpg := NewHPG(bbox, cfg.HPGNCellsTarget, staticHazards)
	cdelog.Default().Debug("cde constructed", "static_hazards", len(staticHazards), "cells", hpg.NCells())

	return &CDE{
		bbox:          bbox,
		binBBox:       bbox,
		staticHazards: staticHazards,
		hpg:           hpg,
		cfg:           cfg,
	}, nil
}

// BBox returns the region the engine's HPG indexes.
func (c *CDE) BBox() geo.AARectangle { return c.bbox }

// BinBBox returns the bin's bounding box; New sets it to the same rectangle
// as BBox.
func (c *CDE) BinBBox() geo.AARectangle { return c.binBBox }

// HPGCellRadius returns the half-diagonal radius of the grid's first cell,
// the slack used in Boundary classification. Cells in the last row or
// column are clipped to the bounding box and can have a smaller radius.
func (c *CDE) HPGCellRadius() float64 {
	if len(c.hpg.Cells()) == 0 {
		return 0
	}
	return c.hpg.Cells()[0].Radius()
}

// AllHazards returns every hazard, static and dynamic, regardless of
// active state.
func (c *CDE) AllHazards() []*Hazard {
	all := make([]*Hazard, 0, len(c.staticHazards)+len(c.dynamic))
	all = append(all, c.staticHazards...)
	for _, e := range c.dynamic {
		all = append(all, e.hazard)
	}
	return all
}

// ActiveHazards returns every hazard currently participating in queries.
func (c *CDE) ActiveHazards() []*Hazard {
	var active []*Hazard
	for _, h := range c.AllHazards() {
		if h.Active() {
			active = append(active, h)
		}
	}
	return active
}

// SurrogateCollides runs the fast, conservative collision check: true iff
// any pole of surrogate, after transform, intersects a non-ignored
// hazard's shape according to that hazard's presence rule. A false return
// does not mean "no collision" -- it means exact testing (ShapeCollides)
// is required.
func (c *CDE) SurrogateCollides(surrogate geo.Surrogate, transform geo.Transformation, ignore []HazardEntity) bool {
	transformed := surrogate.Transform(transform)
	irrelevant := toSet(ignore)

	for _, pole := range transformed.Poles() {
		for _, h := range c.ActiveHazards() {
			if _, skip := irrelevant[h.Entity()]; skip {
				continue
			}
			// The pole collides if its center lies on the hazard's presence
			// side, or if the disk reaches across the hazard's border.
			pos, dist := h.Shape().DistanceFromBorder(pole.Center)
			if pos == h.Entity().Presence() || dist < pole.Radius {
				return true
			}
		}
	}
	return false
}

// ShapeCollides runs the exact collision check against transformedShape:
// true iff it violates presence for any non-ignored hazard.
func (c *CDE) ShapeCollides(transformedShape geo.SimplePolygon, ignore []HazardEntity) bool {
	irrelevant := toSet(ignore)
	for _, h := range c.ActiveHazards() {
		if _, skip := irrelevant[h.Entity()]; skip {
			continue
		}
		if h.Entity().Presence() == geo.Interior {
			if h.Shape().Intersects(transformedShape) {
				return true
			}
		} else {
			// Exterior presence (BinOuter): colliding means leaving the
			// hazard shape, i.e. not being fully contained by it.
			if !h.Shape().ContainsPolygon(transformedShape) {
				return true
			}
		}
	}
	return false
}

func toSet(entities []HazardEntity) map[HazardEntity]struct{} {
	set := make(map[HazardEntity]struct{}, len(entities))
	for _, e := range entities {
		set[e] = struct{}{}
	}
	return set
}

// RegisterItem appends a new dynamic hazard carrying shape under entity,
// fans it out to the HPG, and returns a handle usable for later
// deregistration: the Absent -> Active transition. A dynamic hazard with
// Exterior presence is not supported by the HPG update path and is
// rejected here as cdeerr.UnsupportedConfiguration, with no mutation left
// behind -- entity is not added to the dynamic set and the HPG is
// untouched.
func (c *CDE) RegisterItem(entity HazardEntity, shape geo.SimplePolygon) (tok handle.Hazard, err error) {
	defer func() {
		if r := recover(); r != nil {
			tok = handle.Hazard{}
			err = cdeerr.Newf(cdeerr.UnsupportedConfiguration, "RegisterItem", "%v", r)
		}
	}()

	h := NewHazard(entity, shape)
	c.hpg.Register([]*Hazard{h})

	tok = handle.New()
	c.dynamic = append(c.dynamic, dynamicEntry{handle: tok, hazard: h})
	return tok, nil
}

// DeregisterItem removes the dynamic hazard identified by tok: the
// Active|Inactive -> Removed transition. It is irreversible; a caller that
// only wants to temporarily exclude a hazard should use SetActive via
// SetItemActive instead.
func (c *CDE) DeregisterItem(tok handle.Hazard) error {
	idx := -1
	for i, e := range c.dynamic {
		if e.handle == tok {
			idx = i
			break
		}
	}
	if idx < 0 {
		return cdeerr.New(cdeerr.InvalidInput, "DeregisterItem", errUnknownHandle)
	}

	removed := c.dynamic[idx]
	c.dynamic = append(c.dynamic[:idx], c.dynamic[idx+1:]...)

	remaining := make([]*Hazard, 0, len(c.dynamic))
	for _, e := range c.dynamic {
		remaining = append(remaining, e.hazard)
	}
	c.hpg.Deregister([]HazardEntity{removed.hazard.Entity()}, remaining)
	return nil
}

// SetItemActive toggles tok's Active <-> Inactive transition without
// removing it, rolling its HPG contribution back and forth.
func (c *CDE) SetItemActive(tok handle.Hazard, active bool) error {
	for _, e := range c.dynamic {
		if e.handle == tok {
			if e.hazard.Active() == active {
				return nil
			}
			e.hazard.SetActive(active)
			remaining := make([]*Hazard, 0, len(c.dynamic))
			for _, other := range c.dynamic {
				if other.hazard.Active() {
					remaining = append(remaining, other.hazard)
				}
			}
			if active {
				c.hpg.Register([]*Hazard{e.hazard})
			} else {
				c.hpg.Deregister([]HazardEntity{e.hazard.Entity()}, remaining)
			}
			return nil
		}
	}
	return cdeerr.New(cdeerr.InvalidInput, "SetItemActive", errUnknownHandle)
}

// HPG exposes the underlying spatial index, primarily for the placement
// heuristic's value-loss queries.
func (c *CDE) HPG() *HPG { return c.hpg }

// Clone returns an independently mutable copy of c: hazard records
// (including their active state), HPG cells, and dynamic bookkeeping are
// all copied. Hazard shapes are copied by value, so their vertex and pole
// slices share backing storage with c's; no CDE operation modifies a
// shape. This is what lets a caller branch
// alternative placements by exploring clones instead of mutating and
// undoing a single shared instance.
func (c *CDE) Clone() *CDE {
	staticCopy := make([]*Hazard, len(c.staticHazards))
	for i, h := range c.staticHazards {
		copied := NewHazard(h.Entity(), h.Shape())
		copied.SetActive(h.Active())
		staticCopy[i] = copied
	}

	clone := &CDE{
		bbox:          c.bbox,
		binBBox:       c.binBBox,
		staticHazards: staticCopy,
		cfg:           c.cfg,
	}
	clone.hpg = NewHPG(c.bbox, c.cfg.HPGNCellsTarget, staticCopy)

	clone.dynamic = make([]dynamicEntry, 0, len(c.dynamic))
	var live []*Hazard
	for _, e := range c.dynamic {
		shapeCopy := e.hazard.Shape()
		h := NewHazard(e.hazard.Entity(), shapeCopy)
		h.SetActive(e.hazard.Active())
		clone.dynamic = append(clone.dynamic, dynamicEntry{handle: e.handle, hazard: h})
		if h.Active() {
			live = append(live, h)
		}
	}
	if len(live) > 0 {
		clone.hpg.Register(live)
	}
	return clone
}
