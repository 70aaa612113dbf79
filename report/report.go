// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

// Package report builds a read-only, YAML-serializable snapshot of a
// collision detection engine's state, for diagnostics and run logs -- not
// required by any core operation, and deliberately kept outside the
// collision package so the engine has no knowledge of how its state gets
// reported.
package report

import (
	"gopkg.in/yaml.v3"

	"github.com/packsmith/cde/collision"
)

// CellSnapshot captures one HPCell's externally visible state.
type CellSnapshot struct {
	CentroidX float64 `yaml:"centroid_x"`
	CentroidY float64 `yaml:"centroid_y"`
	Radius    float64 `yaml:"radius"`
	Value     float64 `yaml:"value"`
}

// Snapshot captures a CDE's externally visible state at a point in time.
type Snapshot struct {
	NHazards int            `yaml:"n_hazards"`
	NActive  int            `yaml:"n_active_hazards"`
	NCells   int            `yaml:"n_cells"`
	CellSize float64        `yaml:"cell_size"`
	Cells    []CellSnapshot `yaml:"cells"`
}

// Of builds a Snapshot of cde's current state.
func Of(cde *collision.CDE) Snapshot {
	cells := cde.HPG().Cells()
	snap := Snapshot{
		NHazards: len(cde.AllHazards()),
		NActive:  len(cde.ActiveHazards()),
		NCells:   len(cells),
		CellSize: cde.HPG().CellSize(),
		Cells:    make([]CellSnapshot, 0, len(cells)),
	}
	for _, c := range cells {
		centroid := c.Centroid()
		snap.Cells = append(snap.Cells, CellSnapshot{
			CentroidX: centroid.X,
			CentroidY: centroid.Y,
			Radius:    c.Radius(),
			Value:     c.Value(),
		})
	}
	return snap
}

// YAML renders the snapshot as a YAML document.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
