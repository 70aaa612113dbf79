// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

// Package cdeconfig holds CDEConfig, the construction-time tuning knobs for
// the collision detection engine. It uses a functional-options pattern
// rather than a struct literal API, so defaults stay centralized and
// additions to the config surface don't break existing callers.
package cdeconfig

import "github.com/packsmith/cde/geo"

// CDEConfig configures the HPG grid resolution and the polygon surrogate.
// It carries yaml struct tags so callers may persist/restore it with
// gopkg.in/yaml.v3 -- the CDE core never performs file I/O itself.
type CDEConfig struct {
	HPGNCellsTarget int                 `yaml:"hpg_n_cells_target"`
	Surrogate       geo.SurrogateConfig `yaml:"surrogate"`
}

// defaults backs every construction: a zero-value CDEConfig would make the
// grid and surrogate unusable (zero cells, zero poles), so a
// fully-specified baseline is applied before any Option runs.
var defaults = CDEConfig{
	HPGNCellsTarget: 10_000,
	Surrogate:       geo.DefaultSurrogateConfig(),
}

// Option overrides a single CDEConfig attribute. For use with New.
type Option func(*CDEConfig)

// New builds a CDEConfig starting from defaults and applying opts in order.
func New(opts ...Option) CDEConfig {
	cfg := defaults
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// HPGCellsTarget sets the approximate number of HPG cells to tile the bin
// with. Values below 1 are ignored, keeping the grid always usable.
func HPGCellsTarget(n int) Option {
	return func(c *CDEConfig) {
		if n >= 1 {
			c.HPGNCellsTarget = n
		}
	}
}

// SurrogatePoles sets the pole-cover budget: at most nPoles poles, at most
// nPiers piers (reserved for future pier-based surrogate refinement), and a
// coverage goal in (0, 1]. Out-of-range values are ignored.
func SurrogatePoles(nPoles, nPiers int, coverageGoal float64) Option {
	return func(c *CDEConfig) {
		if nPoles >= 1 {
			c.Surrogate.NFFPoles = nPoles
		}
		if nPiers >= 0 {
			c.Surrogate.NFFPiers = nPiers
		}
		if coverageGoal > 0 && coverageGoal <= 1 {
			c.Surrogate.PoleCoverageGoal = coverageGoal
		}
	}
}
