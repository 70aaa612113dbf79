// Copyright © 2024 Packsmith Contributors
// Use is governed by a BSD-style license found in the LICENSE file.

// Package cdelog wraps log/slog for the collision detection engine: a thin,
// allocation-conscious logger used for invariant-violation reporting and
// diagnostic traces, never for control flow.
package cdelog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	current *slog.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// Init installs a process-wide logger at the given level. Callers embedding
// this module in a long-running optimizer call Init once at startup; the
// CDE core itself never calls this and only ever obtains the logger via
// Default().
func Init(level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	current = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Default returns the process logger. Safe for concurrent use.
func Default() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// InvariantViolation logs a structured error for a broken internal
// invariant with the operation name and free-form key/value context.
func InvariantViolation(op string, args ...any) {
	Default().Error("invariant violation", append([]any{"op", op}, args...)...)
}
