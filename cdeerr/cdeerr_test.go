// SPDX-FileCopyrightText : © 2024 Packsmith Contributors
// SPDX-License-Identifier: BSD-2-Clause

package cdeerr

import (
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := Newf(InvalidInput, "NewBin", "outer polygon has zero area")
	want := "cde: NewBin: InvalidInput: outer polygon has zero area"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestKindOf(t *testing.T) {
	err := New(InvariantViolation, "register_hazard", nil)
	wrapped := fmt.Errorf("wrapping: %w", err)

	kind, ok := KindOf(wrapped)
	if !ok || kind != InvariantViolation {
		t.Errorf("KindOf: got (%v, %v), want (InvariantViolation, true)", kind, ok)
	}

	if _, ok := KindOf(fmt.Errorf("plain error")); ok {
		t.Errorf("expected KindOf to fail for a plain error")
	}
}
