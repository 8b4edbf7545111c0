// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	// x=0 returns y1, x=1 returns y2
	if got := CubicInterpolate(0.1, 0.2, 0.3, 0.4, 0); got != 0.2 {
		t.Errorf("CubicInterpolate(x=0) = %v, want 0.2", got)
	}

	got := CubicInterpolate(0.1, 0.2, 0.3, 0.4, 1)
	if math.Abs(float64(got-0.3)) > 1e-6 {
		t.Errorf("CubicInterpolate(x=1) = %v, want 0.3", got)
	}
}

func TestCubicInterpolate_Constant(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		got := CubicInterpolate(0.5, 0.5, 0.5, 0.5, x)
		if math.Abs(float64(got-0.5)) > 1e-6 {
			t.Errorf("CubicInterpolate(constant, x=%v) = %v, want 0.5", x, got)
		}
	}
}

func TestCubicInterpolate_Linear(t *testing.T) {
	t.Parallel()

	// Catmull-Rom reproduces linear ramps exactly
	got := CubicInterpolate(0, 1, 2, 3, 0.5)
	if math.Abs(float64(got-1.5)) > 1e-6 {
		t.Errorf("CubicInterpolate(linear, x=0.5) = %v, want 1.5", got)
	}
}
