package headergen

import (
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultResolution is the quantization range used when none is
	// given, matching a 12-bit PWM slice.
	DefaultResolution = 4096

	// MaxSampleValue is the hard ceiling of the quantized range. The
	// emitted arrays are int16_t, so values never exceed it regardless
	// of the requested resolution.
	MaxSampleValue = 32767
)

// Normalize scales data in place so its peak absolute amplitude is 1.
// All-zero input is left untouched; there is nothing to scale and the
// division would be undefined.
func Normalize(data []float64) {
	if len(data) == 0 {
		return
	}

	peak := floats.Norm(data, math.Inf(1))
	if peak > 0 {
		floats.Scale(1/peak, data)
	}
}

// Quantize maps normalized samples from [-1, 1] onto [0, resolution-1]
// with the affine transform (x+1)/2*(resolution-1), truncating toward
// zero and clamping the result to [0, MaxSampleValue].
func Quantize(data []float64, resolution int) []int16 {
	out := make([]int16, len(data))
	span := float64(resolution - 1)

	for i, x := range data {
		v := int32((x + 1) / 2 * span)
		if v < 0 {
			v = 0
		} else if v > MaxSampleValue {
			v = MaxSampleValue
		}
		out[i] = int16(v)
	}

	return out
}

// SanitizeName derives a C identifier from a file path: the base name
// with its extension dropped and spaces replaced by underscores.
// Uniqueness across inputs is not enforced.
func SanitizeName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return strings.ReplaceAll(base, " ", "_")
}
