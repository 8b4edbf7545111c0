package headergen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantize_FullScale(t *testing.T) {
	t.Parallel()

	got := Quantize([]float64{-1, 0, 1}, 4096)
	assert.Equal(t, []int16{0, 2047, 4095}, got)
}

func TestQuantize_SilenceMidpoint(t *testing.T) {
	t.Parallel()

	// Silence maps every sample to trunc((res-1)/2)
	got := Quantize(make([]float64, 5), 4096)
	for i, v := range got {
		assert.Equal(t, int16(2047), v, "sample %d", i)
	}
}

func TestQuantize_ClampsToInt16Ceiling(t *testing.T) {
	t.Parallel()

	// Resolutions above 32768 saturate instead of wrapping
	got := Quantize([]float64{1, 0.999, -1}, 100000)
	assert.Equal(t, int16(32767), got[0])
	assert.Equal(t, int16(32767), got[1])
	assert.Equal(t, int16(0), got[2])
}

func TestQuantize_ClampsNegative(t *testing.T) {
	t.Parallel()

	// Out-of-range input below -1 clamps to the floor
	got := Quantize([]float64{-1.5}, 4096)
	assert.Equal(t, int16(0), got[0])
}

func TestQuantize_BoundsProperty(t *testing.T) {
	t.Parallel()

	inputs := []float64{-1, -0.75, -0.5, -0.1, 0, 0.1, 0.5, 0.75, 1}
	for _, res := range []int{2, 256, 4096, 32768, 65536} {
		for _, v := range Quantize(inputs, res) {
			assert.GreaterOrEqual(t, v, int16(0), "resolution %d", res)
			assert.LessOrEqual(t, v, int16(32767), "resolution %d", res)
		}
	}
}

func TestNormalize_ScalesToUnitPeak(t *testing.T) {
	t.Parallel()

	data := []float64{0.25, -0.5, 0.125}
	Normalize(data)
	assert.Equal(t, []float64{0.5, -1, 0.25}, data)
}

func TestNormalize_SilenceUntouched(t *testing.T) {
	t.Parallel()

	data := make([]float64, 4)
	Normalize(data)
	assert.Equal(t, []float64{0, 0, 0, 0}, data)
}

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	Normalize(nil)
	Normalize([]float64{})
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"My Drum Loop.wav":      "My_Drum_Loop",
		"kick.wav":              "kick",
		"samples/hat open.aiff": "hat_open",
		"noext":                 "noext",
		"two spaces here.ogg":   "two_spaces_here",
	}

	for in, want := range cases {
		assert.Equal(t, want, SanitizeName(in), "input %q", in)
	}
}
