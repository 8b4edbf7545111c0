// SPDX-License-Identifier: EPL-2.0

// Package headergen turns decoded audio samples into a C header for
// firmware playback.
//
// Each sample is normalized to unit peak, quantized onto
// [0, resolution-1] and clamped to the int16_t ceiling of 32767. The
// rendered header carries a NUM_SAMPLES define, a SampleData descriptor
// struct, a manifest array referencing each sample by index, and one
// PROGMEM data array per input, all in input order:
//
//	g := headergen.NewGenerator(4096)
//	g.Add("kick.wav", kickSamples)
//	g.Add("snare.wav", snareSamples)
//	path, err := g.WriteFile()
//
// Array sizes always equal the decoded frame counts; nothing is
// resampled or truncated here. Identifier collisions between inputs
// (e.g. "a b.wav" and "a_b.wav") are not detected.
package headergen
