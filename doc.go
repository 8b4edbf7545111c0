// SPDX-License-Identifier: EPL-2.0

// Package synthfoundry converts audio sample files into C headers for
// PWM-driven firmware playback.
//
// Each input file is decoded, collapsed to mono, normalized to unit
// peak and quantized onto a configurable resolution (default 4096
// levels, clamped to the int16_t ceiling of 32767). The result is a
// header with one PROGMEM array per sample plus a manifest the playback
// engine indexes at runtime.
//
// # Supported Formats
//
// Decoding is handled by the formats subpackages:
//   - WAV via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The one-shot API converts a batch of inputs directly:
//
//	f, _ := os.Open("kick drum.wav")
//	header, err := synthfoundry.ConvertToHeader([]synthfoundry.Input{
//	    {Name: "kick drum.wav", Reader: f},
//	}, 4096)
//
// The header declares NUM_SAMPLES, the SampleData descriptor struct, a
// manifest entry per file in input order, and the quantized arrays.
//
// # Custom Pipelines
//
// For more control, build the pipeline from the audio subpackage:
//
//	decoder := wav.Decoder{}
//	src, _ := decoder.Decode(file)
//	mono, rate, _ := synthfoundry.MonoSamples(src, 0, 4096)
//
//	g := headergen.NewGenerator(4096)
//	g.Add("kick drum.wav", mono)
//	path, _ := g.WriteFile()
//
// MonoSamples keeps the native sample rate by default; pass a positive
// target rate to resample on the way through. The default path never
// resamples, so array sizes equal the decoded frame counts exactly.
//
// # Command Line
//
// cmd/wav2header wraps this package for batch use:
//
//	wav2header -res 4096 kick.wav snare.wav "hat open.wav"
//
// Processing is strictly sequential and order-preserving; one bad input
// aborts the whole batch.
package synthfoundry
