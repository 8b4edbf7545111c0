// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio processing primitives the
// converter is built from.
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and processing stages implement it, so stages can
// be chained freely.
//
// # Channel Mixing
//
// MonoMixer converts multi-channel audio to mono by averaging the
// channels of each frame:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// Sample data destined for single-voice firmware playback is always
// mono, so the mixer sits in every conversion pipeline.
//
// # Resampling
//
// Resampler changes the sample rate using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 22050)
//
// Resampling is opt-in: by default samples are converted at their native
// rate, frame for frame.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
// 0.0 is silence, ±1.0 is maximum amplitude. Processing stages return
// io.EOF when the stream is finished; any other error is fatal.
package audio
