// Package aiff provides AIFF audio decoding via
// github.com/go-audio/aiff.
//
// Only 16-bit PCM files are supported. The Decoder returns an
// audio.Source yielding float32 samples in [-1.0, 1.0].
package aiff
