// Package vorbis provides Ogg Vorbis audio decoding via
// github.com/jfreymuth/oggvorbis.
//
// The Decoder returns an audio.Source yielding float32 samples in
// [-1.0, 1.0] at the stream's native channel count and rate.
package vorbis
