// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding via
// github.com/hajimehoshi/go-mp3.
//
// The Decoder returns an audio.Source yielding float32 samples in
// [-1.0, 1.0]. Output is always stereo at the file's native rate; chain
// an audio.MonoMixer to collapse it. Encoding is not supported.
package mp3
