// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav and handles the PCM bit
// depths that library supports (8/16/24/32-bit), mono or multi-channel,
// at any sample rate.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// The decoder returns an audio.Source that yields samples as float32
// values in the range [-1.0, 1.0]. Inputs that are not io.ReadSeekers
// are buffered in memory first, as go-audio needs to seek across chunks.
//
// # Writing WAV Files
//
// WriteWAV16 emits a complete mono 16-bit PCM file:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 22050, samples)
//
// The writer exists for preview output and for constructing test
// fixtures; the converter itself never round-trips through WAV.
package wav
