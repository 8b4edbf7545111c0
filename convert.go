package synthfoundry

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/brianvarren/synth-foundry/audio"
	"github.com/brianvarren/synth-foundry/formats/aiff"
	"github.com/brianvarren/synth-foundry/formats/mp3"
	"github.com/brianvarren/synth-foundry/formats/vorbis"
	"github.com/brianvarren/synth-foundry/formats/wav"
	"github.com/brianvarren/synth-foundry/headergen"
)

// Input is one audio stream to convert. Name is used both for decoder
// selection (by extension) and to derive the sample identifier.
type Input struct {
	Name   string
	Reader io.Reader
}

// DefaultRegistry returns a Registry with every built-in decoder
// registered under its usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// FormatKey returns the registry key for a file name: its extension
// without the dot, lowercased.
func FormatKey(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	return strings.TrimPrefix(ext, ".")
}

// MonoSamples drains src through the conversion pipeline and collects
// the result as mono float32 samples.
//
// A targetRate > 0 inserts a resampling stage; targetRate <= 0 keeps the
// native rate, so the output length equals the source frame count
// exactly. The returned rate is the rate the samples ended up at.
func MonoSamples(src audio.Source, targetRate, bufferSize int) ([]float32, int, error) {
	var stage audio.Source = src

	outRate := src.SampleRate()
	if targetRate > 0 && targetRate != outRate {
		stage = audio.NewResampler(stage, targetRate)
		outRate = targetRate
	}
	mono := audio.NewMonoMixer(stage)

	var samples []float32
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, outRate, fmt.Errorf("%w", err)
		}
	}

	return samples, outRate, nil
}

// ConvertToHeader decodes each input in order and renders the combined
// sample header. It mirrors the converter's one-shot contract: ordered
// inputs plus a quantization resolution in, header text out. Any decode
// failure aborts the whole batch; no partial output is produced.
func ConvertToHeader(inputs []Input, resolution int) (string, error) {
	reg := DefaultRegistry()
	gen := headergen.NewGenerator(resolution)

	for _, in := range inputs {
		dec, ok := reg.Get(FormatKey(in.Name))
		if !ok {
			return "", fmt.Errorf("%s: %w", in.Name, ErrUnsupportedFormat)
		}

		src, err := dec.Decode(in.Reader)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", in.Name, err)
		}

		mono, _, err := MonoSamples(src, 0, 4096)
		src.Close()
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", in.Name, err)
		}

		gen.Add(in.Name, mono)
	}

	return gen.String(), nil
}
