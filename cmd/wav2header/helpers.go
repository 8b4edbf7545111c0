package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	synthfoundry "github.com/brianvarren/synth-foundry"
	"github.com/brianvarren/synth-foundry/audio"
	"github.com/brianvarren/synth-foundry/formats/wav"
	"github.com/brianvarren/synth-foundry/headergen"
	"github.com/brianvarren/synth-foundry/utils"
)

// Buffer size for pipeline reads (samples per chunk).
const bufferSize = 4096

type convertOptions struct {
	rate       int    // target sample rate, 0 keeps native
	previewDir string // write processed mono WAVs here when non-empty
	verbose    bool
}

// convertFile decodes one input, runs it through the mono pipeline and
// appends it to the generator.
func convertFile(reg *audio.Registry, gen *headergen.Generator, path string, opts convertOptions) error {
	dec, ok := reg.Get(synthfoundry.FormatKey(path))
	if !ok {
		return fmt.Errorf("%s: %w", path, synthfoundry.ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	if opts.verbose {
		log.Printf("%s: %d Hz, %d channels", path, src.SampleRate(), src.Channels())
	}

	mono, outRate, err := synthfoundry.MonoSamples(src, opts.rate, bufferSize)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if opts.verbose {
		log.Printf("%s: %d frames at %d Hz after downmix", path, len(mono), outRate)
	}

	if opts.previewDir != "" {
		if err := writePreview(opts.previewDir, path, outRate, mono); err != nil {
			return err
		}
	}

	gen.Add(path, mono)
	return nil
}

// writePreview saves the processed mono buffer as a 16-bit WAV for
// audition.
func writePreview(dir, inputPath string, rate int, mono []float32) error {
	pcm := make([]int16, len(mono))
	for i, s := range mono {
		pcm[i] = utils.Float32ToInt16(s)
	}

	outPath := filepath.Join(dir, headergen.SanitizeName(inputPath)+".wav")

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create preview %s: %w", outPath, err)
	}

	if err := wav.WriteWAV16(f, rate, pcm); err != nil {
		f.Close()
		return fmt.Errorf("write preview %s: %w", outPath, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close preview %s: %w", outPath, err)
	}

	return nil
}

// writeHeader renders the generator either to the named path or, when
// outPath is empty, to a fresh temp file. Returns the path written.
func writeHeader(gen *headergen.Generator, outPath string) (string, error) {
	if outPath == "" {
		return gen.WriteFile()
	}

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", outPath, err)
	}

	if err := gen.Render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", outPath, err)
	}

	return outPath, nil
}
