// Command wav2header converts audio sample files into a C header with
// normalized, quantized sample arrays for firmware playback.
//
// Usage:
//
//	wav2header [options] file...
//	wav2header -res 4096 kick.wav snare.wav "hat open.wav"
//	wav2header -o samples.h -rate 22050 loop.wav
//
// Files are processed strictly in argument order; the manifest indices
// follow that order. A single undecodable input aborts the whole batch.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	synthfoundry "github.com/brianvarren/synth-foundry"
	"github.com/brianvarren/synth-foundry/headergen"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	res := flag.Int("res", headergen.DefaultResolution, "PWM quantization resolution (number of levels)")
	out := flag.String("o", "", "Output header path (default: a fresh temp file)")
	rate := flag.Int("rate", 0, "Resample inputs to this rate in Hz (0 = keep native rate)")
	preview := flag.String("preview", "", "Directory to write processed mono WAV previews into")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("no input files")
	}

	reg := synthfoundry.DefaultRegistry()
	gen := headergen.NewGenerator(*res)

	for _, path := range args {
		if err := convertFile(reg, gen, path, convertOptions{
			rate:       *rate,
			previewDir: *preview,
			verbose:    *verbose,
		}); err != nil {
			return err
		}
	}

	outPath, err := writeHeader(gen, *out)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d samples, resolution %d)\n", outPath, len(gen.Entries()), gen.Resolution())
	return nil
}
