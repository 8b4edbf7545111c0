package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	synthfoundry "github.com/brianvarren/synth-foundry"
	"github.com/brianvarren/synth-foundry/formats/wav"
	"github.com/brianvarren/synth-foundry/headergen"
)

// writeFixtureWAV creates a mono 16-bit test file and returns its path.
func writeFixtureWAV(t *testing.T, dir, name string, samples []int16) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, wav.WriteWAV16(f, 8000, samples))
	return path
}

func TestConvertFile_WAV(t *testing.T) {
	path := writeFixtureWAV(t, t.TempDir(), "kick drum.wav", []int16{0, 16000, -16000, 8000})

	reg := synthfoundry.DefaultRegistry()
	gen := headergen.NewGenerator(4096)

	err := convertFile(reg, gen, path, convertOptions{})
	require.NoError(t, err)

	entries := gen.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "kick_drum", entries[0].Name)
	assert.Equal(t, []int16{2047, 4095, 0, 3071}, entries[0].Data)
}

func TestConvertFile_FileNotFound(t *testing.T) {
	reg := synthfoundry.DefaultRegistry()
	gen := headergen.NewGenerator(4096)

	err := convertFile(reg, gen, filepath.Join(t.TempDir(), "missing.wav"), convertOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.wav")
}

func TestConvertFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	err := convertFile(synthfoundry.DefaultRegistry(), headergen.NewGenerator(4096), path, convertOptions{})
	require.ErrorIs(t, err, synthfoundry.ErrUnsupportedFormat)
}

func TestConvertFile_CorruptInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	err := convertFile(synthfoundry.DefaultRegistry(), headergen.NewGenerator(4096), path, convertOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.wav")
}

func TestConvertFile_PreviewWritten(t *testing.T) {
	dir := t.TempDir()
	path := writeFixtureWAV(t, dir, "snare.wav", []int16{1000, -1000, 500})

	previewDir := t.TempDir()
	err := convertFile(synthfoundry.DefaultRegistry(), headergen.NewGenerator(4096), path, convertOptions{
		previewDir: previewDir,
	})
	require.NoError(t, err)

	preview := filepath.Join(previewDir, "snare.wav")
	info, err := os.Stat(preview)
	require.NoError(t, err)
	assert.Equal(t, int64(44+3*2), info.Size())
}

func TestWriteHeader_NamedPath(t *testing.T) {
	gen := headergen.NewGenerator(4096)
	gen.Add("beep.wav", []float32{-1, 0, 1})

	outPath := filepath.Join(t.TempDir(), "samples.h")
	got, err := writeHeader(gen, outPath)
	require.NoError(t, err)
	assert.Equal(t, outPath, got)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, gen.String(), string(data))
}

func TestWriteHeader_TempFile(t *testing.T) {
	gen := headergen.NewGenerator(4096)
	gen.Add("beep.wav", []float32{-1, 0, 1})

	path, err := writeHeader(gen, "")
	require.NoError(t, err)
	defer os.Remove(path)

	assert.True(t, strings.HasSuffix(path, ".h"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#define NUM_SAMPLES 1")
}

func TestWriteHeader_BadDirectory(t *testing.T) {
	gen := headergen.NewGenerator(4096)

	_, err := writeHeader(gen, filepath.Join(t.TempDir(), "no", "such", "dir", "out.h"))
	require.Error(t, err)
}
