package aiff

import (
	"bytes"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the go-audio aiff.Decoder for testing
type mockAiffReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
}

func (m *mockAiffReader) Format() *goaudio.Format { return m.format }

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, nil
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an aiff file")))
	if err != ErrNotAiffFile {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_ReadSamplesScaling(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, -16384, 32767, -32768}
	src := &source{
		dec: &mockAiffReader{
			format:  &goaudio.Format{SampleRate: 22050, NumChannels: 1},
			samples: samples,
		},
		sampleRate: 22050,
		channels:   1,
	}

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, want := range samples {
		expected := float32(want) / 32768.0
		if math.Abs(float64(dst[i]-expected)) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], expected)
		}
	}
}

func TestSource_EOFWhenExhausted(t *testing.T) {
	t.Parallel()

	src := &source{
		dec: &mockAiffReader{
			format:  &goaudio.Format{SampleRate: 22050, NumChannels: 1},
			samples: []int{1, 2, 3},
		},
		sampleRate: 22050,
		channels:   1,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 3 {
		t.Errorf("ReadSamples() n = %d, want 3", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}
