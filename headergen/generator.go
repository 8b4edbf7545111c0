package headergen

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// valuesPerLine is the fixed wrap width of the emitted data arrays.
const valuesPerLine = 10

// structDef is the descriptor layout the firmware indexes samples by.
// It must match SampleData in the playback engine byte for byte.
const structDef = `struct SampleData {
    const uint16_t index;
    const int16_t* data;
    const uint32_t size;
    const char* name;
};

`

// Entry is one converted sample: its manifest index, derived identifier
// and quantized data.
type Entry struct {
	Index int
	Name  string
	Data  []int16
}

// Generator accumulates samples in input order and renders them as a C
// header. The zero Generator is not usable; call NewGenerator.
type Generator struct {
	resolution int
	entries    []Entry
}

// NewGenerator returns a Generator quantizing to the given resolution.
// A resolution <= 0 selects DefaultResolution.
func NewGenerator(resolution int) *Generator {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	return &Generator{resolution: resolution}
}

// Resolution reports the quantization resolution in use.
func (g *Generator) Resolution() int { return g.resolution }

// Entries returns the accumulated samples in input order.
func (g *Generator) Entries() []Entry { return g.entries }

// Add normalizes and quantizes one mono sample and appends it to the
// manifest. name may be a file path; the identifier is derived from its
// base name. Indices are assigned 0..N-1 in call order.
func (g *Generator) Add(name string, samples []float32) {
	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = float64(s)
	}

	Normalize(data)

	g.entries = append(g.entries, Entry{
		Index: len(g.entries),
		Name:  SanitizeName(name),
		Data:  Quantize(data, g.resolution),
	})
}

// String renders the complete header: sample count, descriptor struct,
// manifest initializer, then one data array per sample, all in input
// order.
func (g *Generator) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "#define NUM_SAMPLES %d\n\n", len(g.entries))
	b.WriteString(structDef)

	b.WriteString("SampleData sample[NUM_SAMPLES] = {\n")
	for _, e := range g.entries {
		fmt.Fprintf(&b, "    { %d, &%s[0], %d, %q },\n", e.Index, e.Name, len(e.Data), e.Name)
	}
	b.WriteString("};\n\n")

	for i, e := range g.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeArray(&b, e)
	}

	return b.String()
}

// writeArray emits one PROGMEM array literal, wrapped at valuesPerLine
// values with the separating comma kept at each line end.
func writeArray(b *strings.Builder, e Entry) {
	fmt.Fprintf(b, "const int16_t %s[] PROGMEM = {", e.Name)

	for i, v := range e.Data {
		if i > 0 {
			if i%valuesPerLine == 0 {
				b.WriteString(",\n")
			} else {
				b.WriteString(", ")
			}
		}
		b.WriteString(strconv.Itoa(int(v)))
	}

	b.WriteString("};\n")
}

// Render writes the header text to w.
func (g *Generator) Render(w io.Writer) error {
	if _, err := io.WriteString(w, g.String()); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile renders the header into a fresh temporary file and returns
// its path. The file is removed again if writing fails.
func (g *Generator) WriteFile() (string, error) {
	f, err := os.CreateTemp("", "samples-*.h")
	if err != nil {
		return "", fmt.Errorf("create header file: %w", err)
	}

	if err := g.Render(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write %s: %w", f.Name(), err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close %s: %w", f.Name(), err)
	}

	return f.Name(), nil
}
