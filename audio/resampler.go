// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/brianvarren/synth-foundry/utils"
)

// Resampler streams from src to a target sample rate using Catmull-Rom
// cubic interpolation. Works on interleaved samples and preserves the
// channel count.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	ratio    float64 // source frames consumed per output frame

	// Sliding window of 4 frames. Interpolation happens between
	// window[1] and window[2]; window[0] and window[3] supply slope.
	window [4][]float32
	have   [4]bool
	primed bool

	// Fractional position between window[1] and window[2].
	pos float64

	frame []float32
	eof   bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		ratio:    float64(src.SampleRate()) / float64(dstRate),
		frame:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the initial 4-frame window. Missing trailing frames are
// duplicated from the last valid one so short inputs still interpolate.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.frame)
		if n > 0 {
			copy(r.window[i], r.frame[:n])
			r.have[i] = true
		}
		if err == io.EOF {
			r.eof = true
			if !r.have[0] {
				return io.EOF
			}
			for j := i; j < 4; j++ {
				if !r.have[j] {
					copy(r.window[j], r.window[j-1])
					r.have[j] = r.have[j-1]
				}
			}
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.primed = true
	return nil
}

// advance shifts the window by one frame and reads the next source frame
// into the tail slot.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	n, err := r.src.ReadSamples(r.frame)
	if n > 0 {
		copy(r.window[3], r.frame[:n])
		r.have[3] = true
	} else {
		r.have[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.have[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces interpolated samples at the target rate. The dst
// length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y1 := r.window[1][c]
			y2 := r.window[2][c]

			y0 := y1
			if r.have[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.have[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
