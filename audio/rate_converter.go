// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audwave/utils"
)

// maxEmptyReads bounds how many (0, nil) reads are tolerated from a source
// before giving up with io.ErrNoProgress.
const maxEmptyReads = 100

// RateConverter streams src at another sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count. A one-pole low-pass
// runs on the input when the rate goes down.
type RateConverter struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames [4][]float32
	valid  [4]bool
	primed bool
	eof    bool
	done   bool

	// position between frames[1] and frames[2], in source frames
	pos float64

	srcBuf []float32

	lowpass bool
	alpha   float32
	state   []float32
}

func NewRateConverter(src Source, dstRate int) (*RateConverter, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &RateConverter{
		src:      src,
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		srcBuf:   make([]float32, channels),
		lowpass:  ratio > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *RateConverter) SampleRate() int { return r.dstRate }
func (r *RateConverter) Channels() int   { return r.channels }
func (r *RateConverter) BufSize() int    { return r.src.BufSize() }
func (r *RateConverter) Close() error    { return closeSource(r.src) }

// pull reads one frame into slot. It reports whether a frame arrived.
func (r *RateConverter) pull(slot int) (bool, error) {
	if r.eof {
		return false, nil
	}

	for range maxEmptyReads {
		n, err := r.src.ReadSamples(r.srcBuf)
		got := n >= r.channels

		if got {
			frame := r.frames[slot]
			copy(frame, r.srcBuf)

			if r.lowpass {
				if !r.primed && slot == 0 {
					copy(r.state, frame)
				}
				for c := range frame {
					frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
					r.state[c] = frame[c]
				}
			}
		}

		switch {
		case err == io.EOF:
			r.eof = true
			return got, nil
		case err != nil:
			return got, fmt.Errorf("%w", err)
		case got:
			return true, nil
		}
	}

	return false, io.ErrNoProgress
}

func (r *RateConverter) prime() error {
	for i := range r.frames {
		got, err := r.pull(i)
		if err != nil {
			return err
		}

		if !got {
			if i == 0 {
				return io.EOF
			}
			// Short stream: repeat the last frame into the remaining slots.
			for j := i; j < len(r.frames); j++ {
				copy(r.frames[j], r.frames[i-1])
				r.valid[j] = true
			}
			break
		}

		r.valid[i] = true
	}

	r.primed = true
	return nil
}

// advance rotates the window by one source frame.
func (r *RateConverter) advance() error {
	if r.eof {
		return io.EOF
	}

	f := r.frames
	r.frames = [4][]float32{f[1], f[2], f[3], f[0]}
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	got, err := r.pull(3)
	r.valid[3] = got
	if err != nil {
		return err
	}
	if r.eof && !got {
		return io.EOF
	}

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *RateConverter) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				r.done = err == io.EOF
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			r.done = true
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			y1, y2 := r.frames[1][c], r.frames[2][c]
			y0, y3 := y1, y2
			if r.valid[0] {
				y0 = r.frames[0][c]
			}
			if r.valid[3] {
				y3 = r.frames[3][c]
			}
			out[c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
