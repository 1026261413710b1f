// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// frameReader pulls whole interleaved frames from a multi-channel source into
// a scratch buffer that only grows.
type frameReader struct {
	src Source
	tmp []float32
}

func (f *frameReader) read(frames int) ([]float32, int, error) {
	channels := f.src.Channels()
	need := frames * channels

	if cap(f.tmp) < need {
		f.tmp = make([]float32, max(need, 8192))
	}

	n, err := f.src.ReadSamples(f.tmp[:need])
	return f.tmp[:n], n / channels, err
}

func closeSource(src Source) error {
	if err := src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// MonoMixer folds every frame of src into one sample by averaging channels.
type MonoMixer struct {
	frameReader
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{frameReader{src: src, tmp: make([]float32, 4096)}}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error    { return closeSource(m.src) }

// ReadSamples writes one mono sample per source frame into dst.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	buf, frames, err := m.read(len(dst))
	if frames == 0 {
		return 0, err
	}

	switch channels {
	case 2:
		for f := range frames {
			dst[f] = (buf[f<<1] + buf[f<<1+1]) * 0.5
		}
	default:
		inv := 1 / float32(channels)
		for f := range frames {
			var sum float32
			for _, v := range buf[f*channels : (f+1)*channels] {
				sum += v
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}

// ChannelSelector keeps a single channel of src and drops the rest.
type ChannelSelector struct {
	frameReader
	channel int
}

func NewChannelSelector(src Source, channel int) (*ChannelSelector, error) {
	if channel < 0 || channel >= src.Channels() {
		return nil, fmt.Errorf("channel %d of %d: %w", channel, src.Channels(), ErrInvalidChannel)
	}

	return &ChannelSelector{
		frameReader: frameReader{src: src, tmp: make([]float32, 4096)},
		channel:     channel,
	}, nil
}

func (c *ChannelSelector) SampleRate() int { return c.src.SampleRate() }
func (c *ChannelSelector) Channels() int   { return 1 }
func (c *ChannelSelector) BufSize() int    { return c.src.BufSize() }
func (c *ChannelSelector) Close() error    { return closeSource(c.src) }

func (c *ChannelSelector) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := c.src.Channels()
	if channels == 1 {
		return c.src.ReadSamples(dst)
	}

	buf, frames, err := c.read(len(dst))
	for f := range frames {
		dst[f] = buf[f*channels+c.channel]
	}

	return frames, err
}
