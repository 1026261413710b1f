// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/internal/intpcm"
)

// Decoder reads RIFF/WAVE files holding integer PCM at 16, 24 or 32 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, ErrUnsupportedWavLayout
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrUnsupportedEncoding
	}

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return intpcm.New(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth)), nil
}
