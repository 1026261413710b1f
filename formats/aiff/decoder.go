// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/internal/intpcm"
)

// Decoder reads uncompressed AIFF files holding 16, 24 or 32-bit PCM.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return intpcm.New(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth)), nil
}
