// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into audio.Source.
//
// Decoding is done by github.com/go-audio/wav, which walks the RIFF chunk
// list, so files with LIST, fact or other extra chunks before the data chunk
// are fine. Integer PCM at 16, 24 and 32 bits is supported, mono or
// multi-channel, at any sample rate.
//
//	source, err := wav.Decoder{}.Decode(file)
//	if err == wav.ErrNotWavFile {
//	    // not a WAV file
//	}
//
// go-audio needs to seek. Inputs that are not an io.ReadSeeker are buffered
// in memory first.
//
// # Errors
//
//   - ErrNotWavFile: no RIFF/WAVE header or no audio in the data chunk
//   - ErrUnsupportedWavLayout: header could not be parsed
//   - ErrUnsupportedEncoding: compressed or IEEE float data
//   - ErrUnsupportedBitDepth: 8-bit or other unusual depths
package wav
