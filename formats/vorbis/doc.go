// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples are passed through without
// conversion. The channel count and rate come from the identification
// header.
//
//	source, err := vorbis.Decoder{}.Decode(file)
//
// ReadSamples fills dst with whole frames and returns the number of
// interleaved values written.
package vorbis
