// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files with
// github.com/go-audio/aiff.
//
// Uncompressed PCM at 16, 24 and 32 bits is supported, any channel count and
// sample rate. AIFF-C (compressed) files are rejected.
//
//	source, err := aiff.Decoder{}.Decode(file)
//	if err == aiff.ErrNotAiffFile {
//	    // not an AIFF file
//	}
//
// Samples are big-endian on disk; the returned audio.Source yields float32
// values in [-1.0, 1.0] like every other decoder in this module.
package aiff
