// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math/bits"
)

// AIFF16 builds a minimal FORM/AIFF file with COMM and SSND chunks holding
// interleaved big-endian 16-bit samples.
func AIFF16(sampleRate, channels int, samples []int16) []byte {
	const (
		commSize = 18
		ssndHead = 8 // offset + block size
	)

	frames := 0
	if channels > 0 {
		frames = len(samples) / channels
	}

	dataSize := len(samples) * 2
	formSize := 4 + (8 + commSize) + (8 + ssndHead + dataSize)

	out := make([]byte, 0, 8+formSize)
	be := binary.BigEndian

	out = append(out, "FORM"...)
	out = be.AppendUint32(out, uint32(formSize))
	out = append(out, "AIFF"...)

	out = append(out, "COMM"...)
	out = be.AppendUint32(out, commSize)
	out = be.AppendUint16(out, uint16(channels))
	out = be.AppendUint32(out, uint32(frames))
	out = be.AppendUint16(out, 16)
	out = append(out, extended(uint64(sampleRate))...)

	out = append(out, "SSND"...)
	out = be.AppendUint32(out, uint32(ssndHead+dataSize))
	out = be.AppendUint32(out, 0)
	out = be.AppendUint32(out, 0)
	for _, s := range samples {
		out = be.AppendUint16(out, uint16(s))
	}

	return out
}

// extended encodes a positive integer as an 80-bit IEEE 754 extended float.
func extended(v uint64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}

	shift := bits.LeadingZeros64(v)
	exp := uint16(16383 + 63 - shift)

	binary.BigEndian.PutUint16(out[0:2], exp)
	binary.BigEndian.PutUint64(out[2:10], v<<shift)

	return out
}
