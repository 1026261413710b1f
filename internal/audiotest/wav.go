// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audwave/utils"
)

// WAV16 builds a canonical 44-byte-header PCM 16-bit WAV file holding the
// interleaved samples.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	const headerSize = 44

	blockAlign := uint16(channels * 2)
	dataSize := uint32(len(samples) * 2)

	out := make([]byte, headerSize+int(dataSize))

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], 36+dataSize)
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(out[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate)*uint32(blockAlign))
	binary.LittleEndian.PutUint16(out[32:34], blockAlign)
	binary.LittleEndian.PutUint16(out[34:36], 16)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], dataSize)

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[headerSize+2*i:], uint16(s))
	}

	return out
}

// WAV16Float quantizes interleaved float samples and wraps them with WAV16.
func WAV16Float(sampleRate, channels int, samples []float32) []byte {
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = utils.Float32ToInt16(s)
	}

	return WAV16(sampleRate, channels, pcm)
}

// Sine returns frames of a mono sine wave at the given amplitude.
func Sine(sampleRate, frames int, frequency float64, amplitude float32) []float32 {
	out := make([]float32, frames)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	}

	return out
}
