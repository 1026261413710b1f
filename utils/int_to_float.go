// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns the magnitude of the most negative signed sample for
// bitDepth, which is the divisor that maps integer PCM onto [-1, 1).
// Unknown depths are treated as 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat32 converts one signed integer PCM sample of the given bit depth
// to a normalized float32.
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}
