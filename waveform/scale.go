// SPDX-License-Identifier: EPL-2.0

package waveform

import "github.com/chewxy/math32"

// DefaultLogFloor is the magnitude mapped to zero by LogScale.
const DefaultLogFloor = 0.1

// LogScale maps magnitudes onto a decibel-like [0, 1] scale:
//
//	(log10(max(s, floor)) - log10(floor)) / -log10(floor)
//
// so floor and anything quieter map to 0 and full scale maps to 1. A floor
// outside (0, 1) is replaced by DefaultLogFloor. The input is not modified.
func LogScale(samples []float32, floor float32) []float32 {
	if !(floor > 0 && floor < 1) {
		floor = DefaultLogFloor
	}

	base := math32.Log10(floor)
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = (math32.Log10(math32.Max(s, floor)) - base) / (0 - base)
	}

	return out
}
