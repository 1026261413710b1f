// SPDX-License-Identifier: EPL-2.0

package waveform

import "github.com/chewxy/math32"

// Upsample stretches raw to count values by interpolating between
// neighbours at positions taken from ControlVector. When raw already holds
// count or more samples the result is raw itself, not a copy; callers that
// got raw from the cache must not write to it.
//
// None has no easing of its own and interpolates like Linear here; Resample
// never calls Upsample with None.
func Upsample(raw []float32, count int, strategy Strategy) []float32 {
	if len(raw) == 0 {
		return []float32{}
	}
	if count <= len(raw) {
		return raw
	}

	positions := ControlVector(len(raw), count, strategy)
	last := len(raw) - 1

	out := make([]float32, count)
	for i, p := range positions {
		lo := int(p)
		hi := min(lo+1, last)
		frac := p - float32(lo)
		out[i] = raw[lo] + (raw[hi]-raw[lo])*frac
	}

	return out
}

// ControlVector returns count fractional source positions spread evenly over
// [0, n-1], with the fractional part of each eased by strategy. The result is
// non-decreasing and ends at exactly n-1.
func ControlVector(n, count int, strategy Strategy) []float32 {
	if n <= 0 || count <= 0 {
		return []float32{}
	}

	out := make([]float32, count)
	if count == 1 {
		return out
	}

	span := float64(n - 1)
	den := float64(count - 1)
	for i := range out {
		pos := span * float64(i) / den
		whole := float32(int(pos))
		out[i] = whole + ease(float32(pos)-whole, strategy)
	}
	out[count-1] = float32(n - 1)

	return out
}

func ease(frac float32, strategy Strategy) float32 {
	switch strategy {
	case Hold:
		return 0
	case Cosine:
		return (1 - math32.Cos(frac*math32.Pi)) / 2
	case Smooth:
		return Smoothstep(frac)
	default:
		return frac
	}
}

// Smoothstep is the cubic Hermite ease x*x*(3-2x), clamped to [0, 1].
func Smoothstep(x float32) float32 {
	x = math32.Max(0, math32.Min(1, x))
	return x * x * (3 - 2*x)
}
