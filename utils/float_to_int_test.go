// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "small positive", input: 0.001, want: 32},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -3, want: -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		bitDepth int
		want     float32
	}{
		{name: "16-bit min", value: -32768, bitDepth: 16, want: -1},
		{name: "16-bit half", value: 16384, bitDepth: 16, want: 0.5},
		{name: "24-bit min", value: -8388608, bitDepth: 24, want: -1},
		{name: "32-bit quarter", value: 536870912, bitDepth: 32, want: 0.25},
		{name: "8-bit half", value: -64, bitDepth: 8, want: -0.5},
		{name: "unknown depth falls back to 16-bit", value: 16384, bitDepth: 12, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IntToFloat32(tt.value, tt.bitDepth); got != tt.want {
				t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tt.value, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_RoundTrip(t *testing.T) {
	t.Parallel()

	for i := -100; i <= 100; i++ {
		x := float32(i) / 100
		back := IntToFloat32(int(Float32ToInt16(x)), 16)
		if diff := math.Abs(float64(back - x)); diff > 1e-4 {
			t.Errorf("round trip of %v = %v (diff %v)", x, back, diff)
		}
	}
}
