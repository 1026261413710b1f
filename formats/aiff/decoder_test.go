// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/ik5/audwave/internal/audiotest"
)

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("This is not AIFF data")},
		{name: "empty", data: []byte{}},
		{name: "wav", data: audiotest.WAV16(8000, 1, []int16{1, 2, 3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestDecoder_ValidFile(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 0, 16384, -16384, 32767, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(audiotest.AIFF16(44100, 2, pcm)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	buf := make([]float32, 16)
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(pcm) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(pcm))
	}

	for i, v := range pcm {
		want := float32(v) / 32768.0
		if math.Abs(float64(buf[i]-want)) > 1e-6 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want)
		}
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(audiotest.AIFF16(8000, 1, make([]int16, 8))))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotAiffFile, ErrUnsupportedBitDepth, ErrUnsupportedAiffLayout}
	for i := range errs {
		for j := i + 1; j < len(errs); j++ {
			if errs[i] == errs[j] || errs[i].Error() == errs[j].Error() {
				t.Errorf("errors %d and %d are not distinct", i, j)
			}
		}
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	data := audiotest.AIFF16(44100, 2, make([]int16, 44100*2))
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
