// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockValues mimics oggvorbis.Reader: it hands out whole frames and reports
// how many interleaved values it wrote.
type mockValues struct {
	rate     int
	channels int
	values   []float32
	maxFrame int
	err      error
}

func (m *mockValues) SampleRate() int { return m.rate }
func (m *mockValues) Channels() int   { return m.channels }

func (m *mockValues) Read(p []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.values) == 0 {
		return 0, io.EOF
	}

	frames := len(p) / m.channels
	if m.maxFrame > 0 && frames > m.maxFrame {
		frames = m.maxFrame
	}
	n := copy(p[:frames*m.channels], m.values)
	m.values = m.values[n:]

	return n, nil
}

func newSource(m *mockValues) *source {
	return &source{dec: m, sampleRate: m.rate, channels: m.channels}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("This is not Ogg Vorbis data")},
		{name: "empty", data: nil},
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

func TestSource_ReadSamples_CountsValues(t *testing.T) {
	t.Parallel()

	values := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	s := newSource(&mockValues{rate: 48000, channels: 2, values: values})

	buf := make([]float32, 16)
	n, err := s.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(values) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(values))
	}
	for i, v := range values {
		if buf[i] != v {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], v)
		}
	}

	if n, err := s.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_ReadSamples_WholeFrames(t *testing.T) {
	t.Parallel()

	values := make([]float32, 30)
	s := newSource(&mockValues{rate: 44100, channels: 3, values: values})

	// 10 values leave room for 3 frames only.
	n, err := s.ReadSamples(make([]float32, 10))
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 9 {
		t.Errorf("ReadSamples() n = %d, want 9", n)
	}

	n, err = s.ReadSamples(make([]float32, 2))
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(len 2) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_Drain(t *testing.T) {
	t.Parallel()

	values := make([]float32, 1000)
	for i := range values {
		values[i] = float32(i) / 1000
	}
	s := newSource(&mockValues{rate: 22050, channels: 1, values: values, maxFrame: 7})

	var got []float32
	buf := make([]float32, 64)
	for {
		n, err := s.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(values) {
		t.Fatalf("read %d values, want %d", len(got), len(values))
	}
	if got[999] != values[999] {
		t.Errorf("last value = %v, want %v", got[999], values[999])
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	s := newSource(&mockValues{rate: 44100, channels: 2, err: boom})

	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := newSource(&mockValues{rate: 32000, channels: 6})

	if s.SampleRate() != 32000 || s.Channels() != 6 {
		t.Errorf("format = %d Hz / %d ch, want 32000 / 6", s.SampleRate(), s.Channels())
	}
	if s.BufSize()%6 != 0 {
		t.Errorf("BufSize() = %d, want a multiple of 6", s.BufSize())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	values := make([]float32, 44100*2)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		s := newSource(&mockValues{rate: 44100, channels: 2, values: values})
		for {
			if _, err := s.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
