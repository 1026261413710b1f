// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockPCM serves little-endian int16 bytes in chunks of at most chunk bytes.
type mockPCM struct {
	rate  int
	data  []byte
	chunk int
	err   error
}

func newMockPCM(rate int, samples []int16, chunk int) *mockPCM {
	data := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		data = binary.LittleEndian.AppendUint16(data, uint16(s))
	}
	return &mockPCM{rate: rate, data: data, chunk: chunk}
}

func (m *mockPCM) SampleRate() int { return m.rate }

func (m *mockPCM) Read(p []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}
	if m.chunk > 0 && len(p) > m.chunk {
		p = p[:m.chunk]
	}
	n := copy(p, m.data)
	m.data = m.data[n:]
	return n, nil
}

func drain(t *testing.T, s *source, bufLen int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufLen)
	for range 1000 {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("This is not MP3 data")},
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

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{dec: newMockPCM(44100, nil, 0), sampleRate: 44100}

	if s.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples_Conversion(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 16384, -16384, 32767, -32768, 0}
	s := &source{dec: newMockPCM(44100, pcm, 0), sampleRate: 44100}

	got := drain(t, s, 64)
	if len(got) != len(pcm) {
		t.Fatalf("read %d samples, want %d", len(got), len(pcm))
	}
	for i, v := range pcm {
		if want := float32(v) / 32768.0; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_OddChunks(t *testing.T) {
	t.Parallel()

	pcm := make([]int16, 200)
	for i := range pcm {
		pcm[i] = int16(i * 100)
	}

	// Three-byte chunks split samples across reads.
	s := &source{dec: newMockPCM(22050, pcm, 3), sampleRate: 22050}

	got := drain(t, s, 14)
	if len(got) != len(pcm) {
		t.Fatalf("read %d samples, want %d", len(got), len(pcm))
	}
	for i, v := range pcm {
		if want := float32(v) / 32768.0; got[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	s := &source{dec: newMockPCM(44100, []int16{1, 2, 3}, 0), sampleRate: 44100}

	got := drain(t, s, 8)
	if len(got) != 2 {
		t.Errorf("read %d samples, want 2 (one whole frame)", len(got))
	}
}

func TestSource_ReadSamples_TooSmallBuffer(t *testing.T) {
	t.Parallel()

	s := &source{dec: newMockPCM(44100, []int16{1, 2}, 0), sampleRate: 44100}

	n, err := s.ReadSamples(make([]float32, 1))
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(len 1) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_StickyEOF(t *testing.T) {
	t.Parallel()

	s := &source{dec: newMockPCM(44100, []int16{1, 2}, 0), sampleRate: 44100}
	buf := make([]float32, 8)

	if n, err := s.ReadSamples(buf); n != 2 || err != io.EOF {
		t.Fatalf("first ReadSamples() = %d, %v; want 2, EOF", n, err)
	}
	if n, err := s.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	s := &source{dec: &mockPCM{rate: 44100, err: boom}, sampleRate: 44100}

	_, err := s.ReadSamples(make([]float32, 8))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	s := &source{dec: newMockPCM(44100, nil, 0), buf: make([]byte, 8192)}
	if got := s.BufSize(); got != 4096 {
		t.Errorf("BufSize() = %d, want 4096", got)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	pcm := make([]int16, 44100*2)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for range b.N {
		s := &source{dec: newMockPCM(44100, pcm, 0), sampleRate: 44100, buf: make([]byte, 8192)}
		for {
			if _, err := s.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
