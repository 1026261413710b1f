// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audwave/internal/audiotest"
	"github.com/ik5/audwave/waveform"
)

func TestMain(m *testing.M) {
	previous := logger.Switch(io.Discard)
	code := m.Run()
	logger.Switch(previous)

	os.Exit(code)
}

func fixture(t *testing.T, dir, name string, frames int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	data := audiotest.WAV16Float(8000, 1, audiotest.Sine(8000, frames, 220, 0.5))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-style", "dots", "-width", "120", "-strategy", "hold", "a.wav", "b.mp3"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "dots", opts.style)
	assert.Equal(t, 120.0, opts.width)
	assert.Equal(t, waveform.Hold, opts.strategy)
	assert.Equal(t, []string{"a.wav", "b.mp3"}, opts.files)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags(nil, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-strategy", "spline", "a.wav"}, io.Discard)
	assert.Error(t, err)
}

func TestRun_Styles(t *testing.T) {
	dir := t.TempDir()
	a := fixture(t, dir, "a.wav", 8000)
	b := fixture(t, dir, "b.wav", 4000)

	var out bytes.Buffer
	err := run(context.Background(), []string{
		"-config", filepath.Join(dir, "missing.yaml"),
		"-env", filepath.Join(dir, "missing.env"),
		"-width", "40", a, b,
	}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	fields := strings.Split(lines[0], "\t")
	require.Len(t, fields, 5)
	assert.Equal(t, a, fields[0])
	assert.Equal(t, "bars", fields[1])
	assert.Equal(t, "1s", fields[2])
	assert.Equal(t, "10", fields[3])
	assert.Len(t, strings.Fields(fields[4]), 10)

	assert.True(t, strings.HasPrefix(lines[1], b+"\tbars\t500ms\t10\t"))
}

func TestRun_SamplesWithConfigAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := fixture(t, dir, "tone.wav", 800)

	cfgPath := filepath.Join(dir, "audwave.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("cache:\n  capacity: 2\n"), 0o644))

	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("AUDWAVE_WORKERS=2\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("AUDWAVE_WORKERS") })

	var out bytes.Buffer
	err := run(context.Background(), []string{
		"-config", cfgPath, "-env", envPath, "-samples", "2000", "-strategy", "linear", file,
	}, &out)
	require.NoError(t, err)

	fields := strings.Split(strings.TrimSpace(out.String()), "\t")
	require.Len(t, fields, 5)
	assert.Equal(t, "linear", fields[1])
	assert.Equal(t, "100ms", fields[2])
	assert.Equal(t, "2000", fields[3])
}

func TestRun_BadFile(t *testing.T) {
	dir := t.TempDir()

	err := run(context.Background(), []string{
		"-config", filepath.Join(dir, "none.yaml"),
		"-env", filepath.Join(dir, "none.env"),
		filepath.Join(dir, "song.flac"),
	}, io.Discard)
	assert.Error(t, err)
}
