// SPDX-License-Identifier: EPL-2.0

package extract

import (
	"context"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audwave/audio"
)

// ChannelMode decides how multi-channel audio becomes one amplitude
// series.
type ChannelMode string

const (
	// ChannelMix averages all channels.
	ChannelMix ChannelMode = "mix"
	// ChannelFirst keeps the first channel and drops the rest.
	ChannelFirst ChannelMode = "first"
)

func ParseChannelMode(s string) (ChannelMode, error) {
	switch m := ChannelMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ChannelMix:
		return ChannelMix, nil
	case ChannelFirst:
		return ChannelFirst, nil
	default:
		return "", errors.Wrapf(ErrInvalidChannel, "mode=%v", s)
	}
}

// FileExtractor decodes local audio files into mono float32 samples. The
// zero value mixes channels, keeps the source rate and knows every bundled
// format.
type FileExtractor struct {
	// Registry picks a decoder by extension; nil uses NewRegistry.
	Registry *audio.Registry
	Channel  ChannelMode
	// AnalysisRate, when positive and below the source rate, resamples the
	// mono signal before it is returned.
	AnalysisRate int
	// BufferSize is the decode chunk in samples; zero uses the decoder's.
	BufferSize int
}

// Extract reads the file named by key, which is a path or a file:// URL.
// The duration is the number of returned frames over their sample rate.
func (x *FileExtractor) Extract(ctx context.Context, key string) ([]float32, time.Duration, error) {
	path, err := localPath(key)
	if err != nil {
		return nil, 0, err
	}

	reg := x.Registry
	if reg == nil {
		reg = defaultRegistry
	}

	dec, format, err := reg.LookupPath(path)
	if err != nil {
		return nil, 0, errors.Wrapf(ErrUnsupportedFormat, "path=%v, format=%v", path, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "open %v", path)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "decode %v as %v", path, format)
	}
	defer src.Close()

	mono, err := x.fold(src)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "fold %v channels of %v", src.Channels(), path)
	}

	out := mono
	if x.AnalysisRate > 0 && x.AnalysisRate < mono.SampleRate() {
		if out, err = audio.NewRateConverter(mono, x.AnalysisRate); err != nil {
			return nil, 0, errors.Wrapf(err, "analysis rate %v", x.AnalysisRate)
		}
	}

	samples, err := audio.ReadAll(ctx, out, x.BufferSize)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		return nil, 0, errors.Wrapf(err, "read %v", path)
	}

	if len(samples) == 0 {
		return nil, 0, errors.Wrapf(ErrNoAudio, "path=%v", path)
	}

	duration := time.Duration(len(samples)) * time.Second / time.Duration(out.SampleRate())

	logger.Tf(ctx, "extract %v format=%v, rate=%v->%v, channels=%v, samples=%v, duration=%v",
		path, format, src.SampleRate(), out.SampleRate(), src.Channels(), len(samples), duration)

	return samples, duration, nil
}

func (x *FileExtractor) fold(src audio.Source) (audio.Source, error) {
	if src.Channels() == 1 {
		return src, nil
	}

	mode, err := ParseChannelMode(string(x.Channel))
	if err != nil {
		return nil, err
	}

	if mode == ChannelFirst {
		return audio.NewChannelSelector(src, 0)
	}
	return audio.NewMonoMixer(src), nil
}

var defaultRegistry = NewRegistry()

func localPath(key string) (string, error) {
	if !strings.Contains(key, "://") {
		return key, nil
	}

	u, err := url.Parse(key)
	if err != nil {
		return "", errors.Wrapf(err, "parse %v", key)
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return "", errors.Wrapf(ErrUnsupportedScheme, "scheme=%v", u.Scheme)
	}

	return u.Path, nil
}
