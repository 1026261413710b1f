// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"context"
	"sort"
	"time"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audwave/cache"
	"github.com/ik5/audwave/config"
	"github.com/ik5/audwave/waveform"
)

// Result is one rendered series.
type Result struct {
	Key      string
	Style    string
	Samples  []float32
	Duration time.Duration
}

// Waveform ties the shared sample cache to the resampler and the configured
// styles. Create one per process and share it; it is safe for concurrent
// use.
type Waveform struct {
	cache     *cache.SampleCache
	resampler *waveform.Resampler
	styles    map[string]waveform.Style
}

// New validates cfg and builds the cache around ex. A nil cfg uses
// config.Default().
func New(cfg *config.Config, ex cache.Extractor) (*Waveform, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config")
	}

	styles, err := cfg.StyleSet()
	if err != nil {
		return nil, errors.Wrapf(err, "styles")
	}

	c, err := cache.New(ex,
		cache.WithCapacity(cfg.Cache.Capacity),
		cache.WithOnEvict(func(e cache.Entry) {
			logger.Tf(context.Background(), "waveform evict key=%v, samples=%v", e.Key, len(e.Samples))
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "cache")
	}

	return &Waveform{
		cache:     c,
		resampler: waveform.NewResampler(waveform.WithWorkers(cfg.Workers)),
		styles:    styles,
	}, nil
}

// Samples returns the series for key resampled to count values, and the
// resource duration.
func (w *Waveform) Samples(ctx context.Context, key string, count int, strategy waveform.Strategy) ([]float32, time.Duration, error) {
	e, err := w.cache.Load(ctx, key)
	if err != nil {
		if ctx.Err() != nil {
			logger.Tf(ctx, "waveform key=%v abandoned, %v", key, ctx.Err())
			return nil, 0, ctx.Err()
		}
		logger.Wf(ctx, "waveform key=%v load failed, err %+v", key, err)
		return nil, 0, err
	}

	series, err := w.resampler.Resample(ctx, e.Samples, count, strategy)
	if err != nil {
		logger.Tf(ctx, "waveform key=%v resample abandoned, %v", key, err)
		return nil, 0, err
	}

	return series, e.Duration, nil
}

// Render sizes the series for a viewport width using the named style.
//
// Render logs with ctx as given. Tag it with logger.WithContext before
// fanning out, since that call is not safe to make concurrently.
func (w *Waveform) Render(ctx context.Context, key, style string, width float64) (Result, error) {
	st, ok := w.styles[style]
	if !ok {
		return Result{}, errors.Wrapf(waveform.ErrUnknownStyle, "style=%v", style)
	}

	count := st.SampleCount(width)
	series, duration, err := w.Samples(ctx, key, count, st.Strategy)
	if err != nil {
		return Result{}, err
	}

	series = st.Apply(series)
	logger.Tf(ctx, "waveform render key=%v, style=%v, width=%v, samples=%v", key, style, width, len(series))

	return Result{Key: key, Style: style, Samples: series, Duration: duration}, nil
}

// Cache exposes the shared sample cache.
func (w *Waveform) Cache() *cache.SampleCache { return w.cache }

// Styles lists the configured style names in sorted order.
func (w *Waveform) Styles() []string {
	names := make([]string, 0, len(w.styles))
	for name := range w.styles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
