// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Inputs shorter than this are reduced on the calling goroutine.
const parallelThreshold = 1 << 15

// Resampler reduces and stretches sample series. A Resampler is safe for
// concurrent use; it holds no state besides its worker limit.
type Resampler struct {
	workers int
}

type Option func(*Resampler)

// WithWorkers bounds the goroutines used per Downsample call. Values below 1
// select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(r *Resampler) {
		r.workers = n
	}
}

func NewResampler(opts ...Option) *Resampler {
	r := &Resampler{}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	return r
}

// Workers reports the effective worker limit.
func (r *Resampler) Workers() int { return r.workers }

// Downsample reduces raw to count values, each the largest magnitude in its
// bucket. Bucket i covers [i*step, (i+1)*step) with step = len(raw)/count;
// the last bucket absorbs the remainder.
//
// When raw holds no more than count samples it is returned as Abs(raw), so
// the result is shorter than count. Empty input or count < 1 yields an empty
// series. The returned error is non-nil only when ctx is done.
func (r *Resampler) Downsample(ctx context.Context, raw []float32, count int) ([]float32, error) {
	if len(raw) == 0 || count <= 0 {
		return []float32{}, nil
	}
	if len(raw) <= count {
		return Abs(raw), nil
	}
	return r.reduce(ctx, raw, count)
}

func (r *Resampler) reduce(ctx context.Context, raw []float32, count int) ([]float32, error) {
	out := make([]float32, count)
	step := len(raw) / count

	if r.workers == 1 || len(raw) < parallelThreshold {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reduceBuckets(out, raw, step, 0, count)
		return out, nil
	}

	chunk := (count + r.workers - 1) / r.workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for lo := 0; lo < count; lo += chunk {
		hi := min(lo+chunk, count)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reduceBuckets(out, raw, step, lo, hi)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// reduceBuckets fills out[lo:hi]. Each index is written by exactly one
// caller, so disjoint ranges may run concurrently.
func reduceBuckets(out, raw []float32, step, lo, hi int) {
	last := len(out) - 1
	for i := lo; i < hi; i++ {
		start := i * step
		end := start + step
		if i == last {
			end = len(raw)
		}
		out[i] = maxAbs(raw[start:end])
	}
}

func maxAbs(bucket []float32) float32 {
	var peak float32
	for _, v := range bucket {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

// Abs returns a new slice holding the magnitude of every sample.
func Abs(raw []float32) []float32 {
	out := make([]float32, len(raw))
	for i, v := range raw {
		if v < 0 {
			v = -v
		}
		out[i] = v
	}
	return out
}
