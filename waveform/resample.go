// SPDX-License-Identifier: EPL-2.0

package waveform

import "context"

var defaultResampler = NewResampler()

// Resample brings raw to count non-negative values. Magnitudes are taken
// once. Longer inputs are downsampled by bucketed peak, shorter ones are
// upsampled with strategy, except that None returns the magnitudes of a
// short input unchanged.
//
// Empty input or count < 1 yields an empty series. The returned error is
// non-nil only when ctx is done while reducing.
func (r *Resampler) Resample(ctx context.Context, raw []float32, count int, strategy Strategy) ([]float32, error) {
	if len(raw) == 0 || count <= 0 {
		return []float32{}, nil
	}

	mag := Abs(raw)

	switch {
	case len(mag) < count && strategy == None:
		return mag, nil
	case len(mag) < count:
		return Upsample(mag, count, strategy), nil
	case len(mag) == count:
		return mag, nil
	default:
		return r.reduce(ctx, mag, count)
	}
}

// Resample uses a Resampler bounded by GOMAXPROCS.
func Resample(ctx context.Context, raw []float32, count int, strategy Strategy) ([]float32, error) {
	return defaultResampler.Resample(ctx, raw, count, strategy)
}

// Downsample uses a Resampler bounded by GOMAXPROCS.
func Downsample(ctx context.Context, raw []float32, count int) ([]float32, error) {
	return defaultResampler.Downsample(ctx, raw, count)
}
