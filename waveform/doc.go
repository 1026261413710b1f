// SPDX-License-Identifier: EPL-2.0

// Package waveform turns decoded samples into a fixed-length, non-negative
// series for drawing.
//
// # Resampling
//
// Resample takes magnitudes once and then either reduces or stretches:
//
//   - longer inputs are split into count buckets and each bucket keeps its
//     peak magnitude (Downsample)
//   - shorter inputs are interpolated at count control positions eased by a
//     Strategy (Upsample)
//
// Reduction runs buckets on a bounded errgroup; the output is identical for
// any worker count.
//
//	r := waveform.NewResampler(waveform.WithWorkers(4))
//	series, err := r.Resample(ctx, samples, 160, waveform.Smooth)
//
// # Styles
//
// A Style knows how many samples fit a viewport and, for log bars, how to
// rescale them:
//
//	st := waveform.DefaultStyles()["bars"]
//	series, _ := waveform.Resample(ctx, samples, st.SampleCount(320), st.Strategy)
//	series = st.Apply(series)
//
// None of the functions here modify their input slices. Upsample may return
// its input as is, so treat its result as shared.
package waveform
