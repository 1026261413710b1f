// SPDX-License-Identifier: EPL-2.0

// Package audwave turns audio files into fixed-length amplitude series for
// waveform views.
//
// A Waveform owns one shared sample cache for the whole process. Each file
// is decoded once no matter how many views ask for it at the same time, and
// every view resamples the cached samples to its own width:
//
//	cfg, _ := config.Load("audwave.yaml")
//	x, _ := cfg.FileExtractor()
//	w, _ := audwave.New(cfg, x)
//
//	res, err := w.Render(ctx, "/music/track.mp3", "bars", 320)
//	// res.Samples holds 80 non-negative values
//
// # Packages
//
//   - waveform: downsampling, upsampling strategies, log scale, styles
//   - cache: single-flight LRU cache of decoded samples
//   - extract: file decoding into mono sample vectors
//   - audio: Source, Registry, channel folding, rate conversion
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: decoders
//   - config: YAML configuration
//
// # Cancellation
//
// Cancelling the context passed to Render or Samples abandons only that
// call. A decode already running finishes for the benefit of other callers
// and lands in the cache.
package audwave
