// SPDX-License-Identifier: EPL-2.0

// Package extract turns audio files into the mono sample vectors stored by
// package cache.
//
//	x := &extract.FileExtractor{Channel: extract.ChannelMix, AnalysisRate: 8000}
//	c, err := cache.New(x)
//
// Files are matched to a decoder by extension (wav, mp3, ogg/oga,
// aiff/aif). Channels are averaged or reduced to the first one, and the
// signal can be resampled to a lower analysis rate to keep cache entries
// small.
package extract
