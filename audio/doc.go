// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the extractor is built on.
//
//   - Source interface for decoded PCM input
//   - Registry mapping file formats to decoders
//   - MonoMixer and ChannelSelector for folding channels
//   - RateConverter for lowering the analysis sample rate
//   - ReadAll for draining a source into memory
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders in the formats packages and every processor here implement it, so
// they chain:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//	conv, _ := audio.NewRateConverter(mono, 11025)
//	samples, err := audio.ReadAll(ctx, conv, 4096)
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0], interleaved by frame. ReadSamples
// returns io.EOF, possibly together with the last samples, when the stream
// is finished. A source that keeps returning (0, nil) is abandoned with
// io.ErrNoProgress.
package audio
