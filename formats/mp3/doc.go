// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits interleaved stereo 16-bit PCM, so the returned
// audio.Source reports two channels even for mono files. Use
// audio.NewMonoMixer or audio.NewChannelSelector to fold it.
//
//	source, err := mp3.Decoder{}.Decode(file)
//
// ReadSamples only returns whole stereo frames; pass a buffer with an even
// length.
package mp3
