// SPDX-License-Identifier: EPL-2.0

// Package cache holds decoded sample vectors shared by every consumer in a
// process.
//
// A SampleCache guarantees that concurrent requests for one resource cause
// a single extraction (golang.org/x/sync/singleflight) and keeps a bounded
// number of results in a recency-ordered store
// (github.com/hashicorp/golang-lru/v2).
//
//	c, err := cache.New(extractor, cache.WithCapacity(50))
//	samples, err := c.Get(ctx, "/music/track.wav")
//
// # Keys
//
// Keys are normalized by NormalizeKey before lookup, so "a/../b.wav",
// "b.wav" and "file:///abs/b.wav" name the same entry when they resolve to
// the same file.
//
// # Cancellation
//
// Cancelling a caller's context only abandons that caller's wait. The
// extraction runs on a detached context until it finishes, and a successful
// result is stored for later callers.
//
// # Errors
//
// Extraction failures come back as *ExtractionError and are not stored.
// ErrEmptyKey and ErrInvalidCapacity report misuse.
package cache
