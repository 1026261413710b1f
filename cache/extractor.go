// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"context"
	"time"
)

// Extractor decodes the resource behind key into mono amplitude samples and
// reports its playback duration.
//
// The cache calls Extract with a context that is never cancelled by the
// requesting callers, since other waiters may share the result. Extract
// must not retain or modify the returned slice afterwards.
type Extractor interface {
	Extract(ctx context.Context, key string) ([]float32, time.Duration, error)
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(ctx context.Context, key string) ([]float32, time.Duration, error)

func (f ExtractorFunc) Extract(ctx context.Context, key string) ([]float32, time.Duration, error) {
	return f(ctx, key)
}
