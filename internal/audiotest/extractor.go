// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Extractor is a scripted sample extractor for cache tests. Its Extract
// method matches cache.Extractor.
type Extractor struct {
	// Samples is returned for every key unless Fail is set.
	Samples  []float32
	Duration time.Duration
	// Fail, when non-nil, decides per call whether to fail and with what.
	Fail func(key string, call int) error
	// Gate, when non-nil, blocks every extraction until it is closed.
	Gate chan struct{}

	calls   atomic.Int64
	mu      sync.Mutex
	perKey  map[string]int
	started chan string
}

// NewExtractor returns an extractor that yields samples for any key.
func NewExtractor(samples []float32, duration time.Duration) *Extractor {
	return &Extractor{
		Samples:  samples,
		Duration: duration,
		perKey:   make(map[string]int),
		started:  make(chan string, 64),
	}
}

// Started delivers the key of each extraction as it begins.
func (e *Extractor) Started() <-chan string { return e.started }

// Calls is the total number of extractions performed.
func (e *Extractor) Calls() int { return int(e.calls.Load()) }

// CallsFor is the number of extractions performed for key.
func (e *Extractor) CallsFor(key string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.perKey[key]
}

func (e *Extractor) Extract(ctx context.Context, key string) ([]float32, time.Duration, error) {
	e.calls.Add(1)

	e.mu.Lock()
	e.perKey[key]++
	call := e.perKey[key]
	e.mu.Unlock()

	select {
	case e.started <- key:
	default:
	}

	if e.Gate != nil {
		select {
		case <-e.Gate:
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		}
	}

	if e.Fail != nil {
		if err := e.Fail(key, call); err != nil {
			return nil, 0, err
		}
	}

	return e.Samples, e.Duration, nil
}
