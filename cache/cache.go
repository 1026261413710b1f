// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"context"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"
	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is the number of entries kept when WithCapacity is not
// given.
const DefaultCapacity = 50

// Entry is one extracted resource. Samples is shared by every caller that
// receives the entry and must be treated as read-only.
type Entry struct {
	Key      string
	Samples  []float32
	Duration time.Duration
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits        uint64 // served from the store
	Misses      uint64 // had to wait on an extraction
	Shared      uint64 // misses that received another caller's extraction
	Extractions uint64 // successful extractions
	Failures    uint64 // failed extractions
	Evictions   uint64 // entries dropped to stay within capacity
}

// SampleCache shares extracted samples between callers. At most one
// extraction per key is in flight no matter how many callers ask for it,
// and only successful extractions are stored. The least recently used entry
// is dropped once capacity is reached.
//
// A SampleCache is safe for concurrent use. It is meant to be created once
// by the application and handed to every consumer.
type SampleCache struct {
	ex       Extractor
	capacity int
	onEvict  func(Entry)

	store *lru.Cache[string, Entry]
	group singleflight.Group

	hits, misses, shared             atomic.Uint64
	extractions, failures, evictions atomic.Uint64
}

type Option func(*SampleCache)

// WithCapacity bounds the number of stored entries.
func WithCapacity(n int) Option {
	return func(c *SampleCache) {
		c.capacity = n
	}
}

// WithOnEvict registers fn to run whenever an entry leaves the store,
// including Remove and Purge. fn must not call back into the cache.
func WithOnEvict(fn func(Entry)) Option {
	return func(c *SampleCache) {
		c.onEvict = fn
	}
}

func New(ex Extractor, opts ...Option) (*SampleCache, error) {
	if ex == nil {
		return nil, ErrNilExtractor
	}

	c := &SampleCache{ex: ex, capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(c)
	}

	if c.capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity=%v", c.capacity)
	}

	var err error
	if c.onEvict != nil {
		c.store, err = lru.NewWithEvict(c.capacity, func(_ string, e Entry) {
			c.onEvict(e)
		})
	} else {
		c.store, err = lru.New[string, Entry](c.capacity)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "lru capacity=%v", c.capacity)
	}

	return c, nil
}

// Get returns the samples for key, extracting them on first use.
func (c *SampleCache) Get(ctx context.Context, key string) ([]float32, error) {
	e, err := c.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	return e.Samples, nil
}

// Load returns the entry for key, extracting it on first use.
//
// If ctx is done before the entry is available Load returns ctx.Err(); the
// extraction keeps running for other waiters and its result is still
// stored. Extraction failures are returned as *ExtractionError.
func (c *SampleCache) Load(ctx context.Context, key string) (Entry, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return Entry{}, err
	}

	if e, ok := c.store.Get(key); ok {
		c.hits.Add(1)
		return e, nil
	}

	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	c.misses.Add(1)

	ch := c.group.DoChan(key, func() (any, error) {
		return c.extract(ctx, key)
	})

	select {
	case <-ctx.Done():
		return Entry{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			c.shared.Add(1)
		}
		if res.Err != nil {
			return Entry{}, res.Err
		}
		return res.Val.(Entry), nil
	}
}

// extract runs once per flight. parent belongs to whichever caller started
// the flight, so only its values are kept.
func (c *SampleCache) extract(parent context.Context, key string) (e Entry, err error) {
	// A flight that finished between our store lookup and DoChan has
	// already published the entry.
	if done, ok := c.store.Peek(key); ok {
		return done, nil
	}

	ctx := context.WithoutCancel(parent)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = &ExtractionError{Key: key, Err: errors.Errorf("extractor panic: %v", r)}
			logger.Ef(ctx, "cache extract key=%v panic=%v", key, r)
			c.failures.Add(1)
		}
	}()

	logger.Tf(ctx, "cache extract start key=%v", key)

	samples, duration, xerr := c.ex.Extract(ctx, key)
	if xerr != nil {
		logger.Wf(ctx, "cache extract failed key=%v, cost=%v, err %+v", key, time.Since(start), xerr)
		c.failures.Add(1)
		return Entry{}, &ExtractionError{Key: key, Err: xerr}
	}

	e = Entry{Key: key, Samples: samples, Duration: duration}
	if c.store.Add(key, e) {
		c.evictions.Add(1)
	}
	logger.Tf(ctx, "cache extract done key=%v, samples=%v, duration=%v, cost=%v",
		key, len(samples), duration, time.Since(start))

	// Counted last so a flight seen in Stats has finished logging.
	c.extractions.Add(1)

	return e, nil
}

// Contains reports whether key is stored, without touching its recency.
func (c *SampleCache) Contains(key string) bool {
	key, err := NormalizeKey(key)
	if err != nil {
		return false
	}
	return c.store.Contains(key)
}

// Remove drops key from the store. An in-flight extraction for key is not
// affected and will store its result when done.
func (c *SampleCache) Remove(key string) bool {
	key, err := NormalizeKey(key)
	if err != nil {
		return false
	}
	return c.store.Remove(key)
}

// Purge drops every stored entry.
func (c *SampleCache) Purge() { c.store.Purge() }

// Len is the number of stored entries.
func (c *SampleCache) Len() int { return c.store.Len() }

func (c *SampleCache) Capacity() int { return c.capacity }

func (c *SampleCache) Stats() Stats {
	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Shared:      c.shared.Load(),
		Extractions: c.extractions.Load(),
		Failures:    c.failures.Load(),
		Evictions:   c.evictions.Load(),
	}
}
