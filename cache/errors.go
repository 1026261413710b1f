// SPDX-License-Identifier: EPL-2.0

package cache

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey        = errors.New("cache key is empty")
	ErrInvalidCapacity = errors.New("cache capacity must be positive")
	ErrNilExtractor    = errors.New("cache needs an extractor")
)

// ExtractionError reports a failed extraction for Key. Failures are never
// cached, so the next request for Key extracts again.
type ExtractionError struct {
	Key string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %q: %v", e.Key, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Cause lets github.com/ossrs/go-oryx-lib/errors.Cause reach the extractor's
// error.
func (e *ExtractionError) Cause() error { return e.Err }
