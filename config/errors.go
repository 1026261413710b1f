// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrInvalidCapacity   = errors.New("cache capacity must be positive")
	ErrInvalidWorkers    = errors.New("workers must not be negative")
	ErrInvalidRate       = errors.New("analysis rate must not be negative")
	ErrInvalidBufferSize = errors.New("buffer size must not be negative")
	ErrNoStyles          = errors.New("at least one style is required")
	ErrInvalidEnv        = errors.New("invalid environment override")
)
