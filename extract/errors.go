// SPDX-License-Identifier: EPL-2.0

package extract

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrUnsupportedScheme = errors.New("only local files can be extracted")
	ErrNoAudio           = errors.New("file holds no audio samples")
	ErrInvalidChannel    = errors.New("unknown channel mode")
)
