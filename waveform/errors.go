// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrUnknownStrategy = errors.New("unknown upsample strategy")
	ErrUnknownStyle    = errors.New("unknown waveform style")
	ErrInvalidStyle    = errors.New("invalid style geometry")
)
