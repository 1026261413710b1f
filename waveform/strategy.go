// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"strings"
)

// Strategy selects the easing applied between neighbouring samples when a
// series is stretched to more points than it has.
type Strategy uint8

const (
	// Smooth eases with smoothstep, x*x*(3-2x).
	Smooth Strategy = iota
	// Cosine eases with (1-cos(x*pi))/2.
	Cosine
	// Linear interpolates without easing.
	Linear
	// Hold repeats the lower neighbour (nearest-lower step).
	Hold
	// None disables upsampling in Resample; short inputs are returned as-is.
	None
)

var strategyNames = [...]string{
	Smooth: "smooth",
	Cosine: "cosine",
	Linear: "linear",
	Hold:   "hold",
	None:   "none",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy accepts the lower-case names returned by String, ignoring
// case and surrounding space.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) MarshalText() ([]byte, error) {
	if int(s) >= len(strategyNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
	}
	return []byte(strategyNames[s]), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
