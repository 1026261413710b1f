// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

// Kind names a rendering style. It decides how many samples fit into a
// viewport and whether magnitudes are log scaled.
type Kind string

const (
	KindBars    Kind = "bars"
	KindLogBars Kind = "log_bars"
	KindDots    Kind = "dots"
	KindLine    Kind = "line"
	KindBezier  Kind = "bezier"
)

// Style carries the geometry of one rendering style in points. Fields that
// do not apply to Kind are ignored.
type Style struct {
	Kind            Kind
	BarWidth        float64
	Spacing         float64
	DotRadius       float64
	PixelsPerSample float64
	LogFloor        float32
	Strategy        Strategy
}

// DefaultStyles returns the built-in styles keyed by their Kind name.
func DefaultStyles() map[string]Style {
	return map[string]Style{
		string(KindBars):    {Kind: KindBars, BarWidth: 2, Spacing: 2, Strategy: Smooth},
		string(KindLogBars): {Kind: KindLogBars, BarWidth: 2, Spacing: 2, LogFloor: DefaultLogFloor, Strategy: Smooth},
		string(KindDots):    {Kind: KindDots, DotRadius: 2, Spacing: 2, Strategy: Linear},
		string(KindLine):    {Kind: KindLine, Strategy: Smooth},
		string(KindBezier):  {Kind: KindBezier, PixelsPerSample: 3, Strategy: None},
	}
}

// SampleCount is the number of samples that fill width points. It returns 0
// for a non-positive width or degenerate geometry.
func (s Style) SampleCount(width float64) int {
	if !(width > 0) || math.IsInf(width, 0) {
		return 0
	}

	var per float64
	switch s.Kind {
	case KindBars, KindLogBars:
		per = s.BarWidth + s.Spacing
	case KindDots:
		per = 2*s.DotRadius + s.Spacing
	case KindLine:
		per = 1
	case KindBezier:
		per = s.PixelsPerSample
	default:
		return 0
	}

	if per <= 0 {
		return 0
	}

	return int(width / per)
}

// Apply performs the style's post-resampling transform. Only log bars
// change the series.
func (s Style) Apply(series []float32) []float32 {
	if s.Kind == KindLogBars {
		return LogScale(series, s.LogFloor)
	}
	return series
}

// Validate checks that Kind is known and its geometry yields samples.
func (s Style) Validate() error {
	if s.Strategy > None {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s.Strategy))
	}

	switch s.Kind {
	case KindBars, KindLogBars:
		if s.BarWidth < 0 || s.Spacing < 0 || s.BarWidth+s.Spacing <= 0 {
			return fmt.Errorf("%w: %s needs a positive bar width plus spacing", ErrInvalidStyle, s.Kind)
		}
	case KindDots:
		if s.DotRadius < 0 || s.Spacing < 0 || 2*s.DotRadius+s.Spacing <= 0 {
			return fmt.Errorf("%w: dots need a positive diameter plus spacing", ErrInvalidStyle)
		}
	case KindLine:
	case KindBezier:
		if s.PixelsPerSample <= 0 {
			return fmt.Errorf("%w: bezier needs positive pixels per sample", ErrInvalidStyle)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStyle, s.Kind)
	}

	return nil
}
