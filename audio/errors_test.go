// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrInvalidDstSize, ErrUnknownFormat, ErrInvalidChannel, ErrInvalidRate}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want distinct sentinels", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("channel 3 of 2: %w", ErrInvalidChannel)
	if !errors.Is(wrapped, ErrInvalidChannel) {
		t.Error("errors.Is() failed for wrapped ErrInvalidChannel")
	}

	if ErrInvalidDstSize.Error() != "dst size must be multiple of channels" {
		t.Errorf("ErrInvalidDstSize.Error() = %q", ErrInvalidDstSize.Error())
	}
}
