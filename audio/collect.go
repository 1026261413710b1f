// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
)

// ReadAll drains src into one slice of interleaved samples.
//
// bufSize is the read chunk in samples; zero or negative uses src.BufSize().
// The chunk is rounded down to whole frames. ctx is checked between reads,
// so a long decode can be abandoned.
func ReadAll(ctx context.Context, src Source, bufSize int) ([]float32, error) {
	channels := max(src.Channels(), 1)

	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 {
		bufSize = 4096
	}
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	buf := make([]float32, bufSize)
	var out []float32
	empty := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}
}
