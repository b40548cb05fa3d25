// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src, downmixes it to mono and returns the samples as
// float64, the type the waveform renderers consume.
//
// bufferSize is the number of mono samples read per call (4096 is a good
// default). src is read until io.EOF; it is not closed.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	defer src.Close()
//	samples, err := audio.ReadAll(src, 4096)
//	seq := waveform.SampleSequence{Data: samples, SampleRate: float64(src.SampleRate())}
func ReadAll(src Source, bufferSize int) ([]float64, error) {
	if bufferSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBufferSize, bufferSize)
	}

	const maxEmptyReads = 100

	mono := NewMonoMixer(src)
	buf := make([]float32, bufferSize)

	// Start with about two seconds and let append double from there.
	out := make([]float64, 0, max(src.SampleRate()*2, bufferSize))
	empty := 0

	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, float64(v))
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			return nil, fmt.Errorf("reading samples: %w", io.ErrNoProgress)
		}
	}
}
