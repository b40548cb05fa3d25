// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

// SampleSequence is a read-only view over mono samples and their rate in Hz.
//
// Renderers read Data only while they are being built and never keep a
// reference to it, so the caller may reuse or release the slice afterwards.
type SampleSequence struct {
	Data       []float64
	SampleRate float64
}

// Len returns the number of samples.
func (s SampleSequence) Len() int { return len(s.Data) }

// Duration returns the length of the sequence in seconds.
func (s SampleSequence) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}

	return float64(len(s.Data)) / s.SampleRate
}

func (s SampleSequence) validate() error {
	if !(s.SampleRate > 0) || math.IsInf(s.SampleRate, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, s.SampleRate)
	}

	return nil
}
