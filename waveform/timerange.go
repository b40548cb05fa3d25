// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

// TimeRange selects the visible part of a sample sequence.
//
// The variants are Samples and Seconds. A nil TimeRange selects the whole
// sequence.
type TimeRange interface {
	isTimeRange()
}

// Samples is a half-open range of sample indices [Start, End).
type Samples struct {
	Start, End int
}

// Seconds is a half-open range of times [Start, End) in seconds.
type Seconds struct {
	Start, End float64
}

func (Samples) isTimeRange() {}
func (Seconds) isTimeRange() {}

// Resolve converts tr to absolute sample indices for a sequence of total
// samples at sampleRate Hz.
//
// Seconds are converted with floor(seconds * sampleRate). Both bounds are
// clamped into [0, total]; NaN resolves to 0. When the clamped start lies
// after the clamped end the range is empty and end == start is returned, so
// the result always satisfies 0 <= start <= end <= total.
func Resolve(tr TimeRange, sampleRate float64, total int) (start, end int) {
	total = max(total, 0)

	switch r := tr.(type) {
	case Samples:
		start = clampIndex(r.Start, total)
		end = clampIndex(r.End, total)
	case Seconds:
		start = secondsToIndex(r.Start, sampleRate, total)
		end = secondsToIndex(r.End, sampleRate, total)
	default:
		return 0, total
	}

	if start > end {
		end = start
	}

	return start, end
}

func clampIndex(i, total int) int {
	return min(max(i, 0), total)
}

// secondsToIndex clamps in float space before converting, because converting
// NaN or out-of-range floats to int is implementation defined.
func secondsToIndex(sec, sampleRate float64, total int) int {
	x := math.Floor(sec * sampleRate)

	switch {
	case math.IsNaN(x), x <= 0:
		return 0
	case x >= float64(total):
		return total
	}

	return int(x)
}
