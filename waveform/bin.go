// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

// Bin is the amplitude envelope of one group of consecutive samples.
//
// NaN samples do not contribute. A bin whose samples are all NaN has
// Min and Max set to NaN and is drawn as background.
type Bin struct {
	Min float64
	Max float64
}

// valid reports whether b carries at least one comparable amplitude.
func (b Bin) valid() bool { return b.Min <= b.Max }

func binCount(n, size int) int {
	count := n / size
	if n%size != 0 {
		count++
	}

	return count
}

// buildBins reduces data to one Bin per size samples in a single pass. The
// returned table is the only allocation.
func buildBins(data []float64, size int) []Bin {
	bins := make([]Bin, binCount(len(data), size))

	for i := range bins {
		lo := i * size
		hi := min(lo+size, len(data))
		bins[i] = reduceSamples(data[lo:hi])
	}

	return bins
}

func reduceSamples(chunk []float64) Bin {
	b := Bin{Min: math.Inf(1), Max: math.Inf(-1)}
	seen := false

	for _, v := range chunk {
		if math.IsNaN(v) {
			continue
		}
		seen = true

		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}

	if !seen {
		return Bin{Min: math.NaN(), Max: math.NaN()}
	}

	return b
}

// mergeBins returns the min of mins and the max of maxes. NaN bins are
// skipped; if every bin is NaN the result is not valid.
func mergeBins(bins []Bin) Bin {
	m := Bin{Min: math.Inf(1), Max: math.Inf(-1)}

	for _, b := range bins {
		if b.Min < m.Min {
			m.Min = b.Min
		}
		if b.Max > m.Max {
			m.Max = b.Max
		}
	}

	return m
}

// rebin derives the table for factor*size samples per bin from a table
// built with size samples per bin.
func rebin(fine []Bin, factor int) []Bin {
	coarse := make([]Bin, binCount(len(fine), factor))

	for i := range coarse {
		lo := i * factor
		hi := min(lo+factor, len(fine))

		b := mergeBins(fine[lo:hi])
		if !b.valid() {
			b = Bin{Min: math.NaN(), Max: math.NaN()}
		}
		coarse[i] = b
	}

	return coarse
}
