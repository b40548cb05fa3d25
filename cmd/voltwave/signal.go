// SPDX-License-Identifier: EPL-2.0

package main

import (
	"math"

	"github.com/ik5/voltwave/waveform"
)

const (
	testSignalRate     = 44100
	testSignalSeconds  = 4
	testSignalTone     = 220.0
	testSignalSwellsHz = 0.75
)

// testSignal is a tone whose loudness swells and fades, with a short
// silence at each end.
func testSignal() waveform.SampleSequence {
	n := testSignalRate * testSignalSeconds
	data := make([]float64, n)
	edge := testSignalRate / 4

	for i := edge; i < n-edge; i++ {
		t := float64(i) / testSignalRate
		env := 0.15 + 0.75*math.Abs(math.Sin(math.Pi*testSignalSwellsHz*t))
		data[i] = env * math.Sin(2*math.Pi*testSignalTone*t)
	}

	return waveform.SampleSequence{Data: data, SampleRate: testSignalRate}
}
