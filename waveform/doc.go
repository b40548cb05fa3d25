// SPDX-License-Identifier: EPL-2.0

// Package waveform renders min/max amplitude envelopes of audio samples into
// RGBA8 pixel buffers, at one or several precomputed resolutions.
//
// # Binning
//
// A BinnedRenderer splits a SampleSequence into consecutive bins of a fixed
// number of samples and keeps only the minimum and maximum amplitude of each
// bin. The raw samples are scanned once, at construction; rendering reads the
// bin table only, so its cost depends on the image size and on the number of
// visible bins, not on the number of samples.
//
//	seq := waveform.SampleSequence{Data: samples, SampleRate: 44100}
//	cfg, _ := waveform.NewConfig(-1, 1,
//	    waveform.Vector4{A: 255},
//	    waveform.Vector4{R: 255, G: 255, B: 255, A: 255})
//	r, _ := waveform.NewBinnedRenderer(seq, 10, cfg)
//	pix, _ := r.RenderVec(waveform.Seconds{Start: 0, End: 1}, 800, 100)
//
// # Multiple Resolutions
//
// A MultiRenderer owns one BinnedRenderer per bin size. On every call it
// computes how many samples one pixel column represents and uses the largest
// bin size that does not exceed it, falling back to the smallest bin size
// when zoomed in further than that:
//
//	m, _ := waveform.NewMultiRenderer(seq, []int{10, 100, 1000}, cfg)
//	pix, _ := m.RenderVec(waveform.Seconds{Start: 0, End: 1}, 800, 100)
//
// # Time Ranges
//
// The visible window is either Samples (indices) or Seconds. Seconds are
// converted with floor(seconds * sample rate). Bounds are clamped into the
// sequence; a reversed or empty window is not an error and renders as
// background. A nil TimeRange selects the whole sequence.
//
// # Output Format
//
// Buffers are exactly width*height*4 bytes: R, G, B, A per pixel, rows from
// top to bottom. The configured maximum amplitude maps to row 0 and the
// minimum to the last row; amplitudes outside the range are clipped. Each
// column is filled with the foreground color between the rows of its minimum
// and maximum and with the background color elsewhere.
//
// # Errors
//
// Constructors and render calls return the sentinel errors in errors.go,
// possibly wrapped; use errors.Is to test for them. NaN samples are ignored,
// and nothing in this package logs or panics on caller input.
package waveform
