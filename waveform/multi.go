// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"image"
	"slices"
)

// MultiRenderer holds one BinnedRenderer per bin size and picks one per
// render call based on how many samples a single column represents.
type MultiRenderer struct {
	renderers []*BinnedRenderer // ascending by bin size
}

// NewMultiRenderer builds a BinnedRenderer for every size in binSizes. The
// order of binSizes does not matter; sizes must be unique and at least 1.
//
// When a size is a multiple of a smaller one, its bins are merged from the
// smaller table instead of rescanning the samples. The result is identical.
func NewMultiRenderer(seq SampleSequence, binSizes []int, cfg *Config) (*MultiRenderer, error) {
	if err := checkInputs(seq, cfg); err != nil {
		return nil, err
	}

	if len(binSizes) == 0 {
		return nil, fmt.Errorf("%w: no bin sizes", ErrInvalidBinSize)
	}

	sizes := slices.Clone(binSizes)
	slices.Sort(sizes)

	for i, size := range sizes {
		if size < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidBinSize, size)
		}
		if i > 0 && sizes[i-1] == size {
			return nil, fmt.Errorf("%w: %w: %d", ErrInvalidBinSize, ErrDuplicateBinSize, size)
		}
	}

	m := &MultiRenderer{renderers: make([]*BinnedRenderer, 0, len(sizes))}

	for _, size := range sizes {
		if base := m.divisor(size); base != nil {
			m.renderers = append(m.renderers, &BinnedRenderer{
				binSize:    size,
				bins:       rebin(base.bins, size/base.binSize),
				sampleRate: seq.SampleRate,
				total:      len(seq.Data),
				cfg:        cfg,
			})

			continue
		}

		r, err := NewBinnedRenderer(seq, size, cfg)
		if err != nil {
			return nil, err
		}
		m.renderers = append(m.renderers, r)
	}

	return m, nil
}

// divisor returns the largest already built renderer whose bin size divides size.
func (m *MultiRenderer) divisor(size int) *BinnedRenderer {
	for i := len(m.renderers) - 1; i >= 0; i-- {
		if size%m.renderers[i].binSize == 0 {
			return m.renderers[i]
		}
	}

	return nil
}

// BinSizes returns the configured bin sizes in ascending order.
func (m *MultiRenderer) BinSizes() []int {
	sizes := make([]int, len(m.renderers))
	for i, r := range m.renderers {
		sizes[i] = r.binSize
	}

	return sizes
}

// Renderers returns the renderers in ascending bin size order.
func (m *MultiRenderer) Renderers() []*BinnedRenderer {
	return slices.Clone(m.renderers)
}

// Select returns the renderer with the largest bin size not above
// samplesPerPixel, or the smallest bin size if none qualifies.
func (m *MultiRenderer) Select(samplesPerPixel float64) *BinnedRenderer {
	for i := len(m.renderers) - 1; i >= 0; i-- {
		if float64(m.renderers[i].binSize) <= samplesPerPixel {
			return m.renderers[i]
		}
	}

	return m.renderers[0]
}

// SelectFor resolves tr against the full sequence and selects the renderer
// for drawing it width columns wide.
func (m *MultiRenderer) SelectFor(tr TimeRange, width int) (*BinnedRenderer, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: width %d", ErrDimension, width)
	}

	base := m.renderers[0]
	start, end := Resolve(tr, base.sampleRate, base.total)

	return m.Select(float64(end-start) / float64(width)), nil
}

// RenderVec renders tr with the renderer chosen by SelectFor.
func (m *MultiRenderer) RenderVec(tr TimeRange, width, height int) ([]byte, error) {
	r, err := m.pick(tr, width, height)
	if err != nil {
		return nil, err
	}

	return r.RenderVec(tr, width, height)
}

// RenderTo renders into dst with the renderer chosen by SelectFor.
func (m *MultiRenderer) RenderTo(dst []byte, tr TimeRange, width, height int) error {
	r, err := m.pick(tr, width, height)
	if err != nil {
		return err
	}

	return r.RenderTo(dst, tr, width, height)
}

// Render is RenderVec wrapped in an *image.RGBA.
func (m *MultiRenderer) Render(tr TimeRange, width, height int) (*image.RGBA, error) {
	r, err := m.pick(tr, width, height)
	if err != nil {
		return nil, err
	}

	return r.Render(tr, width, height)
}

func (m *MultiRenderer) pick(tr TimeRange, width, height int) (*BinnedRenderer, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	return m.SelectFor(tr, width)
}
