// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"image"
	"math"
	"slices"
)

// BinnedRenderer renders a waveform from min/max bins of a fixed size.
//
// The bin table is computed once by NewBinnedRenderer; rendering only reads
// it, so a BinnedRenderer may be used from several goroutines at once.
type BinnedRenderer struct {
	binSize    int
	bins       []Bin
	sampleRate float64
	total      int
	cfg        *Config
}

// NewBinnedRenderer bins seq into groups of binSize samples. The last group
// is shorter when len(seq.Data) is not a multiple of binSize. An empty
// sequence is valid and renders as background.
func NewBinnedRenderer(seq SampleSequence, binSize int, cfg *Config) (*BinnedRenderer, error) {
	if err := checkInputs(seq, cfg); err != nil {
		return nil, err
	}

	if binSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBinSize, binSize)
	}

	return &BinnedRenderer{
		binSize:    binSize,
		bins:       buildBins(seq.Data, binSize),
		sampleRate: seq.SampleRate,
		total:      len(seq.Data),
		cfg:        cfg,
	}, nil
}

func checkInputs(seq SampleSequence, cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}

	return seq.validate()
}

func (r *BinnedRenderer) BinSize() int        { return r.binSize }
func (r *BinnedRenderer) SampleRate() float64 { return r.sampleRate }
func (r *BinnedRenderer) SampleCount() int    { return r.total }
func (r *BinnedRenderer) Config() *Config     { return r.cfg }

// Len returns the number of bins.
func (r *BinnedRenderer) Len() int { return len(r.bins) }

// Bin returns the i-th bin. It panics if i is out of range, like a slice index.
func (r *BinnedRenderer) Bin(i int) Bin { return r.bins[i] }

// Bins returns a copy of the bin table.
func (r *BinnedRenderer) Bins() []Bin { return slices.Clone(r.bins) }

// RenderVec renders tr into a new width*height RGBA8 buffer, row-major from
// the top-left pixel. An empty range renders as background only.
func (r *BinnedRenderer) RenderVec(tr TimeRange, width, height int) ([]byte, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	dst := make([]byte, width*height*4)
	r.draw(dst, tr, width, height)

	return dst, nil
}

// RenderTo is RenderVec into a caller-owned buffer of exactly
// width*height*4 bytes. It does not allocate.
func (r *BinnedRenderer) RenderTo(dst []byte, tr TimeRange, width, height int) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}

	if len(dst) != width*height*4 {
		return fmt.Errorf("%w: got %d, want %d", ErrBufferSize, len(dst), width*height*4)
	}

	r.draw(dst, tr, width, height)

	return nil
}

// Render is RenderVec wrapped in an *image.RGBA.
func (r *BinnedRenderer) Render(tr TimeRange, width, height int) (*image.RGBA, error) {
	pix, err := r.RenderVec(tr, width, height)
	if err != nil {
		return nil, err
	}

	return wrapRGBA(pix, width, height), nil
}

func wrapRGBA(pix []byte, width, height int) *image.RGBA {
	return &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

func checkDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrDimension, width, height)
	}

	if width > math.MaxInt/4/height {
		return fmt.Errorf("%w: %dx%d overflows", ErrDimension, width, height)
	}

	return nil
}

func (r *BinnedRenderer) draw(dst []byte, tr TimeRange, width, height int) {
	fill(dst, r.cfg.bg)

	start, end := Resolve(tr, r.sampleRate, r.total)
	if start == end {
		return
	}

	first := start / r.binSize
	span := binCount(end, r.binSize) - first
	cols := newColumnWalker(first, span, width)

	for x := range width {
		lo, hi := cols.next()

		var col Bin
		if hi > lo {
			col = mergeBins(r.bins[lo:hi])
		} else {
			col = r.bins[first+nearestBin(x, span, width)]
		}

		if !col.valid() {
			continue
		}

		top := r.cfg.row(col.Max, height)
		bottom := r.cfg.row(col.Min, height)

		for y := top; y <= bottom; y++ {
			off := (y*width + x) * 4
			copy(dst[off:off+4], r.cfg.fg[:])
		}
	}
}

// columnWalker hands out the bin range of each column in turn. Column x
// covers [first+floor(x*span/width), first+floor((x+1)*span/width)); the
// remainder is carried in an error term so the columns cover span exactly.
type columnWalker struct {
	lo    int
	step  int
	rem   int
	acc   int
	width int
}

func newColumnWalker(first, span, width int) columnWalker {
	return columnWalker{
		lo:    first,
		step:  span / width,
		rem:   span % width,
		width: width,
	}
}

func (w *columnWalker) next() (lo, hi int) {
	lo = w.lo
	hi = lo + w.step

	w.acc += w.rem
	if w.acc >= w.width {
		w.acc -= w.width
		hi++
	}
	w.lo = hi

	return lo, hi
}

// nearestBin returns the offset of the bin under the centre of column x
// when the span has fewer bins than there are columns.
func nearestBin(x, span, width int) int {
	return min((2*x+1)*span/(2*width), span-1)
}

// row maps an amplitude to a pixel row: AmplitudeMax to 0 and AmplitudeMin
// to height-1, rounded to the nearest row and clipped to the image.
func (c *Config) row(a float64, height int) int {
	if height == 1 {
		return 0
	}

	y := math.Round((c.ampMax - a) / (c.ampMax - c.ampMin) * float64(height-1))

	switch {
	case y <= 0:
		return 0
	case y >= float64(height-1):
		return height - 1
	}

	return int(y)
}

func fill(dst []byte, px [4]uint8) {
	if len(dst) < 4 {
		return
	}

	copy(dst, px[:])
	for n := 4; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}
