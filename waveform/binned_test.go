// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t testing.TB) *Config {
	t.Helper()

	cfg, err := NewConfig(-1, 1, black, white)
	require.NoError(t, err)

	return cfg
}

// demoSamples is a 100 Hz tone under a 4.41 Hz envelope, one second at 44.1 kHz.
func demoSamples() []float64 {
	data := make([]float64, 44100)
	for i := range data {
		t := float64(i)
		data[i] = math.Sin(t/100*2*math.Pi) * math.Sin(t/10000*2*math.Pi)
	}

	return data
}

func pixelAt(pix []byte, width, x, y int) [4]uint8 {
	off := (y*width + x) * 4
	return [4]uint8{pix[off], pix[off+1], pix[off+2], pix[off+3]}
}

// columnRows returns the rows of column x painted with px.
func columnRows(pix []byte, width, height, x int, px [4]uint8) []int {
	var rows []int
	for y := range height {
		if pixelAt(pix, width, x, y) == px {
			rows = append(rows, y)
		}
	}

	return rows
}

func requireAll(t *testing.T, pix []byte, px [4]uint8) {
	t.Helper()

	for i := 0; i < len(pix); i += 4 {
		if [4]uint8{pix[i], pix[i+1], pix[i+2], pix[i+3]} != px {
			t.Fatalf("pixel %d = %v, want %v", i/4, pix[i:i+4], px)
		}
	}
}

func TestNewBinnedRenderer(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	seq := SampleSequence{Data: randomSamples(1001, 3), SampleRate: 8000}

	r, err := NewBinnedRenderer(seq, 10, cfg)
	require.NoError(t, err)

	assert.Equal(t, 10, r.BinSize())
	assert.Equal(t, 101, r.Len())
	assert.Equal(t, 1001, r.SampleCount())
	assert.Equal(t, 8000.0, r.SampleRate())
	assert.Same(t, cfg, r.Config())
	assert.Equal(t, r.Bin(100), r.Bins()[100])
}

func TestNewBinnedRenderer_Errors(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	seq := SampleSequence{Data: []float64{0, 1}, SampleRate: 100}

	tests := []struct {
		name    string
		seq     SampleSequence
		binSize int
		cfg     *Config
		wantErr error
	}{
		{name: "zero bin size", seq: seq, binSize: 0, cfg: cfg, wantErr: ErrInvalidBinSize},
		{name: "negative bin size", seq: seq, binSize: -3, cfg: cfg, wantErr: ErrInvalidBinSize},
		{name: "nil config", seq: seq, binSize: 1, cfg: nil, wantErr: ErrNilConfig},
		{name: "zero rate", seq: SampleSequence{Data: seq.Data}, binSize: 1, cfg: cfg, wantErr: ErrInvalidSampleRate},
		{name: "NaN rate", seq: SampleSequence{Data: seq.Data, SampleRate: math.NaN()}, binSize: 1, cfg: cfg, wantErr: ErrInvalidSampleRate},
		{name: "infinite rate", seq: SampleSequence{SampleRate: math.Inf(1)}, binSize: 1, cfg: cfg, wantErr: ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewBinnedRenderer(tt.seq, tt.binSize, tt.cfg)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, r)
		})
	}
}

func TestNewBinnedRenderer_DoesNotRetainSamples(t *testing.T) {
	t.Parallel()

	data := []float64{0.5, -0.5, 0.25, -0.25}
	r, err := NewBinnedRenderer(SampleSequence{Data: data, SampleRate: 4}, 2, testConfig(t))
	require.NoError(t, err)

	for i := range data {
		data[i] = 0
	}

	assert.Equal(t, Bin{Min: -0.5, Max: 0.5}, r.Bin(0))
	assert.Equal(t, Bin{Min: -0.25, Max: 0.25}, r.Bin(1))
}

func TestBinnedRenderer_RenderVec_DemoSignal(t *testing.T) {
	t.Parallel()

	seq := SampleSequence{Data: demoSamples(), SampleRate: 44100}
	r, err := NewBinnedRenderer(seq, 10, testConfig(t))
	require.NoError(t, err)

	pix, err := r.RenderVec(Seconds{Start: 0, End: 1}, 800, 100)
	require.NoError(t, err)
	require.Len(t, pix, 320000)

	// At 80 columns every column spans whole carrier periods; column 22
	// holds the envelope peak near sample 12500 and reaches both edges.
	wide, err := r.RenderVec(Seconds{Start: 0, End: 1}, 80, 100)
	require.NoError(t, err)

	rows := columnRows(wide, 80, 100, 22, black.RGBA8())
	require.NotEmpty(t, rows)
	assert.Equal(t, 0, rows[0])
	assert.Equal(t, 99, rows[len(rows)-1])

	// Every painted column is one contiguous run.
	for x := range 800 {
		rows := columnRows(pix, 800, 100, x, black.RGBA8())
		for i := 1; i < len(rows); i++ {
			require.Equal(t, rows[i-1]+1, rows[i], "column %d has a gap", x)
		}
	}
}

func TestBinnedRenderer_RenderVec_Silence(t *testing.T) {
	t.Parallel()

	// 44100 samples, silence except for a burst in the second quarter.
	data := make([]float64, 44100)
	for i := 11025; i < 22050; i++ {
		data[i] = 0.5
		if i%2 == 1 {
			data[i] = -0.5
		}
	}

	r, err := NewBinnedRenderer(SampleSequence{Data: data, SampleRate: 44100}, 10, testConfig(t))
	require.NoError(t, err)

	pix, err := r.RenderVec(Seconds{Start: 0, End: 1}, 800, 100)
	require.NoError(t, err)
	require.Len(t, pix, 320000)

	// Amplitude 0 of [-1, 1] over 100 rows is row round(49.5) = 50.
	zeroRow := r.Config().row(0, 100)
	require.Equal(t, 50, zeroRow)

	for _, x := range []int{0, 1, 100, 199, 400, 799} {
		assert.Equal(t, []int{zeroRow}, columnRows(pix, 800, 100, x, black.RGBA8()), "column %d", x)
		assert.Len(t, columnRows(pix, 800, 100, x, white.RGBA8()), 99, "column %d", x)
	}

	// Burst columns span amplitude -0.5..0.5.
	want := []int{}
	for y := r.Config().row(0.5, 100); y <= r.Config().row(-0.5, 100); y++ {
		want = append(want, y)
	}
	assert.Equal(t, want, columnRows(pix, 800, 100, 300, black.RGBA8()))
}

func TestBinnedRenderer_RoundTripSingleSampleBins(t *testing.T) {
	t.Parallel()

	data := []float64{0, 0.5, -0.5, 1, -1, 0.25, -0.75, 0.1, 2, -3}
	const height = 201

	r, err := NewBinnedRenderer(SampleSequence{Data: data, SampleRate: 10}, 1, testConfig(t))
	require.NoError(t, err)

	pix, err := r.RenderVec(Samples{Start: 0, End: len(data)}, len(data), height)
	require.NoError(t, err)

	for x, s := range data {
		clamped := min(max(s, -1), 1)
		want := int(math.Round((1 - clamped) / 2 * (height - 1)))

		assert.Equal(t, []int{want}, columnRows(pix, len(data), height, x, black.RGBA8()), "sample %d = %v", x, s)
	}
}

func TestBinnedRenderer_EmptySequence(t *testing.T) {
	t.Parallel()

	r, err := NewBinnedRenderer(SampleSequence{SampleRate: 44100}, 10, testConfig(t))
	require.NoError(t, err)
	assert.Zero(t, r.Len())

	for _, tr := range []TimeRange{nil, Seconds{Start: 0, End: 1}, Samples{Start: 0, End: 100}} {
		pix, err := r.RenderVec(tr, 16, 8)
		require.NoError(t, err)
		require.Len(t, pix, 16*8*4)
		requireAll(t, pix, white.RGBA8())
	}
}

func TestBinnedRenderer_DegenerateRanges(t *testing.T) {
	t.Parallel()

	r, err := NewBinnedRenderer(SampleSequence{Data: randomSamples(1000, 5), SampleRate: 100}, 4, testConfig(t))
	require.NoError(t, err)

	for _, tr := range []TimeRange{
		Samples{Start: 500, End: 500},
		Samples{Start: 800, End: 100},
		Samples{Start: 2000, End: 3000},
		Seconds{Start: 5, End: 1},
		Seconds{Start: math.NaN(), End: math.NaN()},
	} {
		pix, err := r.RenderVec(tr, 7, 3)
		require.NoError(t, err, "range %#v", tr)
		require.Len(t, pix, 7*3*4)
		requireAll(t, pix, white.RGBA8())
	}
}

func TestBinnedRenderer_NaNBinsRenderBackground(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	data := []float64{nan, nan, 0.5, 0.5}

	r, err := NewBinnedRenderer(SampleSequence{Data: data, SampleRate: 4}, 2, testConfig(t))
	require.NoError(t, err)

	pix, err := r.RenderVec(nil, 2, 5)
	require.NoError(t, err)

	assert.Empty(t, columnRows(pix, 2, 5, 0, black.RGBA8()))
	assert.Equal(t, []int{1}, columnRows(pix, 2, 5, 1, black.RGBA8()))
}

func TestBinnedRenderer_ZoomedInUsesNearestBin(t *testing.T) {
	t.Parallel()

	// Two bins: low then high. Rendering them across 8 columns puts the
	// first bin under the left half and the second under the right half.
	data := []float64{-1, -1, -1, -1, 1, 1, 1, 1}
	r, err := NewBinnedRenderer(SampleSequence{Data: data, SampleRate: 8}, 4, testConfig(t))
	require.NoError(t, err)

	pix, err := r.RenderVec(nil, 8, 3)
	require.NoError(t, err)

	for x := range 8 {
		want := []int{2}
		if x >= 4 {
			want = []int{0}
		}
		assert.Equal(t, want, columnRows(pix, 8, 3, x, black.RGBA8()), "column %d", x)
	}
}

func TestBinnedRenderer_HeightOne(t *testing.T) {
	t.Parallel()

	r, err := NewBinnedRenderer(SampleSequence{Data: []float64{math.Inf(1), math.Inf(-1)}, SampleRate: 2}, 1, testConfig(t))
	require.NoError(t, err)

	pix, err := r.RenderVec(nil, 2, 1)
	require.NoError(t, err)
	requireAll(t, pix, black.RGBA8())
}

func TestBinnedRenderer_DimensionErrors(t *testing.T) {
	t.Parallel()

	r, err := NewBinnedRenderer(SampleSequence{Data: []float64{0}, SampleRate: 1}, 1, testConfig(t))
	require.NoError(t, err)

	for _, dim := range [][2]int{{0, 10}, {10, 0}, {0, 0}, {-1, 5}, {math.MaxInt, 2}} {
		pix, err := r.RenderVec(nil, dim[0], dim[1])
		assert.ErrorIs(t, err, ErrDimension, "dims %v", dim)
		assert.Nil(t, pix)

		img, err := r.Render(nil, dim[0], dim[1])
		assert.ErrorIs(t, err, ErrDimension, "dims %v", dim)
		assert.Nil(t, img)
	}
}

func TestBinnedRenderer_RenderTo(t *testing.T) {
	t.Parallel()

	r, err := NewBinnedRenderer(SampleSequence{Data: demoSamples(), SampleRate: 44100}, 10, testConfig(t))
	require.NoError(t, err)

	want, err := r.RenderVec(Seconds{Start: 0.25, End: 0.5}, 64, 32)
	require.NoError(t, err)

	dst := make([]byte, 64*32*4)
	for i := range dst {
		dst[i] = 0x7f
	}
	require.NoError(t, r.RenderTo(dst, Seconds{Start: 0.25, End: 0.5}, 64, 32))
	assert.Equal(t, want, dst)

	err = r.RenderTo(make([]byte, 10), nil, 64, 32)
	assert.ErrorIs(t, err, ErrBufferSize)
}

func TestBinnedRenderer_Render(t *testing.T) {
	t.Parallel()

	r, err := NewBinnedRenderer(SampleSequence{Data: demoSamples(), SampleRate: 44100}, 100, testConfig(t))
	require.NoError(t, err)

	img, err := r.Render(nil, 40, 20)
	require.NoError(t, err)

	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
	assert.Equal(t, 160, img.Stride)

	pix, err := r.RenderVec(nil, 40, 20)
	require.NoError(t, err)
	assert.Equal(t, pix, img.Pix)
}

func TestColumnWalker_CoversSpanExactly(t *testing.T) {
	t.Parallel()

	for _, span := range []int{1, 2, 7, 99, 100, 101, 4410, 12345} {
		for _, width := range []int{1, 3, 7, 100, 800, 1000} {
			w := newColumnWalker(5, span, width)

			prev := 5
			covered := 0
			for x := range width {
				lo, hi := w.next()
				require.Equal(t, prev, lo, "span=%d width=%d x=%d", span, width, x)
				require.GreaterOrEqual(t, hi, lo)
				require.Equal(t, 5+(x+1)*span/width, hi, "span=%d width=%d x=%d", span, width, x)

				covered += hi - lo
				prev = hi
			}

			assert.Equal(t, span, covered, "span=%d width=%d", span, width)
		}
	}
}

func TestNearestBin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, []int{
		nearestBin(0, 3, 6), nearestBin(1, 3, 6), nearestBin(2, 3, 6),
		nearestBin(3, 3, 6), nearestBin(4, 3, 6), nearestBin(5, 3, 6),
	})
	assert.Equal(t, 0, nearestBin(0, 1, 1000))
	assert.Equal(t, 0, nearestBin(999, 1, 1000))
}

func TestBinnedRenderer_RenderTo_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	r, err := NewBinnedRenderer(SampleSequence{Data: demoSamples(), SampleRate: 44100}, 10, testConfig(t))
	require.NoError(t, err)

	dst := make([]byte, 800*100*4)
	var tr TimeRange = Seconds{Start: 0, End: 1}

	allocs := testing.AllocsPerRun(100, func() {
		_ = r.RenderTo(dst, tr, 800, 100)
	})

	if allocs > 0 {
		t.Errorf("RenderTo allocated %v times, want 0", allocs)
	}
}
