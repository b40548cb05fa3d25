// SPDX-License-Identifier: EPL-2.0

// Command voltwave renders the min/max waveform of an audio file to PNG.
//
//	voltwave -in speech.wav -out speech.png -width 1600 -height 240 -start 2 -end 12
//
// Without -in a synthetic test signal is rendered. Settings come from the
// built-in defaults, then the -config YAML file, then explicitly set flags.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/voltwave"
	"github.com/ik5/voltwave/internal/config"
	"github.com/ik5/voltwave/waveform"
)

var (
	inPath     = flag.String("in", "", "audio file to render (wav, aiff, mp3, ogg); empty renders a test signal")
	outPath    = flag.String("out", "waveform.png", "PNG file to write")
	configPath = flag.String("config", "", "YAML file with render settings")

	width     = flag.Int("width", 0, "image width in pixels (overrides config)")
	height    = flag.Int("height", 0, "image height in pixels (overrides config)")
	start     = flag.Float64("start", 0, "start of the rendered range in seconds")
	end       = flag.Float64("end", 0, "end of the rendered range in seconds; 0 renders to the end")
	bins      = flag.String("bins", "", "comma-separated bin sizes in samples (overrides config)")
	normalize = flag.Bool("normalize", false, "fit the amplitude range to the signal peak")
)

// options is everything run needs, resolved from config and flags.
type options struct {
	in, out    string
	cfg        config.Config
	start, end float64
}

func main() {
	flag.Parse()
	defer glog.Flush()

	opts, err := loadOptions()
	if err != nil {
		glog.Exitf("voltwave: %v", err)
	}

	if err := run(opts); err != nil {
		glog.Exitf("voltwave: %v", err)
	}
}

func loadOptions() (options, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return options{}, err
		}
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := applyFlags(&cfg, set); err != nil {
		return options{}, err
	}

	return options{in: *inPath, out: *outPath, cfg: cfg, start: *start, end: *end}, nil
}

// applyFlags copies the flags named in set over cfg.
func applyFlags(cfg *config.Config, set map[string]bool) error {
	if set["width"] {
		cfg.Width = *width
	}
	if set["height"] {
		cfg.Height = *height
	}
	if set["normalize"] {
		cfg.Normalize = *normalize
	}
	if set["bins"] {
		sizes, err := parseBinSizes(*bins)
		if err != nil {
			return err
		}
		cfg.BinSizes = sizes
	}

	return cfg.Validate()
}

func parseBinSizes(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))

	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("-bins: %w", err)
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}

func run(opts options) error {
	seq, err := load(opts.in)
	if err != nil {
		return err
	}
	glog.Infof("loaded %d samples at %g Hz (%.2fs)", seq.Len(), seq.SampleRate, seq.Duration())

	cfg := opts.cfg
	if cfg.Normalize {
		if peak := peakAmplitude(seq.Data); peak > 0 && !math.IsInf(peak, 0) {
			cfg.AmplitudeMin, cfg.AmplitudeMax = -peak, peak
			glog.Infof("normalized amplitude range to ±%.4f", peak)
		} else {
			glog.V(1).Infof("normalization skipped: peak amplitude %v", peak)
		}
	}

	wcfg, err := cfg.Waveform()
	if err != nil {
		return err
	}

	mr, err := waveform.NewMultiRenderer(seq, cfg.BinSizes, wcfg)
	if err != nil {
		return err
	}

	tr := timeRange(opts.start, opts.end)

	if glog.V(2) {
		r, err := mr.SelectFor(tr, cfg.Width)
		if err == nil {
			glog.Infof("bin sizes %v, rendering with %d (%d bins)", mr.BinSizes(), r.BinSize(), r.Len())
		}
	}

	img, err := mr.Render(tr, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", opts.out, err)
	}

	if err := f.Close(); err != nil {
		return err
	}

	glog.Infof("wrote %dx%d image to %s", cfg.Width, cfg.Height, opts.out)

	return nil
}

func load(path string) (waveform.SampleSequence, error) {
	if path == "" {
		return testSignal(), nil
	}

	return voltwave.Open(path)
}

// timeRange maps the -start/-end flags; a non-positive end means the end
// of the sequence.
func timeRange(start, end float64) waveform.TimeRange {
	if start <= 0 && end <= 0 {
		return nil
	}
	if end <= 0 {
		end = math.Inf(1)
	}

	return waveform.Seconds{Start: start, End: end}
}

// peakAmplitude is the largest absolute sample, or 0 when there are no
// samples. NaN samples are ignored.
func peakAmplitude(data []float64) float64 {
	if floats.HasNaN(data) {
		finite := make([]float64, 0, len(data))
		for _, v := range data {
			if !math.IsNaN(v) {
				finite = append(finite, v)
			}
		}
		data = finite
	}

	if len(data) == 0 {
		return 0
	}

	return math.Max(math.Abs(floats.Min(data)), math.Abs(floats.Max(data)))
}
