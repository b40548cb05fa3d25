// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

// Config holds the validated rendering parameters shared by renderers.
// A *Config obtained from NewConfig is always valid and never changes.
type Config struct {
	ampMin float64
	ampMax float64
	fg     [4]uint8
	bg     [4]uint8

	fgColor Color
	bgColor Color
}

// NewConfig validates and returns a rendering config.
//
// ampMin and ampMax bound the displayed amplitude: ampMax is drawn on the top
// row and ampMin on the bottom row. Samples outside the range are clipped.
func NewConfig(ampMin, ampMax float64, fg, bg Color) (*Config, error) {
	// Written as !(a < b) so NaN on either side is rejected. The width of the
	// range must also be finite for the row mapping to be linear.
	if !(ampMin < ampMax) || math.IsInf(ampMax-ampMin, 0) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidAmplitudeRange, ampMin, ampMax)
	}

	if fg == nil {
		return nil, fmt.Errorf("%w: foreground is nil", ErrInvalidColor)
	}
	if bg == nil {
		return nil, fmt.Errorf("%w: background is nil", ErrInvalidColor)
	}

	return &Config{
		ampMin:  ampMin,
		ampMax:  ampMax,
		fg:      fg.RGBA8(),
		bg:      bg.RGBA8(),
		fgColor: fg,
		bgColor: bg,
	}, nil
}

func (c *Config) AmplitudeMin() float64 { return c.ampMin }
func (c *Config) AmplitudeMax() float64 { return c.ampMax }
func (c *Config) Foreground() Color     { return c.fgColor }
func (c *Config) Background() Color     { return c.bgColor }
