// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a pixel color used by the renderer.
//
// The set of variants is closed; Vector4 is currently the only one. Callers
// that switch on the concrete type should keep a default branch.
type Color interface {
	// RGBA8 returns the color as straight (non-premultiplied) R, G, B, A bytes.
	RGBA8() [4]uint8

	isColor()
}

// Vector4 is an explicit R, G, B, A color with 8 bits per channel.
type Vector4 struct {
	R, G, B, A uint8
}

func (v Vector4) RGBA8() [4]uint8 { return [4]uint8{v.R, v.G, v.B, v.A} }

func (Vector4) isColor() {}

// RGBA implements image/color.Color.
func (v Vector4) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: v.R, G: v.G, B: v.B, A: v.A}.RGBA()
}

const hexDigits = "0123456789abcdefABCDEF"

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Colors without an
// alpha component are opaque.
func ParseHexColor(s string) (Vector4, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	if strings.Trim(s[1:], hexDigits) != "" {
		return Vector4{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	switch len(s) {
	case 9:
		raw, err := hex.DecodeString(s[1:])
		if err != nil {
			return Vector4{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}

		return Vector4{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}, nil
	case 4, 7:
	default:
		return Vector4{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Vector4{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	r, g, b := c.RGB255()

	return Vector4{R: r, G: g, B: b, A: 255}, nil
}
