// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	// ErrInvalidAmplitudeRange is returned when the display range is not a
	// finite interval with min < max.
	ErrInvalidAmplitudeRange = errors.New("amplitude min must be less than amplitude max")

	// ErrInvalidColor is returned for a nil or malformed color.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidBinSize is returned for a bin size below 1, an empty bin size
	// list or a repeated size (together with ErrDuplicateBinSize).
	ErrInvalidBinSize = errors.New("invalid bin size")

	// ErrDuplicateBinSize is returned when a bin size is listed twice.
	ErrDuplicateBinSize = errors.New("duplicate bin size")

	// ErrInvalidSampleRate is returned when the sample rate is not a positive finite number.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrNilConfig is returned when a renderer is built without a config.
	ErrNilConfig = errors.New("config is nil")

	// ErrDimension is returned when width or height is below 1.
	ErrDimension = errors.New("width and height must be at least 1")

	// ErrBufferSize is returned when a destination buffer is not width*height*4 bytes.
	ErrBufferSize = errors.New("dst size must be width*height*4")
)
