// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrUnknownFormat     = errors.New("unknown audio format")
)

// UnknownFormatError wraps ErrUnknownFormat with the offending format key.
func UnknownFormatError(format string) error {
	if format == "" {
		return fmt.Errorf("%w: no extension", ErrUnknownFormat)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
