// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input has no readable FORM/COMM header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates a header go-audio parsed but could
	// not describe as a PCM format.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
