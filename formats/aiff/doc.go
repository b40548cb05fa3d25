// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// Parsing is done by github.com/go-audio/aiff. Big-endian integer PCM at 16,
// 24 and 32 bits is accepted; the samples are delivered as interleaved
// float32 in [-1, 1], exactly like the wav package.
//
//	f, _ := os.Open("loop.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not FORM/AIFF
//	}
//
// Compressed AIFF-C is not supported.
package aiff
