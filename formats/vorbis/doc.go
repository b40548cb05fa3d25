// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// The decoder already produces float32, so samples are passed through
// untouched, interleaved, with the channel count of the stream. ReadSamples
// only fills whole frames: a buffer shorter than one frame is rejected with
// io.ErrShortBuffer.
package vorbis
