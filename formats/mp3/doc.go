// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits 16-bit stereo, so every source from this package
// reports two channels (mono files are duplicated into both). Samples come
// out as interleaved float32 in [-1, 1].
//
//	f, _ := os.Open("episode.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
package mp3
