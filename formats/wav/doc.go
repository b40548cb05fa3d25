// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files into an audio.Source.
//
// Parsing is done by github.com/go-audio/wav. Integer PCM at 16, 24 and 32
// bits is accepted, with any channel count and sample rate. Samples come out
// interleaved as float32 in [-1, 1].
//
//	f, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// Inputs that cannot seek are buffered in memory first.
package wav
