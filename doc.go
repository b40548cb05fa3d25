// SPDX-License-Identifier: EPL-2.0

// Package voltwave turns audio files into waveform images.
//
// The rendering itself lives in the waveform subpackage, which works on an
// in-memory waveform.SampleSequence and knows nothing about files. This
// package is the glue: it decodes a file with one of the formats
// subpackages, folds every channel into one mono stream and hands back a
// SampleSequence ready for a renderer.
//
// # Supported Formats
//
//   - WAV (.wav, .wave), integer PCM 16/24/32-bit, via formats/wav
//   - AIFF (.aiff, .aif), integer PCM 16/24/32-bit, via formats/aiff
//   - MP3 (.mp3) via formats/mp3
//   - Ogg Vorbis (.ogg) via formats/vorbis
//
// # Quick Start
//
//	seq, err := voltwave.Open("speech.wav")
//	if err != nil {
//	    return err
//	}
//
//	cfg, _ := waveform.NewConfig(-1, 1,
//	    waveform.Vector4{R: 30, G: 144, B: 255, A: 255},
//	    waveform.Vector4{A: 255})
//
//	mr, err := waveform.NewMultiRenderer(seq, []int{16, 256, 4096}, cfg)
//	if err != nil {
//	    return err
//	}
//
//	img, err := mr.Render(waveform.Seconds{Start: 0, End: 10}, 1200, 200)
//
// # Custom Formats
//
// Decode and Open look decoders up in DefaultRegistry. To plug in another
// format, build a registry with audio.NewRegistry, register an audio.Decoder
// for it and call FromSource on what it returns.
package voltwave
