// SPDX-License-Identifier: EPL-2.0

// Package audio provides the plumbing between audio decoders and the
// waveform renderers.
//
// This package contains:
//   - Source interface for decoded PCM streams
//   - Decoder interface and a Registry keyed by file extension
//   - MonoMixer for collapsing channels into one sequence
//   - ReadAll for draining a Source into float64 samples
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Every decoder under formats/ returns a Source. Samples are interleaved
// float32 values in [-1.0, 1.0], 0.0 being silence.
//
// # Channel Mixing
//
// The waveform renderers draw a single sequence, so multi-channel sources
// are averaged frame by frame:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Collecting Samples
//
// ReadAll mixes to mono and returns everything the source produces:
//
//	samples, err := audio.ReadAll(source, 4096)
//	seq := waveform.SampleSequence{Data: samples, SampleRate: float64(source.SampleRate())}
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("take.wav")
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n] first: the last samples may arrive together with io.EOF
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
