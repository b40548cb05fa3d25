// SPDX-License-Identifier: EPL-2.0

package voltwave

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/voltwave/audio"
	"github.com/ik5/voltwave/formats/aiff"
	"github.com/ik5/voltwave/formats/mp3"
	"github.com/ik5/voltwave/formats/vorbis"
	"github.com/ik5/voltwave/formats/wav"
	"github.com/ik5/voltwave/waveform"
)

// readBufferSize is the number of mono samples pulled per read.
const readBufferSize = 4096

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// DefaultRegistry returns the registry used by Decode and Open. It is
// shared; decoders registered on it become visible to both.
func DefaultRegistry() *audio.Registry {
	return defaultRegistry
}

// FromSource drains src into a mono SampleSequence. It does not close src.
func FromSource(src audio.Source) (waveform.SampleSequence, error) {
	if src.SampleRate() <= 0 {
		return waveform.SampleSequence{}, fmt.Errorf("%w: source reports %d Hz",
			waveform.ErrInvalidSampleRate, src.SampleRate())
	}

	data, err := audio.ReadAll(src, readBufferSize)
	if err != nil {
		return waveform.SampleSequence{}, err
	}

	return waveform.SampleSequence{
		Data:       data,
		SampleRate: float64(src.SampleRate()),
	}, nil
}

// Decode reads a whole stream of the given format ("wav", ".mp3", "OGG"...).
func Decode(r io.Reader, format string) (waveform.SampleSequence, error) {
	dec, ok := defaultRegistry.Get(format)
	if !ok {
		return waveform.SampleSequence{}, audio.UnknownFormatError(format)
	}

	return decodeWith(dec, r)
}

// Open decodes the file at path, picking the decoder from its extension.
func Open(path string) (waveform.SampleSequence, error) {
	dec, err := defaultRegistry.ForPath(path)
	if err != nil {
		return waveform.SampleSequence{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return waveform.SampleSequence{}, err
	}
	defer f.Close()

	seq, err := decodeWith(dec, f)
	if err != nil {
		return waveform.SampleSequence{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return seq, nil
}

func decodeWith(dec audio.Decoder, r io.Reader) (waveform.SampleSequence, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return waveform.SampleSequence{}, err
	}
	defer src.Close()

	return FromSource(src)
}
