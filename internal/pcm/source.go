// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM decoders (WAV, AIFF) to audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/voltwave/audio"
)

var (
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
	ErrInvalidFormat       = errors.New("invalid PCM format")
)

// Reader is the part of the go-audio wav and aiff decoders used by Source.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads signed integer PCM from a go-audio decoder as float32 in [-1, 1].
type Source struct {
	dec    Reader
	format *goaudio.Format
	scale  float32
	buf    *goaudio.IntBuffer
	eof    bool
}

var _ audio.Source = (*Source)(nil)

// NewSource wraps dec. Only 16, 24 and 32 bit signed PCM is supported.
func NewSource(dec Reader, format *goaudio.Format, bitDepth int) (*Source, error) {
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrInvalidFormat
	}

	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &Source{
		dec:    dec,
		format: format,
		scale:  1 / float32(int64(1)<<(bitDepth-1)),
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 4096),
			SourceBitDepth: bitDepth,
		},
	}, nil
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	switch {
	case n > 0 && err == nil:
		return n, nil
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// go-audio signals the end of the data chunk with an empty read.
		s.eof = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	default:
		return n, fmt.Errorf("reading PCM data: %w", err)
	}
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it is
// not one already. The go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
