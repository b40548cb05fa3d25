// SPDX-License-Identifier: EPL-2.0

// Package config loads the render settings of the voltwave command from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/voltwave/waveform"
)

var ErrInvalid = errors.New("invalid config")

// Config mirrors the YAML file. Keys left out of the file keep their
// Default values.
type Config struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	AmplitudeMin float64 `yaml:"amplitude_min"`
	AmplitudeMax float64 `yaml:"amplitude_max"`
	Foreground   string  `yaml:"foreground"`
	Background   string  `yaml:"background"`
	BinSizes     []int   `yaml:"bin_sizes"`
	Normalize    bool    `yaml:"normalize"`
}

// Default is used when no file is given.
func Default() Config {
	return Config{
		Width:        1200,
		Height:       200,
		AmplitudeMin: -1,
		AmplitudeMax: 1,
		Foreground:   "#1e90ff",
		Background:   "#000000",
		BinSizes:     []int{16, 256, 4096},
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the fields the renderers do not check themselves.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case len(c.BinSizes) == 0:
		return fmt.Errorf("%w: bin_sizes is empty", ErrInvalid)
	}

	return nil
}

// Waveform builds the renderer config from the amplitude range and colours.
func (c Config) Waveform() (*waveform.Config, error) {
	fg, err := waveform.ParseHexColor(c.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}

	bg, err := waveform.ParseHexColor(c.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	return waveform.NewConfig(c.AmplitudeMin, c.AmplitudeMax, fg, bg)
}
