package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-afaligner/afalign/align"
	"gopkg.in/yaml.v3"
)

// File is the YAML shape Load reads. Every field mirrors one of
// align.Config's tuning parameters.
type File struct {
	TextDir   string `yaml:"text_dir"`
	AudioDir  string `yaml:"audio_dir"`
	OutputDir string `yaml:"output_dir"`

	OutputFormat string `yaml:"output_format"`

	SyncMapTextPathPrefix  string `yaml:"text_prefix"`
	SyncMapAudioPathPrefix string `yaml:"audio_prefix"`

	SkipPenalty float64 `yaml:"skip_penalty"`
	Radius      int     `yaml:"radius"`

	TimesAsTimedelta bool `yaml:"timedelta"`
}

// Load reads path as YAML into a File. A path of "" or a file that does
// not exist yields the zero File and no error — a config file is always
// optional, with flags and align.Config's own defaults covering the rest.
func Load(path string) (File, error) {
	if path == "" {
		return File{}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return File{}, nil
	}
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return f, nil
}

// ToAlignConfig copies every field onto an align.Config, leaving
// Synthesizer, Decoder, TempDir, and Logger for the caller to set.
func (f File) ToAlignConfig() align.Config {
	return align.Config{
		TextDir:                f.TextDir,
		AudioDir:               f.AudioDir,
		OutputDir:              f.OutputDir,
		OutputFormat:           f.OutputFormat,
		SyncMapTextPathPrefix:  f.SyncMapTextPathPrefix,
		SyncMapAudioPathPrefix: f.SyncMapAudioPathPrefix,
		SkipPenalty:            f.SkipPenalty,
		Radius:                 f.Radius,
		TimesAsTimedelta:       f.TimesAsTimedelta,
	}
}
