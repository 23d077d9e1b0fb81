// Command afalign synchronizes narrated audio with the text fragments
// it was recorded from and writes an EPUB3 SMIL or JSON sync map.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-afaligner/afalign/align"
	"github.com/go-afaligner/afalign/config"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "afalign:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr *os.File) error {
	fs := pflag.NewFlagSet("afalign", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.StringP("config", "c", "", "YAML config file; flags below override its values.")
	textDir := fs.String("text-dir", "", "Directory of XHTML text fragment files.")
	audioDir := fs.String("audio-dir", "", "Directory of narration audio files.")
	outputDir := fs.String("output-dir", "", "Directory to write the sync map into.")
	format := fs.String("format", "", "Output format: smil or json.")
	textPrefix := fs.String("text-prefix", "", "Path prefix for text files in the sync map.")
	audioPrefix := fs.String("audio-prefix", "", "Path prefix for audio files in the sync map.")
	skipPenalty := fs.Float64("skip-penalty", 0, "DTWBD skip penalty (default 0.75 if unset).")
	radius := fs.Int("radius", 0, "FastDTW window radius (default 100 if unset).")
	timedelta := fs.Bool("timedelta", false, "Report begin/end as durations instead of H:MM:SS.mmm strings; incompatible with --output-dir.")
	dump := fs.Bool("dump", false, "Print the resulting sync map to stdout after aligning.")
	verbose := fs.BoolP("verbose", "v", false, "Log debug-level diagnostics.")
	help := fs.BoolP("help", "h", false, "Show usage and exit.")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: afalign [flags]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		fs.Usage()

		return nil
	}

	file, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	cfg := file.ToAlignConfig()

	if fs.Changed("text-dir") {
		cfg.TextDir = *textDir
	}
	if fs.Changed("audio-dir") {
		cfg.AudioDir = *audioDir
	}
	if fs.Changed("output-dir") {
		cfg.OutputDir = *outputDir
	}
	if fs.Changed("format") {
		cfg.OutputFormat = *format
	}
	if fs.Changed("text-prefix") {
		cfg.SyncMapTextPathPrefix = *textPrefix
	}
	if fs.Changed("audio-prefix") {
		cfg.SyncMapAudioPathPrefix = *audioPrefix
	}
	if fs.Changed("skip-penalty") {
		cfg.SkipPenalty = *skipPenalty
	}
	if fs.Changed("radius") {
		cfg.Radius = *radius
	}
	if fs.Changed("timedelta") {
		cfg.TimesAsTimedelta = *timedelta
	}

	logger := log.New(stderr)
	if !*verbose {
		logger.SetLevel(log.ErrorLevel)
	} else {
		logger.SetLevel(log.DebugLevel)
	}
	cfg.Logger = logger

	if cfg.TextDir == "" || cfg.AudioDir == "" {
		fs.Usage()

		return fmt.Errorf("afalign: --text-dir and --audio-dir are required")
	}

	sm, err := align.Align(context.Background(), cfg)
	if err != nil {
		return err
	}

	if *dump {
		fmt.Fprint(stdout, sm.String())
	}

	return nil
}
