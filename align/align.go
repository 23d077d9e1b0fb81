package align

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-afaligner/afalign/audiodecode"
	"github.com/go-afaligner/afalign/synth"
	"github.com/go-afaligner/afalign/syncmap"
	"github.com/go-afaligner/afalign/textfile"
)

// Align synchronizes every text fragment under cfg.TextDir with the
// recorded narration under cfg.AudioDir and, if cfg.OutputDir is set,
// writes the result as SMIL or JSON files there.
//
// The temporary workspace used for intermediate WAV files is removed
// on every exit path, including a failed or cancelled run.
func Align(ctx context.Context, cfg Config) (syncmap.SyncMap, error) {
	if cfg.OutputDir != "" && cfg.TimesAsTimedelta {
		return syncmap.SyncMap{}, fmt.Errorf("align: OutputDir and TimesAsTimedelta are mutually exclusive: WriteSMIL/WriteJSON require rendered string timestamps")
	}

	skipPenalty := cfg.SkipPenalty
	if skipPenalty == 0 {
		skipPenalty = DefaultSkipPenalty
	}
	radius := cfg.Radius
	if radius == 0 {
		radius = DefaultRadius
	}

	tmpDir, err := resolveTempDir(cfg)
	if err != nil {
		return syncmap.SyncMap{}, err
	}
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return syncmap.SyncMap{}, fmt.Errorf("align: create temp workspace: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	textSource, err := textfile.NewDirSource(cfg.TextDir)
	if err != nil {
		return syncmap.SyncMap{}, fmt.Errorf("align: list text dir: %w", err)
	}
	audioSource, err := NewAudioDirSource(cfg.AudioDir)
	if err != nil {
		return syncmap.SyncMap{}, fmt.Errorf("align: list audio dir: %w", err)
	}

	synthesizer := cfg.Synthesizer
	if synthesizer == nil {
		synthesizer = synth.FestivalSynthesizer{WorkDir: tmpDir}
	}
	decoder := cfg.Decoder
	if decoder == nil {
		decoder = audiodecode.FFmpegDecoder{WorkDir: tmpDir}
	}

	coordinator := &Coordinator{
		TextSource:       textSource,
		AudioSource:      audioSource,
		Synthesizer:      synthesizer,
		Decoder:          decoder,
		Featurizer:       defaultFeaturizer{},
		SkipPenalty:      skipPenalty,
		Radius:           radius,
		TimesAsTimedelta: cfg.TimesAsTimedelta,
		TextPathPrefix:   cfg.SyncMapTextPathPrefix,
		AudioPathPrefix:  cfg.SyncMapAudioPathPrefix,
		Logger:           cfg.Logger,
	}

	sm, err := coordinator.Run(ctx)
	if err != nil {
		return syncmap.SyncMap{}, err
	}

	if cfg.OutputDir != "" {
		if err := writeOutput(sm, cfg.OutputDir, cfg.OutputFormat); err != nil {
			return syncmap.SyncMap{}, err
		}
	}

	return sm, nil
}

func resolveTempDir(cfg Config) (string, error) {
	if cfg.TempDir != "" {
		return cfg.TempDir, nil
	}
	if cfg.OutputDir != "" {
		return filepath.Join(cfg.OutputDir, "tmp"), nil
	}

	parent := filepath.Dir(filepath.Clean(cfg.TextDir))

	return filepath.Join(parent, "tmp"), nil
}

func writeOutput(sm syncmap.SyncMap, outputDir, format string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("align: create output dir: %w", err)
	}

	switch format {
	case "", "smil":
		return syncmap.WriteSMIL(sm, outputDir)
	case "json":
		return syncmap.WriteJSON(sm, outputDir)
	default:
		return fmt.Errorf("align: unknown output format %q", format)
	}
}
