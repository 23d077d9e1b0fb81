package align

import (
	"github.com/charmbracelet/log"
	"github.com/go-afaligner/afalign/audiodecode"
	"github.com/go-afaligner/afalign/synth"
)

// Config carries every parameter a production alignment run needs.
// The zero value is not usable — TextDir and AudioDir must be set;
// DefaultSkipPenalty/DefaultRadius below give sensible values for the
// tuning parameters when a caller has no opinion.
type Config struct {
	TextDir   string
	AudioDir  string
	OutputDir string // if empty, no SMIL/JSON files are written

	// OutputFormat selects the file renderer: "smil" or "json". Ignored
	// if OutputDir is empty.
	OutputFormat string

	SyncMapTextPathPrefix  string
	SyncMapAudioPathPrefix string

	SkipPenalty float64
	Radius      int

	// TimesAsTimedelta switches every FragmentInfo Align produces from
	// the rendered H:MM:SS.mmm string pair (BeginTime/EndTime) to a
	// time.Duration pair (Begin/End) — never both. Since WriteSMIL and
	// WriteJSON need the rendered strings, Align rejects this combined
	// with a non-empty OutputDir rather than writing blank timestamps.
	TimesAsTimedelta bool

	// TempDir overrides where intermediate WAV files are written.
	// Defaults to a "tmp" subdirectory of OutputDir, or of the text
	// directory's parent when OutputDir is empty.
	TempDir string

	// Synthesizer and Decoder override the production collaborators
	// (FestivalSynthesizer and FFmpegDecoder). Nil means use the
	// default, binary-shelling-out implementation.
	Synthesizer synth.Synthesizer
	Decoder     audiodecode.Decoder

	Logger *log.Logger
}

// DefaultSkipPenalty is used by Align when Config.SkipPenalty is zero.
const DefaultSkipPenalty = 0.75

// DefaultRadius is used by Align when Config.Radius is zero.
const DefaultRadius = 100
