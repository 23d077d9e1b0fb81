package synth

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-afaligner/afalign/audiodecode"
	"github.com/go-afaligner/afalign/textfile"
)

// Anchor marks the sample offset at which a fragment's narration begins
// in a synthesized waveform.
type Anchor struct {
	FragmentID  string
	SampleIndex int
}

// SynthesisResult is the synthesized reference waveform plus the
// anchors locating every input fragment inside it, in fragment order.
type SynthesisResult struct {
	PCM        []float64
	SampleRate int
	Anchors    []Anchor
}

// Synthesizer produces a SynthesisResult for an ordered list of text
// fragments. Production code uses FestivalSynthesizer; tests inject a
// fake that skips the external binary.
type Synthesizer interface {
	Synthesize(ctx context.Context, fragments []textfile.Fragment) (SynthesisResult, error)
}

// FestivalSynthesizer synthesizes one fragment at a time with an
// external text-to-speech binary (by default "text2wave", Festival's
// command-line front end) and concatenates the results, recording an
// anchor at the start of each fragment.
type FestivalSynthesizer struct {
	// Binary is the TTS executable name or path. Defaults to
	// "text2wave" when empty.
	Binary string
	// WorkDir receives one intermediate WAV file per fragment.
	WorkDir string
}

// Synthesize implements Synthesizer.
func (s FestivalSynthesizer) Synthesize(ctx context.Context, fragments []textfile.Fragment) (SynthesisResult, error) {
	binary := s.Binary
	if binary == "" {
		binary = "text2wave"
	}

	var result SynthesisResult
	for i, frag := range fragments {
		wavPath := filepath.Join(s.WorkDir, fmt.Sprintf("fragment-%04d.wav", i))
		if err := s.synthesizeOne(ctx, binary, frag.Text, wavPath); err != nil {
			return SynthesisResult{}, fmt.Errorf("synth: fragment %s: %w", frag.ID, err)
		}

		decoded, err := audiodecode.DecodeWAV(wavPath)
		if err != nil {
			return SynthesisResult{}, fmt.Errorf("synth: fragment %s: %w", frag.ID, err)
		}

		if result.SampleRate == 0 {
			result.SampleRate = decoded.SampleRate
		} else if decoded.SampleRate != result.SampleRate {
			return SynthesisResult{}, fmt.Errorf(
				"synth: fragment %s: sample rate %d does not match preceding fragments' %d",
				frag.ID, decoded.SampleRate, result.SampleRate,
			)
		}

		result.Anchors = append(result.Anchors, Anchor{FragmentID: frag.ID, SampleIndex: len(result.PCM)})
		result.PCM = append(result.PCM, decoded.PCM...)
	}

	return result, nil
}

func (s FestivalSynthesizer) synthesizeOne(ctx context.Context, binary, text, wavPath string) error {
	cmd := exec.CommandContext(ctx, binary, "-o", wavPath)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", binary, err, out)
	}

	return nil
}
