package align

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/go-afaligner/afalign/audiodecode"
	"github.com/go-afaligner/afalign/dtwbd"
	"github.com/go-afaligner/afalign/synth"
	"github.com/go-afaligner/afalign/syncmap"
	"github.com/go-afaligner/afalign/textfile"
)

// Coordinator drives the two-cursor alignment loop described in the
// package doc comment. Build one with its collaborator fields set
// directly; Align constructs a Coordinator wired to production
// collaborators from a Config.
type Coordinator struct {
	TextSource  TextSource
	AudioSource AudioSource
	Synthesizer synth.Synthesizer
	Decoder     audiodecode.Decoder
	Featurizer  Featurizer

	SkipPenalty float64
	Radius      int

	// TimesAsTimedelta switches every FragmentInfo this Coordinator
	// produces from the rendered H:MM:SS.mmm string pair to a
	// time.Duration pair, mirroring the original tool's
	// format_time(t, as_timedelta) — never both at once.
	TimesAsTimedelta bool

	TextPathPrefix  string
	AudioPathPrefix string

	Logger *log.Logger
}

// textCursor holds everything the loop needs about the text file
// currently being mapped, trimmed in place as its tail is re-aligned.
type textCursor struct {
	outputName string
	fragments  []textfile.Fragment
	anchors    []int // frame indices into mfcc, parallel to fragments
	mfcc       [][]float64
}

// audioCursor holds the same for the audio file currently being
// mapped. startFrame accumulates how many leading frames of the
// original file have already been consumed and trimmed away.
type audioCursor struct {
	outputName string
	mfcc       [][]float64
	startFrame int
}

// Run executes the alignment loop to completion, returning the sync
// map built so far. It returns ErrNoMatch (with no sync map) the first
// time a text/audio pair fails to align at all.
func (c *Coordinator) Run(ctx context.Context) (syncmap.SyncMap, error) {
	var sm syncmap.SyncMap
	var text *textCursor
	var audio *audioCursor
	needText, needAudio := true, true

	for {
		if needText {
			cur, ok, err := c.loadNextText(ctx)
			if err != nil {
				return sm, err
			}
			if !ok {
				break
			}
			sm.EnsureText(cur.outputName)
			text = cur
		}

		if needAudio {
			cur, ok, err := c.loadNextAudio(ctx)
			if err != nil {
				return sm, err
			}
			if !ok {
				break
			}
			audio = cur
		}

		if err := ctxErr(ctx); err != nil {
			return sm, err
		}

		m := len(audio.mfcc)
		_, path, err := dtwbd.FastAlign(text.mfcc, audio.mfcc, c.SkipPenalty, c.Radius)
		if err != nil {
			return sm, err
		}
		if len(path) == 0 {
			if c.Logger != nil {
				c.Logger.Error("no match found", "text", text.outputName, "audio", audio.outputName)
			}

			return syncmap.SyncMap{}, ErrNoMatch
		}

		firstMatchedText := path[0].I
		lastMatchedText := path[len(path)-1].I
		lastMatchedAudio := path[len(path)-1].J

		mapFrom, mapTo := anchorBounds(text.anchors, firstMatchedText, lastMatchedText)
		anchorsToMap := text.anchors[mapFrom:mapTo]
		fragmentsToMap := text.fragments[mapFrom:mapTo]

		timings := matchTimings(path, anchorsToMap, audio.startFrame)
		for i, frag := range fragmentsToMap {
			info := syncmap.FragmentInfo{AudioFile: audio.outputName}
			if c.TimesAsTimedelta {
				info.Begin = secondsToDuration(timings[i])
				info.End = secondsToDuration(timings[i+1])
			} else {
				info.BeginTime = formatTime(timings[i])
				info.EndTime = formatTime(timings[i+1])
			}
			sm.Put(text.outputName, frag.ID, info)
		}

		if mapTo == len(text.anchors) {
			needText = true
		} else {
			needText = false
			text.mfcc = text.mfcc[lastMatchedText:]
			text.fragments = text.fragments[mapTo:]
			remaining := make([]int, len(text.anchors)-mapTo)
			for i, a := range text.anchors[mapTo:] {
				remaining[i] = a - lastMatchedText
			}
			text.anchors = remaining
		}

		if lastMatchedAudio == m-1 || !needText {
			needAudio = true
		} else {
			needAudio = false
			audio.mfcc = audio.mfcc[lastMatchedAudio:]
			audio.startFrame += lastMatchedAudio
		}
	}

	return sm, nil
}

func (c *Coordinator) loadNextText(ctx context.Context) (*textCursor, bool, error) {
	name, fragments, ok, err := c.TextSource.Next()
	if err != nil || !ok {
		return nil, ok, err
	}

	result, err := c.Synthesizer.Synthesize(ctx, fragments)
	if err != nil {
		return nil, true, fmt.Errorf("%w: synthesize %s: %w", ErrExternalTool, name, err)
	}

	textMFCC, err := c.Featurizer.Featurize(result.PCM, result.SampleRate)
	if err != nil {
		return nil, true, fmt.Errorf("%w: featurize synthesized audio for %s: %w", ErrExternalTool, name, err)
	}

	anchors := make([]int, len(result.Anchors))
	for i, a := range result.Anchors {
		anchors[i] = frameIndex(a.SampleIndex, result.SampleRate)
	}

	return &textCursor{
		outputName: filepath.Join(c.TextPathPrefix, name),
		fragments:  fragments,
		anchors:    anchors,
		mfcc:       textMFCC,
	}, true, nil
}

func (c *Coordinator) loadNextAudio(ctx context.Context) (*audioCursor, bool, error) {
	name, path, ok, err := c.AudioSource.Next()
	if err != nil || !ok {
		return nil, ok, err
	}

	decoded, err := c.Decoder.Decode(ctx, path)
	if err != nil {
		return nil, true, fmt.Errorf("%w: decode %s: %w", ErrExternalTool, name, err)
	}

	audioMFCC, err := c.Featurizer.Featurize(decoded.PCM, decoded.SampleRate)
	if err != nil {
		return nil, true, fmt.Errorf("%w: featurize %s: %w", ErrExternalTool, name, err)
	}

	return &audioCursor{
		outputName: filepath.Join(c.AudioPathPrefix, name),
		mfcc:       audioMFCC,
	}, true, nil
}

// anchorBounds returns the [from, to) slice bounds into a sorted
// anchors slice covering every fragment whose anchor falls inside
// [firstMatchedText, lastMatchedText) — plus the one fragment
// immediately before the range, since its narration may still extend
// into the matched span.
func anchorBounds(anchors []int, firstMatchedText, lastMatchedText int) (from, to int) {
	from = searchSortedLeft(anchors, firstMatchedText) - 1
	if from < 0 {
		from = 0
	}
	to = searchSortedLeft(anchors, lastMatchedText)

	return from, to
}

// searchSortedLeft returns the smallest index i such that
// sorted[i] >= value, or len(sorted) if no such index exists.
func searchSortedLeft(sorted []int, value int) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] >= value })
}

// matchTimings projects each anchor in anchorsToMap onto the matched
// audio frame it falls on, converts to wall-clock seconds, and appends
// the timing of the path's last matched audio frame — so that
// timings[i], timings[i+1] is the (begin, end) pair for fragment i.
func matchTimings(path dtwbd.Path, anchorsToMap []int, audioStartFrame int) []float64 {
	textFrames := make([]int, len(path))
	for i, cell := range path {
		textFrames[i] = cell.I
	}

	timings := make([]float64, len(anchorsToMap)+1)
	for i, af := range anchorsToMap {
		idx := searchSortedLeft(textFrames, af)
		if idx >= len(path) {
			idx = len(path) - 1
		}
		timings[i] = framesToSeconds(path[idx].J + audioStartFrame)
	}
	timings[len(anchorsToMap)] = framesToSeconds(path[len(path)-1].J + audioStartFrame)

	return timings
}
