package align

import (
	"context"

	"github.com/go-afaligner/afalign/textfile"
)

// TextSource yields text files one at a time, already parsed into
// fragments, in the order they should be aligned. textfile.DirSource
// satisfies this interface.
type TextSource interface {
	Next() (name string, fragments []textfile.Fragment, ok bool, err error)
}

// AudioSource yields audio files one at a time: a display name (used
// when naming the sync map entry) and a path the Decoder can open.
type AudioSource interface {
	Next() (name, path string, ok bool, err error)
}

// Featurizer turns decoded PCM into an MFCC feature sequence. mfcc.Extract
// wrapped in defaultFeaturizer satisfies this for production use; tests
// can inject a fake that returns fixed sequences without running any
// DFT at all.
type Featurizer interface {
	Featurize(pcm []float64, sampleRate int) ([][]float64, error)
}

// AudioDirSource walks a directory of audio files in lexicographic
// filename order, the same traversal textfile.DirSource uses for text
// files.
type AudioDirSource struct {
	dir   string
	names []string
	pos   int
}

// NewAudioDirSource lists dir once, eagerly, and sorts its entries.
func NewAudioDirSource(dir string) (*AudioDirSource, error) {
	names, err := sortedDirNames(dir)
	if err != nil {
		return nil, err
	}

	return &AudioDirSource{dir: dir, names: names}, nil
}

// Next returns the next audio file's name and path, or ok=false once
// every file has been consumed.
func (s *AudioDirSource) Next() (name, path string, ok bool, err error) {
	if s.pos >= len(s.names) {
		return "", "", false, nil
	}

	name = s.names[s.pos]
	s.pos++

	return name, joinPath(s.dir, name), true, nil
}

// defaultFeaturizer wraps mfcc.Extract with the standard parameters for
// a given sample rate.
type defaultFeaturizer struct{}

func (defaultFeaturizer) Featurize(pcm []float64, sampleRate int) ([][]float64, error) {
	return extractMFCC(pcm, sampleRate)
}

var _ Featurizer = defaultFeaturizer{}

// ctxErr returns ctx.Err() if it is set, otherwise nil — used between
// files, never inside a dtwbd call, to bound external collaborator work
// without making the DP kernels themselves cancellable.
func ctxErr(ctx context.Context) error {
	return ctx.Err()
}
