package align

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-afaligner/afalign/mfcc"
)

func sortedDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() || e.Type()&fs.ModeSymlink != 0 {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

func joinPath(dir, name string) string {
	return filepath.Join(dir, name)
}

func extractMFCC(pcm []float64, sampleRate int) ([][]float64, error) {
	return mfcc.Extract(pcm, mfcc.DefaultParams(sampleRate))
}
