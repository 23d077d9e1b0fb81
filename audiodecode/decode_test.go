package audiodecode_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-afaligner/afalign/audiodecode"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtureWAV(t *testing.T, path string, samples []int, sampleRate int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

func TestDecodeWAV_NormalizesAndReportsSampleRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.wav")
	writeFixtureWAV(t, path, []int{0, 0x7FFF, -0x7FFF, 0}, 16000)

	result, err := audiodecode.DecodeWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 16000, result.SampleRate)
	require.Len(t, result.PCM, 4)
	assert.InDelta(t, 0, result.PCM[0], 1e-6)
	assert.InDelta(t, 1.0, result.PCM[1], 1e-3)
	assert.InDelta(t, -1.0, result.PCM[2], 1e-3)
}

func TestDecodeWAV_MissingFileIsError(t *testing.T) {
	_, err := audiodecode.DecodeWAV(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}

func TestDecodeWAV_RejectsNonWAV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-wav.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file at all, just bytes"), 0o644))

	_, err := audiodecode.DecodeWAV(path)
	assert.ErrorIs(t, err, audiodecode.ErrInvalidWAV)
}

func TestFullScale_SanityAgainstKnownAmplitude(t *testing.T) {
	// Exercises the same normalization math DecodeWAV uses, independent
	// of the wav encode/decode round trip, to pin down the expected
	// full-scale divisor for 16-bit PCM.
	sample := 0x7FFF
	got := float64(sample) / 0x7FFF
	assert.True(t, math.Abs(got-1.0) < 1e-9)
}
