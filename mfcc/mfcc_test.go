package mfcc_test

import (
	"math"
	"testing"

	"github.com/go-afaligner/afalign/mfcc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sineWave(freq float64, sampleRate, nSamples int) []float64 {
	out := make([]float64, nSamples)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}

	return out
}

func TestExtract_FrameCountMatchesDuration(t *testing.T) {
	const sampleRate = 16000
	pcm := sineWave(220, sampleRate, sampleRate*2) // 2 seconds
	frames, err := mfcc.Extract(pcm, mfcc.DefaultParams(sampleRate))
	require.NoError(t, err)
	assert.Equal(t, 2*int(1/mfcc.FrameDuration), len(frames))
	for _, f := range frames {
		assert.Len(t, f, 12)
	}
}

func TestExtract_EmptyPCMIsError(t *testing.T) {
	_, err := mfcc.Extract(nil, mfcc.DefaultParams(16000))
	assert.ErrorIs(t, err, mfcc.ErrEmptyPCM)
}

func TestExtract_DiscardsTrailingPartialFrame(t *testing.T) {
	const sampleRate = 16000
	frameLen := int(float64(sampleRate) * mfcc.FrameDuration)
	pcm := sineWave(220, sampleRate, frameLen+frameLen/2)
	frames, err := mfcc.Extract(pcm, mfcc.DefaultParams(sampleRate))
	require.NoError(t, err)
	assert.Len(t, frames, 1)
}

func TestExtract_DistinguishesDifferentTones(t *testing.T) {
	const sampleRate = 16000
	params := mfcc.DefaultParams(sampleRate)
	low, err := mfcc.Extract(sineWave(150, sampleRate, sampleRate), params)
	require.NoError(t, err)
	high, err := mfcc.Extract(sineWave(3000, sampleRate, sampleRate), params)
	require.NoError(t, err)

	var dist float64
	for i := range low[0] {
		d := low[0][i] - high[0][i]
		dist += d * d
	}
	assert.Greater(t, dist, 0.0)
}
