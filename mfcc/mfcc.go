package mfcc

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrEmptyPCM indicates Extract was called with no samples.
var ErrEmptyPCM = errors.New("mfcc: empty PCM input")

// FrameDuration is the fixed analysis window: 40ms, matching the frame
// duration every matched-frame index is projected back to wall-clock
// time with.
const FrameDuration = 0.040 // seconds

// Params controls the MFCC pipeline. Zero-value Params is not usable;
// construct via DefaultParams or set every field explicitly.
type Params struct {
	SampleRate int     // samples per second of the input PCM
	NFilters   int     // number of mel filterbank triangles
	LoHz       float64 // low edge of the mel filterbank
	HiHz       float64 // high edge of the mel filterbank; must be <= SampleRate/2
	NCoeffs    int     // number of cepstral coefficients kept, after dropping the first
}

// DefaultParams returns the parameters the coordinator uses unless a
// caller overrides them: a 26-filter mel bank spanning 300Hz to 8kHz
// (or the Nyquist frequency, if lower) and 12 kept cepstral coefficients
// (coefficients 1 through 12 of the 26-point DCT; coefficient 0, the
// log-energy term, is dropped), at the given sample rate.
func DefaultParams(sampleRate int) Params {
	return Params{
		SampleRate: sampleRate,
		NFilters:   26,
		LoHz:       300,
		HiHz:       math.Min(8000, float64(sampleRate)/2),
		NCoeffs:    12,
	}
}

// Extract computes one MFCC feature vector per non-overlapping
// FrameDuration window of pcm (mono, normalized to [-1, 1]), dropping
// the leading (log-energy) coefficient from every frame. A trailing
// partial frame shorter than a full window is discarded.
func Extract(pcm []float64, p Params) ([][]float64, error) {
	if len(pcm) == 0 {
		return nil, ErrEmptyPCM
	}

	frameLen := int(float64(p.SampleRate) * FrameDuration)
	if frameLen <= 0 {
		frameLen = 1
	}
	nFrames := len(pcm) / frameLen
	if nFrames == 0 {
		return nil, nil
	}

	window := hammingWindow(frameLen)
	fft := fourier.NewFFT(frameLen)
	filters := melFilterbank(p, frameLen)
	dct := fourier.NewDCT(p.NFilters)

	out := make([][]float64, nFrames)
	powerSpec := make([]float64, frameLen/2+1)
	fbEnergies := make([]float64, p.NFilters)
	windowed := make([]float64, frameLen)

	for fr := 0; fr < nFrames; fr++ {
		frame := pcm[fr*frameLen : (fr+1)*frameLen]
		for i, s := range frame {
			windowed[i] = s * window[i]
		}

		spectrum := fft.Coefficients(nil, windowed)
		for i, c := range spectrum {
			powerSpec[i] = real(c)*real(c) + imag(c)*imag(c)
		}

		for fi, filter := range filters {
			var sum float64
			for bin, w := range filter {
				sum += w * powerSpec[bin]
			}
			if sum <= 0 {
				fbEnergies[fi] = math.Log(1e-10)
			} else {
				fbEnergies[fi] = math.Log(sum)
			}
		}

		coeffs := dct.Transform(nil, fbEnergies)

		kept := make([]float64, p.NCoeffs)
		copy(kept, coeffs[1:1+p.NCoeffs])
		out[fr] = kept
	}

	return out, nil
}

func hammingWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}

	return w
}

// melFilterbank returns p.NFilters triangular filters, each a dense
// slice of weights indexed by power-spectrum bin, spanning [LoHz, HiHz].
func melFilterbank(p Params, frameLen int) [][]float64 {
	nBins := frameLen/2 + 1
	loMel := hzToMel(p.LoHz)
	hiMel := hzToMel(p.HiHz)

	points := make([]int, p.NFilters+2)
	for i := range points {
		mel := loMel + float64(i)*(hiMel-loMel)/float64(p.NFilters+1)
		hz := melToHz(mel)
		points[i] = int(float64(frameLen+1) * hz / float64(p.SampleRate))
		if points[i] >= nBins {
			points[i] = nBins - 1
		}
	}

	filters := make([][]float64, p.NFilters)
	for f := 0; f < p.NFilters; f++ {
		filters[f] = make([]float64, nBins)
		lo, peak, hi := points[f], points[f+1], points[f+2]
		for bin := lo; bin < peak; bin++ {
			if peak > lo {
				filters[f][bin] = float64(bin-lo) / float64(peak-lo)
			}
		}
		for bin := peak; bin < hi; bin++ {
			if hi > peak {
				filters[f][bin] = float64(hi-bin) / float64(hi-peak)
			}
		}
	}

	return filters
}

func hzToMel(hz float64) float64 {
	return 1127 * math.Log(1+hz/700)
}

func melToHz(mel float64) float64 {
	return 700 * (math.Exp(mel/1127) - 1)
}
