package dtwbd

// Coarsen halves the length of seq by averaging consecutive pairs of
// frames: coarsen(seq)[k] = (seq[2k] + seq[2k+1]) / 2. If len(seq) is
// odd, the trailing frame is discarded at this level — FastAlign
// compensates by falling back to a full window at the finest level when
// the coarse recursion reports no match.
func Coarsen(seq [][]float64) [][]float64 {
	l := len(seq) / 2
	out := make([][]float64, l)
	for k := 0; k < l; k++ {
		out[k] = averageFrames(seq[2*k], seq[2*k+1])
	}

	return out
}

func averageFrames(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for k := range a {
		out[k] = (a[k] + b[k]) / 2
	}

	return out
}
