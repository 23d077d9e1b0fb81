package dtwbd

// FastAlign is the FastDTW-style multi-resolution driver for Align.
// It recursively coarsens s and t by half until they are small relative
// to radius, solves that base case exactly with Align, then repeatedly
// projects the coarse path into a radius-r window at the next finer
// resolution and re-solves with Align restricted to that window.
//
// Because every level halves both sequences, recursion depth is
// O(log min(len(s), len(t))); because each level's DP only touches an
// O((n+m)·radius) window, total time and memory are linear in n+m for a
// fixed radius.
//
// If the coarse recursion returns an empty path — no match beat the
// all-skip baseline at that resolution — FastAlign still gives the fine
// level a chance to find one: it falls back to a full [0,n)×[0,m) window
// rather than deadlocking on an all-empty band, since a coarse miss can
// be an artefact of the coarse grain rather than genuine absence of a
// match.
func FastAlign(s, t [][]float64, skipPenalty float64, radius int) (dist float64, path Path, err error) {
	if radius < 0 {
		return 0, nil, ErrNegativeRadius
	}

	n, m := len(s), len(t)
	minLen := 2 * (radius + 2)
	if n < minLen || m < minLen {
		return Align(s, t, skipPenalty, nil)
	}

	coarseS := Coarsen(s)
	coarseT := Coarsen(t)

	_, coarsePath, err := FastAlign(coarseS, coarseT, skipPenalty, radius)
	if err != nil {
		return 0, nil, err
	}

	var window Window
	if len(coarsePath) == 0 {
		window = NewFullWindow(n, m)
	} else {
		window = BuildWindow(coarsePath, radius, n, m)
	}

	return Align(s, t, skipPenalty, &window)
}
