package dtwbd

import "math"

// euclid computes the Euclidean distance between two feature vectors of
// equal length: sqrt(Σ_k (a_k - b_k)²). Callers must ensure len(a) ==
// len(b); Align checks this once up front so the hot loop never has to.
func euclid(a, b []float64) float64 {
	var sum float64
	for k := range a {
		d := a[k] - b[k]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Align computes the DTWBD distance between feature sequences s (length
// n) and t (length m), and the corresponding warping path. DTWBD differs
// from classic DTW in that it is free to choose the best start cell and
// end cell, paying skipPenalty for every frame of either sequence that
// falls outside the chosen match.
//
// window restricts the DP to a per-row band; pass nil to evaluate the
// full n×m grid. A non-nil window must cover exactly rows [0,n) with
// 0 <= lo <= hi <= m per row, or ErrInvalidWindow is returned.
//
// The returned path is empty when no match beats the all-skip baseline
// skipPenalty*(n+m); dist is then exactly that baseline.
//
// Time and memory are O(n·m) for a full grid, or O(Σ_i (hi(i)-lo(i)))
// for a windowed call.
func Align(s, t [][]float64, skipPenalty float64, window *Window) (dist float64, path Path, err error) {
	n, m := len(s), len(t)

	// 1) Validate shapes: mismatched "one empty, one not" is a shape
	// error per spec, not a skip-everything case.
	if (n == 0) != (m == 0) {
		return 0, nil, ErrInputShape
	}
	if skipPenalty < 0 {
		return 0, nil, ErrNegativeSkipPenalty
	}
	if _, err := frameWidth(s, t); err != nil {
		return 0, nil, err
	}

	if n == 0 && m == 0 {
		return 0, Path{}, nil
	}

	// 2) Resolve the window: default to the full grid.
	var w Window
	if window != nil {
		if verr := window.validate(n, m); verr != nil {
			return 0, nil, verr
		}
		w = *window
	} else {
		w = NewFullWindow(n, m)
	}

	// 3) Allocate the dense per-window back-pointer table and the
	// two rolling distance rows. Back-pointers must persist for every
	// visited row (traceback may land anywhere); distances only need
	// the previous row, gated by that row's own [lo,hi) so stale
	// values are never read without resetting the whole array.
	backptrs := make([][]move, n)
	for i := 0; i < n; i++ {
		lo, hi := w.Row(i)
		if hi > lo {
			backptrs[i] = make([]move, hi-lo)
		}
	}

	distPrev := make([]float64, m)
	distCurr := make([]float64, m)
	prevLo, prevHi := 0, 0 // previous row's window; starts empty ("row -1")

	baseline := skipPenalty * float64(n+m)
	minPathDist := baseline
	var pathEnd Cell
	found := false

	// 4) Main DP pass: rows increasing i, columns increasing j within
	// a row, exactly as required for determinism.
	for i := 0; i < n; i++ {
		lo, hi := w.Row(i)
		for j := lo; j < hi; j++ {
			d := euclid(s[i], t[j])

			diagVal := math.Inf(1)
			if i > 0 && j > 0 && j-1 >= prevLo && j-1 < prevHi {
				diagVal = distPrev[j-1]
			}
			vertVal := math.Inf(1)
			if j > lo {
				vertVal = distCurr[j-1]
			}
			horizVal := math.Inf(1)
			if i > 0 && j >= prevLo && j < prevHi {
				horizVal = distPrev[j]
			}
			startVal := skipPenalty * float64(i+j)

			// Tie-break: diagonal, then vertical, then horizontal,
			// then "start here" — strict '<' preserves priority.
			bestVal, bestMove := diagVal, moveDiag
			if vertVal < bestVal {
				bestVal, bestMove = vertVal, moveVert
			}
			if horizVal < bestVal {
				bestVal, bestMove = horizVal, moveHoriz
			}
			if startVal < bestVal {
				bestVal, bestMove = startVal, moveStart
			}

			cost := d + bestVal
			distCurr[j] = cost
			backptrs[i][j-lo] = bestMove

			pathDist := cost + skipPenalty*float64((n-1-i)+(m-1-j))
			if pathDist < minPathDist {
				minPathDist = pathDist
				pathEnd = Cell{I: i, J: j}
				found = true
			}
		}
		distPrev, distCurr = distCurr, distPrev
		prevLo, prevHi = lo, hi
	}

	if !found {
		return baseline, Path{}, nil
	}

	path, err = backtrack(backptrs, &w, pathEnd)
	if err != nil {
		return 0, nil, err
	}

	return minPathDist, path, nil
}

// backtrack walks back-pointers from end until a "start here" cell is
// reached, then reverses the result into forward (0,0)->(n,m) order.
func backtrack(backptrs [][]move, w *Window, end Cell) (Path, error) {
	path := make(Path, 0, end.I+end.J+1) // at most end.I+end.J+1 cells, n+m-1 worst case
	i, j := end.I, end.J

	for {
		path = append(path, Cell{I: i, J: j})
		lo := w.Lo[i]
		mv := backptrs[i][j-lo]
		switch mv {
		case moveStart:
			reverse(path)

			return path, nil
		case moveDiag:
			i, j = i-1, j-1
		case moveVert:
			j--
		case moveHoriz:
			i--
		default:
			return nil, ErrAllocation
		}
	}
}

func reverse(path Path) {
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
}

// frameWidth checks that every frame of s and every frame of t share the
// same coefficient count, returning that count. Empty sequences have no
// constraint and report width 0.
func frameWidth(s, t [][]float64) (int, error) {
	width := -1
	check := func(seq [][]float64) error {
		for _, frame := range seq {
			if width == -1 {
				width = len(frame)

				continue
			}
			if len(frame) != width {
				return ErrInputShape
			}
		}

		return nil
	}
	if err := check(s); err != nil {
		return 0, err
	}
	if err := check(t); err != nil {
		return 0, err
	}
	if width == -1 {
		width = 0
	}

	return width, nil
}
