package dtwbd

// BuildWindow expands a coarse-resolution path into a per-row band at
// the next finer resolution (n×m), covering a radius-r neighbourhood
// around every path cell.
//
// Per cell (i,j) of path, the intended coverage is the full square
// [i-r, i+r] × [j-r, j+r] of coarse cells (not the original reference
// implementation's asymmetric dy ∈ {-r, r+1}, which the specification
// calls out as likely a bug): each coarse cell in that square projects
// to four finer cells {(2i',2j'), (2i',2j'+1), (2i'+1,2j'), (2i'+1,2j'+1)}.
//
// BuildWindow computes the identical result without materialising every
// coarse cell individually: for a fixed row offset dx, the column
// offsets dy ∈ [-r,r] project to the *contiguous* fine-column range
// [2(j-r), 2(j+r)+1], so each dx contributes one range-widen per fine
// row instead of (2r+1) single-cell updates. This collapses the O(r²)
// enumeration implied by the square into O(r) per path cell.
//
// Rows projected outside [0,n) are dropped; columns are clamped into
// [0,m-1]. The result is a contiguous per-row band — BuildWindow
// deliberately fills any gaps within a row, which is what keeps the
// finer-grid DP monotone. A row no path cell reaches is empty, with
// lo == hi.
func BuildWindow(path Path, radius, n, m int) Window {
	w := Window{Lo: make([]int, n), Hi: make([]int, n)}
	for i := 0; i < n; i++ {
		w.Lo[i] = m
	}
	if m <= 0 {
		return w
	}

	for _, cell := range path {
		loJ := cell.J - radius
		hiJ := cell.J + radius // inclusive
		fineLo := clampCol(2*loJ, m)
		fineHi := clampCol(2*hiJ+1, m)

		for dx := -radius; dx <= radius; dx++ {
			ci := cell.I + dx
			widenRow(&w, n, 2*ci, fineLo, fineHi)
			widenRow(&w, n, 2*ci+1, fineLo, fineHi)
		}
	}

	// Rows the band never reached are collapsed to lo == hi so every
	// row satisfies 0 <= lo <= hi <= m, as Align's validation requires.
	for i := 0; i < n; i++ {
		if w.Lo[i] > w.Hi[i] {
			w.Lo[i] = w.Hi[i]
		}
	}

	return w
}

func widenRow(w *Window, n, row, lo, hi int) {
	if row < 0 || row >= n {
		return
	}
	if lo < w.Lo[row] {
		w.Lo[row] = lo
	}
	if hi+1 > w.Hi[row] {
		w.Hi[row] = hi + 1
	}
}

func clampCol(j, m int) int {
	if j < 0 {
		return 0
	}
	if j > m-1 {
		return m - 1
	}

	return j
}
