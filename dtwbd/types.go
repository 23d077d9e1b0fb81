// Package dtwbd defines the grid/path/window types and sentinel errors
// shared by the DTWBD kernel and the FastDTW driver.
package dtwbd

import "errors" // we need sentinel error creation

// Cell represents a single point (I,J) in a warping path or grid.
// I indexes the first sequence, J indexes the second.
type Cell struct {
	I, J int
}

// Path is an ordered sequence of grid cells describing a warping path.
// A Path is strictly increasing in I+J, and every step from one cell to
// the next is one of (+1,+1), (+1,0) or (0,+1). An empty Path means "no
// match found".
type Path []Cell

// Window restricts DP evaluation to a per-row band. For row i in [0, N),
// only columns in [Lo[i], Hi[i]) are evaluated; all other cells in that
// row are treated as unreachable (+Inf). A row with Lo[i] >= Hi[i] is
// empty.
type Window struct {
	Lo, Hi []int
}

// NewFullWindow returns the Window covering every cell of an n×m grid,
// i.e. Lo[i]=0, Hi[i]=m for every row. Align treats a nil *Window the
// same way, so NewFullWindow is mostly useful when a Window value (not a
// pointer) is required explicitly, such as the fine-level fallback in
// FastAlign when the coarse recursion found no match.
func NewFullWindow(n, m int) Window {
	lo := make([]int, n)
	hi := make([]int, n)
	for i := 0; i < n; i++ {
		hi[i] = m
	}

	return Window{Lo: lo, Hi: hi}
}

// Row returns the half-open column interval [lo, hi) for row i.
func (w Window) Row(i int) (lo, hi int) {
	return w.Lo[i], w.Hi[i]
}

// validate checks that Lo/Hi describe a well-formed band over an n×m
// grid: same length n, and for every row 0 <= lo <= hi <= m.
func (w Window) validate(n, m int) error {
	if len(w.Lo) != n || len(w.Hi) != n {
		return ErrInvalidWindow
	}
	for i := 0; i < n; i++ {
		if w.Lo[i] < 0 || w.Lo[i] > w.Hi[i] || w.Hi[i] > m {
			return ErrInvalidWindow
		}
	}

	return nil
}

// move is the two-bit tagged back-pointer code for a DP cell: the move
// that produced its minimal cost. moveStart terminates traceback.
type move uint8

const (
	moveStart move = iota // "start here": skip i rows of s and j cols of t
	moveDiag               // predecessor (i-1, j-1)
	moveVert               // predecessor (i,   j-1) — advances t
	moveHoriz              // predecessor (i-1, j  ) — advances s
)

// Sentinel errors for DTWBD input validation.
var (
	// ErrInputShape indicates the two sequences have different
	// coefficient counts, or one sequence is empty while the other is
	// not.
	ErrInputShape = errors.New("dtwbd: incompatible sequence shapes")

	// ErrNegativeSkipPenalty indicates skip_penalty < 0.
	ErrNegativeSkipPenalty = errors.New("dtwbd: skip penalty must be non-negative")

	// ErrNegativeRadius indicates a FastAlign radius < 0.
	ErrNegativeRadius = errors.New("dtwbd: radius must be non-negative")

	// ErrInvalidWindow indicates a supplied Window does not match the
	// grid dimensions, or has a row with lo>hi or out-of-range bounds.
	ErrInvalidWindow = errors.New("dtwbd: invalid window")

	// ErrAllocation is returned when traceback meets a back-pointer
	// code other than the four defined moves. Align does not check the
	// grid size before allocating its tables, so an allocation that
	// exceeds available memory is not reported through this error.
	ErrAllocation = errors.New("dtwbd: allocation failed")
)
