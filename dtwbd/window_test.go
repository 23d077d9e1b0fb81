package dtwbd_test

import (
	"testing"

	"github.com/go-afaligner/afalign/dtwbd"
	"github.com/stretchr/testify/assert"
)

// naiveBuildWindow is a brute-force reference implementation of the
// full [-r,r]² square semantics from spec §4.3, used only to check that
// BuildWindow's range-collapsing optimization produces an identical
// result.
func naiveBuildWindow(path dtwbd.Path, radius, n, m int) dtwbd.Window {
	w := dtwbd.Window{Lo: make([]int, n), Hi: make([]int, n)}
	for i := 0; i < n; i++ {
		w.Lo[i] = m
	}
	project := func(i, j int) [4][2]int {
		return [4][2]int{{2 * i, 2 * j}, {2 * i, 2*j + 1}, {2*i + 1, 2 * j}, {2*i + 1, 2*j + 1}}
	}
	for _, cell := range path {
		for dx := -radius; dx <= radius; dx++ {
			for dy := -radius; dy <= radius; dy++ {
				for _, fc := range project(cell.I+dx, cell.J+dy) {
					fi, fj := fc[0], fc[1]
					if fi < 0 || fi >= n {
						continue
					}
					if fj < 0 {
						fj = 0
					}
					if fj > m-1 {
						fj = m - 1
					}
					if fj < w.Lo[fi] {
						w.Lo[fi] = fj
					}
					if fj+1 > w.Hi[fi] {
						w.Hi[fi] = fj + 1
					}
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		if w.Lo[i] > w.Hi[i] {
			w.Lo[i] = w.Hi[i] // unreached row: empty, lo == hi
		}
	}

	return w
}

func TestBuildWindow_MatchesBruteForceSquare(t *testing.T) {
	path := dtwbd.Path{{I: 2, J: 3}, {I: 3, J: 4}, {I: 4, J: 4}, {I: 5, J: 6}}
	for _, radius := range []int{0, 1, 2, 5} {
		got := dtwbd.BuildWindow(path, radius, 20, 20)
		want := naiveBuildWindow(path, radius, 20, 20)
		assert.Equal(t, want, got, "radius=%d", radius)
	}
}

func TestBuildWindow_RowBoundsAreConsistent(t *testing.T) {
	path := dtwbd.Path{{I: 0, J: 0}, {I: 4, J: 7}, {I: 9, J: 9}}
	w := dtwbd.BuildWindow(path, 3, 10, 10)
	for i := 0; i < 10; i++ {
		lo, hi := w.Row(i)
		assert.GreaterOrEqual(t, lo, 0)
		assert.LessOrEqual(t, hi, 10)
		assert.LessOrEqual(t, lo, hi, "row %d: lo must be <= hi (hi==lo means empty)", i)
	}
}

func TestBuildWindow_ContainsProjectionOfEveryPathCell(t *testing.T) {
	path := dtwbd.Path{{I: 1, J: 1}, {I: 2, J: 2}, {I: 3, J: 3}}
	radius := 1
	n, m := 10, 10
	w := dtwbd.BuildWindow(path, radius, n, m)

	for _, cell := range path {
		for _, fr := range [2]int{2 * cell.I, 2*cell.I + 1} {
			for _, fc := range [2]int{2 * cell.J, 2*cell.J + 1} {
				lo, hi := w.Row(fr)
				assert.True(t, fc >= lo && fc < hi, "row %d col %d should be covered", fr, fc)
			}
		}
	}
}

func TestBuildWindow_EmptyPathYieldsEmptyWindow(t *testing.T) {
	w := dtwbd.BuildWindow(nil, 5, 10, 10)
	for i := 0; i < 10; i++ {
		lo, hi := w.Row(i)
		assert.Equal(t, hi, lo, "row %d should be empty", i)
	}
}

func TestNewFullWindow(t *testing.T) {
	w := dtwbd.NewFullWindow(5, 8)
	for i := 0; i < 5; i++ {
		lo, hi := w.Row(i)
		assert.Equal(t, 0, lo)
		assert.Equal(t, 8, hi)
	}
}
