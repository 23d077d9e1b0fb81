// Package dtwbd implements Dynamic Time Warping with Boundary Detection
// (DTWBD) and its FastDTW-style multi-resolution acceleration.
//
// 🚀 What is DTWBD?
//
//	Classic DTW always matches entire sequences end to end. DTWBD relaxes
//	both endpoints: it is free to skip a prefix of either sequence and a
//	suffix of either sequence, paying a linear `skipPenalty` per skipped
//	frame. This makes it tolerant to extra leading/trailing material, which
//	is exactly the structural noise found when narrated audio and its
//	source text are not perfectly one-to-one (extra preface, extra outro,
//	unequal splits across files).
//
// ✨ Key features:
//   - Align runs the boundary-aware DP kernel over a full grid or a
//     restricted Window, in O(Σ window width) time and memory.
//   - FastAlign wraps Align in a recursive coarsen→solve→refine driver
//     (FastDTW), giving near-linear time/memory in sequence length for a
//     fixed radius.
//   - Deterministic tie-breaking (diagonal, then vertical, then
//     horizontal, then "start here") makes results reproducible across
//     runs and platforms.
//
// ⚙️ Usage:
//
//	import "github.com/go-afaligner/afalign/dtwbd"
//
//	dist, path, err := dtwbd.FastAlign(textMFCC, audioMFCC, 0.75, 100)
//
// Performance:
//
//   - Align (full grid):    O(n·m) time and memory.
//   - Align (windowed):     O(Σ_i (hi(i)-lo(i))) time and memory.
//   - FastAlign:            O((n+m)·radius) time and memory, for fixed radius.
//
// See kernel_test.go, window_test.go and example_test.go for worked
// examples including the "perfect match", "no match" and "match in the
// middle" scenarios.
package dtwbd
