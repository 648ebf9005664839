// Package similarity stores the pairwise similarity table that drives
// ring-constrained average linkage.
//
// A matrix is n×n, symmetric, with off-diagonal values in (0,1]. The
// diagonal is kept but never read by linkage scoring. Matrices are
// immutable once built: New copies and validates its input, Random draws
// a reproducible symmetric matrix from a seed.
//
//	S, err := similarity.New([][]float64{
//		{1.0, 0.9, 0.2},
//		{0.9, 1.0, 0.4},
//		{0.2, 0.4, 1.0},
//	})
//
//	R, err := similarity.Random(12, similarity.WithSeed(20250717))
package similarity
