// Package linkage runs average-linkage agglomeration over items arranged on
// a ring, where only clusters that are adjacent on the ring may merge.
//
// 🚀 What does it do?
//
//	Every item starts as its own cluster. Each step scores every adjacent
//	pair (mean pairwise similarity), merges the best one (first in scan
//	order on ties), and fits an oriented ellipse around the merged
//	members' centers. Steps are exposed as a lazily pulled sequence.
//
// ⚙️ Usage:
//
//	S, _ := similarity.Random(12, similarity.WithSeed(20250717))
//	pts, _ := layout.Circle(12, 3)
//	e, _ := linkage.New(S, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, pts)
//
//	events, err := e.Run(5)
//	if err != nil {
//		// ErrInvalidThreshold, ErrOrderMismatch, ErrAlreadyRun
//	}
//	for ev := range events {
//		fmt.Println(ev.A, ev.B, "→", ev.Cluster.ID, ev.Shape)
//	}
//
// Termination:
//
//	Merging continues while the live count is ≥ minClusterCount, so the run
//	ends with minClusterCount−1 clusters (never fewer than one). With n
//	items and 2 ≤ k ≤ n+1 a run emits n−k+1 events; with k > n it emits none.
//
// The engine is single-threaded and owns all of its tables. Read accessors
// (Clusters, Shapes, Order) return copies.
package linkage
