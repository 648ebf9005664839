// Package ringlink clusters items that live on a ring: only neighbours on
// the ring may merge, and every merged cluster is outlined by an oriented
// ellipse.
//
// 🚀 What is ringlink?
//
//	A small, deterministic library plus CLI that brings together:
//		• similarity — validated symmetric similarity matrices, seeded generator
//		• ring       — circular cluster order with O(1) rename/unlink
//		• ellipse    — PCA bounding ellipses (2×2 closed-form eigensolver)
//		• linkage    — the average-linkage engine, merges as a lazy sequence
//		• layout     — item centers on a circle
//		• export     — GeoJSON polygons for shapes and merge steps
//
// ⚙️ Quick start:
//
//	S, _ := similarity.Random(12, similarity.WithSeed(20250717))
//	pts, _ := layout.Circle(12, layout.DefaultRadius)
//	e, _ := linkage.New(S, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, pts)
//	events, _ := e.Run(5)
//	for ev := range events {
//		fmt.Println(ev.Step, ev.Cluster.Members, ev.Shape)
//	}
//
// Or from the shell:
//
//	ringlink run -c scene.yaml --format geojson -o run.geojson
//
// Everything is single-threaded and reproducible: the same matrix, order
// and options always produce the same event stream.
package ringlink
