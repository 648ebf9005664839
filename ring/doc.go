// Package ring keeps a circular order of integer ids where adjacency wraps
// from the last element back to the first.
//
// The ring is an arena of nodes with prev/next links instead of a
// resizable slice: renaming a node (Replace) and unlinking one (Remove)
// are O(1) and never shift the position of any other node. This is the
// circular order the linkage engine merges over.
//
//	r, _ := ring.New([]int{0, 1, 2, 3})
//	for a, b := range r.Pairs() {
//		// (0,1) (1,2) (2,3) (3,0)
//	}
package ring
