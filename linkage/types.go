// SPDX-License-Identifier: MIT

package linkage

import "github.com/katalvlaran/ringlink/ellipse"

// Cluster is a live group of original item indices.
// Singletons carry ID == item index; merged clusters get fresh ids above
// every id used before.
type Cluster struct {
	ID      int   `json:"id"`
	Members []int `json:"members"`
}

// clone returns a Cluster with its own Members slice.
func (c Cluster) clone() Cluster {
	m := make([]int, len(c.Members))
	copy(m, c.Members)

	return Cluster{ID: c.ID, Members: m}
}

// MergeEvent describes one committed merge step.
type MergeEvent struct {
	// Step is 1 for the first merge of a run.
	Step int `json:"step"`

	// A and B are the merged ids; A preceded B in ring scan order.
	A int `json:"merged_a"`
	B int `json:"merged_b"`

	// Score is the average-linkage score of the selected pair.
	Score float64 `json:"score"`

	// Cluster is the new cluster: members of A followed by members of B.
	Cluster Cluster `json:"cluster"`

	// Shape bounds the centers of Cluster.Members.
	Shape ellipse.Shape `json:"shape"`

	// Live is the number of live clusters after the merge.
	Live int `json:"live"`
}

// State is the engine's position in its two-state machine.
type State int

const (
	// Active means further merges may happen.
	Active State = iota

	// Done is terminal: live count dropped below the threshold or only one
	// cluster remains.
	Done
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
