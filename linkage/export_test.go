package linkage

import (
	"fmt"
	"sort"
)

// Verify checks the engine's bookkeeping invariants: the ring and the
// cluster table hold the same ids, every live cluster has a shape, and the
// members partition 0..n-1.
func Verify(e *Engine) error {
	ids := e.order.IDs()
	if len(ids) != len(e.members) || len(e.shapes) != len(e.members) {
		return fmt.Errorf("ring=%d clusters=%d shapes=%d", len(ids), len(e.members), len(e.shapes))
	}
	var all []int
	for _, id := range ids {
		m, ok := e.members[id]
		if !ok {
			return fmt.Errorf("ring id %d has no cluster", id)
		}
		if _, ok = e.shapes[id]; !ok {
			return fmt.Errorf("cluster %d has no shape", id)
		}
		all = append(all, m...)
	}
	sort.Ints(all)
	if len(all) != e.sim.N() {
		return fmt.Errorf("partition covers %d of %d items", len(all), e.sim.N())
	}
	for i, v := range all {
		if v != i {
			return fmt.Errorf("partition broken at %d: %v", i, all)
		}
	}

	return nil
}

// CorruptDropCluster removes a cluster from the table but not from the ring.
func CorruptDropCluster(e *Engine, id int) {
	delete(e.members, id)
	delete(e.shapes, id)
}

// CorruptRenameCluster re-keys a cluster without touching the ring.
func CorruptRenameCluster(e *Engine, from, to int) {
	e.members[to] = e.members[from]
	delete(e.members, from)
}
