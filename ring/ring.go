// SPDX-License-Identifier: MIT
// Package: ringlink/ring
//
// ring.go — circular order of live cluster ids.
//
// Contract:
//   • Nodes live in an arena ([]node) addressed by slot; prev/next are slots.
//   • An id → slot index makes Replace/Remove/Next O(1); no slice compaction
//     ever happens, so positions never shift under the caller.
//   • Scan order starts at head and follows next; the head only moves when
//     the head node itself is removed (it advances to its successor).
//   • Returns only sentinel errors; never panics.
//
// Complexity:
//   • New: O(n). Replace/Remove/Next/Prev/Contains: O(1). IDs/Pairs: O(len).

package ring

import (
	"fmt"
	"iter"
)

const (
	methodNew     = "New"
	methodReplace = "Replace"
	methodRemove  = "Remove"
	methodNext    = "Next"
	methodPrev    = "Prev"

	noSlot = -1
)

type node struct {
	id   int
	prev int
	next int
}

// Ring is a doubly-linked cycle of distinct integer ids.
type Ring struct {
	nodes []node
	slot  map[int]int
	head  int
	n     int
}

// New builds a ring that visits ids in the given order and wraps from the
// last back to the first.
func New(ids []int) (*Ring, error) {
	n := len(ids)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrEmpty)
	}
	r := &Ring{
		nodes: make([]node, n),
		slot:  make(map[int]int, n),
		head:  0,
		n:     n,
	}
	for i, id := range ids {
		if _, dup := r.slot[id]; dup {
			return nil, fmt.Errorf("%s: id=%d: %w", methodNew, id, ErrDuplicateID)
		}
		r.slot[id] = i
		r.nodes[i] = node{id: id, prev: (i - 1 + n) % n, next: (i + 1) % n}
	}

	return r, nil
}

// Len returns the number of live ids.
func (r *Ring) Len() int { return r.n }

// Head returns the id at scan position 0; ok is false on an empty ring.
func (r *Ring) Head() (id int, ok bool) {
	if r.n == 0 {
		return 0, false
	}

	return r.nodes[r.head].id, true
}

// Contains reports whether id is live in the ring.
func (r *Ring) Contains(id int) bool {
	_, ok := r.slot[id]
	return ok
}

// Next returns the id that follows id in scan order.
func (r *Ring) Next(id int) (int, error) {
	s, ok := r.slot[id]
	if !ok {
		return 0, fmt.Errorf("%s: id=%d: %w", methodNext, id, ErrUnknownID)
	}

	return r.nodes[r.nodes[s].next].id, nil
}

// Prev returns the id that precedes id in scan order.
func (r *Ring) Prev(id int) (int, error) {
	s, ok := r.slot[id]
	if !ok {
		return 0, fmt.Errorf("%s: id=%d: %w", methodPrev, id, ErrUnknownID)
	}

	return r.nodes[r.nodes[s].prev].id, nil
}

// IDs returns the live ids in scan order, starting at head.
func (r *Ring) IDs() []int {
	out := make([]int, 0, r.n)
	s := r.head
	for k := 0; k < r.n; k++ {
		out = append(out, r.nodes[s].id)
		s = r.nodes[s].next
	}

	return out
}

// Pairs yields every adjacent pair (position k, position k+1 mod len) for
// k = 0..len-1, starting at head. A ring with fewer than two ids has no pairs.
// The ring must not be mutated while the sequence is being consumed.
func (r *Ring) Pairs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if r.n < 2 {
			return
		}
		s := r.head
		for k := 0; k < r.n; k++ {
			nx := r.nodes[s].next
			if !yield(r.nodes[s].id, r.nodes[nx].id) {
				return
			}
			s = nx
		}
	}
}

// Replace renames from to to in place; the ring position is unchanged.
func (r *Ring) Replace(from, to int) error {
	s, ok := r.slot[from]
	if !ok {
		return fmt.Errorf("%s: id=%d: %w", methodReplace, from, ErrUnknownID)
	}
	if from == to {
		return nil
	}
	if _, dup := r.slot[to]; dup {
		return fmt.Errorf("%s: id=%d: %w", methodReplace, to, ErrDuplicateID)
	}
	delete(r.slot, from)
	r.slot[to] = s
	r.nodes[s].id = to

	return nil
}

// Remove unlinks id. Removing the head advances the head to its successor.
func (r *Ring) Remove(id int) error {
	s, ok := r.slot[id]
	if !ok {
		return fmt.Errorf("%s: id=%d: %w", methodRemove, id, ErrUnknownID)
	}
	delete(r.slot, id)
	r.n--

	if r.n == 0 {
		r.head = noSlot
		return nil
	}
	p, nx := r.nodes[s].prev, r.nodes[s].next
	r.nodes[p].next = nx
	r.nodes[nx].prev = p
	if r.head == s {
		r.head = nx
	}
	r.nodes[s].prev, r.nodes[s].next = noSlot, noSlot

	return nil
}
