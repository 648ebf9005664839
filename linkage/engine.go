// SPDX-License-Identifier: MIT
// Package: ringlink/linkage
//
// engine.go — ring-constrained average-linkage agglomeration.
//
// Algorithm Outline (one merge step):
//  1. Scan adjacent pairs of the ring from head, wrapping last→first.
//     Score = mean of S[i,j] over the full member cross product.
//     Strict ">" keeps the first maximum in scan order.
//  2. merged = members(A) ++ members(B).
//  3. id = largest id so far + 1.
//  4. Drop A and B from the cluster and shape tables.
//  5. Ring: A's node is renamed to id, B's node is unlinked.
//  6. Fit the merged shape and store it under id.
//
// Termination: steps run while live ≥ minClusterCount (and a partner exists),
// so a run stops with minClusterCount−1 live clusters.
//
// Complexity per step: O(n²) scoring in the worst case (every item pair is
// read once across the scan), O(m) fitting for an m-member cluster.

package linkage

import (
	"fmt"
	"iter"
	"math"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/katalvlaran/ringlink/ellipse"
	"github.com/katalvlaran/ringlink/ring"
	"github.com/katalvlaran/ringlink/similarity"
)

const (
	methodNew   = "New"
	methodRun   = "Run"
	methodStep  = "Step"
	methodScore = "Score"
)

// Engine owns the cluster table, the circular order and the shape table
// for exactly one agglomeration run. It is not safe for concurrent use.
type Engine struct {
	sim    similarity.Matrix
	points []orb.Point
	fitter ellipse.Fitter
	log    *zap.Logger

	members map[int][]int
	shapes  map[int]ellipse.Shape
	order   *ring.Ring

	nextID int
	step   int
	state  State
	ran    bool
}

// New builds an engine with one singleton cluster per item.
//
// Contract:
//   - sim is non-nil; n = sim.N().
//   - order is a permutation of 0..n-1; it is the initial ring.
//   - points[i] is the center of item i; len(points) == n.
//
// Errors: ErrNilMatrix, ErrInvalidOrder, ErrDimensionMismatch, and fitter
// errors (ellipse.ErrNaNInf) for non-finite points.
func New(sim similarity.Matrix, order []int, points []orb.Point, opts ...Option) (*Engine, error) {
	if sim == nil {
		return nil, linkageErrorf(methodNew, ErrNilMatrix)
	}
	n := sim.N()
	if err := validatePermutation(order, n); err != nil {
		return nil, linkageErrorf(methodNew, err)
	}
	if len(points) != n {
		return nil, fmt.Errorf("%s: %d points for %d items: %w", methodNew, len(points), n, ErrDimensionMismatch)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	r, err := ring.New(order)
	if err != nil {
		return nil, linkageErrorf(methodNew, err)
	}
	e := &Engine{
		sim:     sim,
		points:  append([]orb.Point(nil), points...),
		fitter:  cfg.fitter,
		log:     cfg.log,
		members: make(map[int][]int, n),
		shapes:  make(map[int]ellipse.Shape, n),
		order:   r,
		nextID:  n,
		state:   Active,
	}
	for i := 0; i < n; i++ {
		e.members[i] = []int{i}
		shape, err := e.fitter.Fit(e.points[i : i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", methodNew, i, err)
		}
		e.shapes[i] = shape
	}

	return e, nil
}

// validatePermutation checks that perm holds each of 0..n-1 exactly once.
func validatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidOrder
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidOrder
		}
		seen[v] = true
	}

	return nil
}

// Score returns the average-linkage score of a and b: the mean of S[i,j]
// over every i in a.Members and j in b.Members.
func (e *Engine) Score(a, b Cluster) (float64, error) {
	if len(a.Members) == 0 || len(b.Members) == 0 {
		return 0, linkageErrorf(methodScore, ErrEmptyCluster)
	}
	var sum float64
	for _, i := range a.Members {
		for _, j := range b.Members {
			v, err := e.sim.At(i, j)
			if err != nil {
				return 0, linkageErrorf(methodScore, err)
			}
			sum += v
		}
	}

	return sum / float64(len(a.Members)*len(b.Members)), nil
}

// Run validates its inputs and returns the lazy sequence of merge events.
// Each pulled event corresponds to a fully committed merge; a consumer may
// stop pulling at any time and the engine stays consistent. The sequence
// is single-use.
//
// Errors: ErrInvalidThreshold, ErrOrderMismatch, ErrAlreadyRun.
func (e *Engine) Run(minClusterCount int) (iter.Seq[MergeEvent], error) {
	if minClusterCount < 1 {
		return nil, fmt.Errorf("%s: minClusterCount=%d: %w", methodRun, minClusterCount, ErrInvalidThreshold)
	}
	if e.order.Len() != len(e.members) {
		return nil, fmt.Errorf("%s: ring=%d clusters=%d: %w", methodRun, e.order.Len(), len(e.members), ErrOrderMismatch)
	}
	if e.ran || e.step > 0 {
		return nil, linkageErrorf(methodRun, ErrAlreadyRun)
	}
	e.ran = true

	used := false
	return func(yield func(MergeEvent) bool) {
		if used {
			return
		}
		used = true
		for {
			ev, ok := e.advance(minClusterCount)
			if !ok || !yield(ev) {
				return
			}
		}
	}, nil
}

// RunAll drains Run into a slice.
func (e *Engine) RunAll(minClusterCount int) ([]MergeEvent, error) {
	seq, err := e.Run(minClusterCount)
	if err != nil {
		return nil, err
	}
	var out []MergeEvent
	for ev := range seq {
		out = append(out, ev)
	}

	return out, nil
}

// Step performs at most one merge. ok is false once the engine is Done.
func (e *Engine) Step(minClusterCount int) (ev MergeEvent, ok bool, err error) {
	if minClusterCount < 1 {
		return MergeEvent{}, false, fmt.Errorf("%s: minClusterCount=%d: %w", methodStep, minClusterCount, ErrInvalidThreshold)
	}
	if e.order.Len() != len(e.members) {
		return MergeEvent{}, false, fmt.Errorf("%s: ring=%d clusters=%d: %w", methodStep, e.order.Len(), len(e.members), ErrOrderMismatch)
	}
	ev, ok = e.advance(minClusterCount)

	return ev, ok, nil
}

// advance applies the termination test and, while Active, one merge step.
func (e *Engine) advance(minClusterCount int) (MergeEvent, bool) {
	if e.state == Done {
		return MergeEvent{}, false
	}
	live := len(e.members)
	if live < minClusterCount || live < 2 {
		e.state = Done
		e.log.Debug("linkage done", zap.Int("live", live), zap.Int("min_clusters", minClusterCount))
		return MergeEvent{}, false
	}

	return e.mergeStep(), true
}

// mergeStep selects the best adjacent pair and commits the merge.
// Any inconsistency between ring and tables panics.
func (e *Engine) mergeStep() MergeEvent {
	bestA, bestB := -1, -1
	best := math.Inf(-1)
	for a, b := range e.order.Pairs() {
		sc := e.linkScore(e.mustMembers(a), e.mustMembers(b))
		if sc > best {
			bestA, bestB, best = a, b, sc
		}
	}
	if bestA < 0 {
		panic("linkage: no adjacent pair on a ring with two or more clusters")
	}

	ma, mb := e.mustMembers(bestA), e.mustMembers(bestB)
	merged := make([]int, 0, len(ma)+len(mb))
	merged = append(merged, ma...)
	merged = append(merged, mb...)

	id := e.nextID
	e.nextID++

	delete(e.members, bestA)
	delete(e.members, bestB)
	delete(e.shapes, bestA)
	delete(e.shapes, bestB)

	if err := e.order.Replace(bestA, id); err != nil {
		panic(fmt.Sprintf("linkage: ring replace %d→%d: %v", bestA, id, err))
	}
	if err := e.order.Remove(bestB); err != nil {
		panic(fmt.Sprintf("linkage: ring remove %d: %v", bestB, err))
	}

	pts := make([]orb.Point, len(merged))
	for k, item := range merged {
		pts[k] = e.points[item]
	}
	shape, err := e.fitter.Fit(pts)
	if err != nil {
		// Points were validated by New; a failure here is a defect.
		panic(fmt.Sprintf("linkage: fit cluster %d: %v", id, err))
	}

	e.members[id] = merged
	e.shapes[id] = shape
	e.step++

	ev := MergeEvent{
		Step:    e.step,
		A:       bestA,
		B:       bestB,
		Score:   best,
		Cluster: Cluster{ID: id, Members: append([]int(nil), merged...)},
		Shape:   shape,
		Live:    len(e.members),
	}
	e.log.Debug("linkage merge",
		zap.Int("step", ev.Step),
		zap.Int("a", ev.A),
		zap.Int("b", ev.B),
		zap.Int("cluster", id),
		zap.Float64("score", ev.Score),
		zap.Int("live", ev.Live),
	)

	return ev
}

// linkScore is Score without validation, for ids already known to be live.
func (e *Engine) linkScore(a, b []int) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			v, err := e.sim.At(i, j)
			if err != nil {
				panic(fmt.Sprintf("linkage: similarity(%d,%d): %v", i, j, err))
			}
			sum += v
		}
	}

	return sum / float64(len(a)*len(b))
}

func (e *Engine) mustMembers(id int) []int {
	m, ok := e.members[id]
	if !ok {
		panic(fmt.Sprintf("linkage: ring holds id %d with no cluster", id))
	}

	return m
}

// State returns Active or Done.
func (e *Engine) State() State { return e.state }

// Live returns the number of live clusters.
func (e *Engine) Live() int { return len(e.members) }

// Order returns live cluster ids in ring scan order.
func (e *Engine) Order() []int { return e.order.IDs() }

// Clusters returns copies of the live clusters in ring scan order.
func (e *Engine) Clusters() []Cluster {
	ids := e.order.IDs()
	out := make([]Cluster, 0, len(ids))
	for _, id := range ids {
		out = append(out, Cluster{ID: id, Members: e.mustMembers(id)}.clone())
	}

	return out
}

// Shape returns the bounding shape of a live cluster.
func (e *Engine) Shape(id int) (ellipse.Shape, bool) {
	s, ok := e.shapes[id]
	return s, ok
}

// Shapes returns a copy of the shape table keyed by live cluster id.
func (e *Engine) Shapes() map[int]ellipse.Shape {
	out := make(map[int]ellipse.Shape, len(e.shapes))
	for id, s := range e.shapes {
		out[id] = s
	}

	return out
}
