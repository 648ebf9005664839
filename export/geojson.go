// SPDX-License-Identifier: MIT
// Package: ringlink/export
//
// geojson.go — cluster shapes and merge events as GeoJSON polygons.
//
// Every feature is a Polygon whose single ring samples the ellipse
// boundary (see ellipse.Shape.Ring). Properties:
//
//	step      0 for the initial singletons, else MergeEvent.Step
//	cluster   cluster id
//	members   original item indices
//	dx, dy    half-axes
//	angle     rotation in radians
//	merged_a  merge events only
//	merged_b  merge events only
//	score     merge events only

package export

import (
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/ringlink/ellipse"
	"github.com/katalvlaran/ringlink/linkage"
)

// Property keys.
const (
	PropStep    = "step"
	PropCluster = "cluster"
	PropMembers = "members"
	PropDX      = "dx"
	PropDY      = "dy"
	PropAngle   = "angle"
	PropMergedA = "merged_a"
	PropMergedB = "merged_b"
	PropScore   = "score"
)

// ShapeFeature returns a polygon feature for one cluster shape. The feature
// ID is the cluster id. segments < 3 selects ellipse.DefaultRingSegments.
func ShapeFeature(id int, members []int, shape ellipse.Shape, segments int) *geojson.Feature {
	f := geojson.NewFeature(orb.Polygon{shape.Ring(segments)})
	f.ID = id
	f.Properties[PropCluster] = id
	f.Properties[PropMembers] = slices.Clone(members)
	f.Properties[PropDX] = shape.DX
	f.Properties[PropDY] = shape.DY
	f.Properties[PropAngle] = shape.Angle

	return f
}

// EventFeature returns the feature for one merge event.
func EventFeature(ev linkage.MergeEvent, segments int) *geojson.Feature {
	f := ShapeFeature(ev.Cluster.ID, ev.Cluster.Members, ev.Shape, segments)
	f.Properties[PropStep] = ev.Step
	f.Properties[PropMergedA] = ev.A
	f.Properties[PropMergedB] = ev.B
	f.Properties[PropScore] = ev.Score

	return f
}

// Events builds the full animation record of a run: one step-0 feature per
// singleton shape in initial (keyed by item index, ascending), then one
// feature per event in the given order.
func Events(initial map[int]ellipse.Shape, events []linkage.MergeEvent, segments int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	ids := make([]int, 0, len(initial))
	for id := range initial {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		f := ShapeFeature(id, []int{id}, initial[id], segments)
		f.Properties[PropStep] = 0
		fc.Append(f)
	}
	for _, ev := range events {
		fc.Append(EventFeature(ev, segments))
	}

	return fc
}

// Clusters returns one feature per live cluster, in the given order. Shapes
// missing from the table are skipped.
func Clusters(clusters []linkage.Cluster, shapes map[int]ellipse.Shape, segments int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range clusters {
		s, ok := shapes[c.ID]
		if !ok {
			continue
		}
		fc.Append(ShapeFeature(c.ID, c.Members, s, segments))
	}

	return fc
}
