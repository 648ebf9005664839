package layout_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringlink/layout"
)

func TestCircle_Positions(t *testing.T) {
	pts, err := layout.Circle(12, layout.DefaultRadius)
	require.NoError(t, err)
	require.Len(t, pts, 12)

	for k, p := range pts {
		assert.InDelta(t, layout.DefaultRadius, planar.Distance(orb.Point{0, 0}, p), 1e-12, "k=%d", k)
	}
	assert.InDelta(t, 3.0, pts[0].X(), 1e-12)
	assert.InDelta(t, 0.0, pts[0].Y(), 1e-12)
	assert.InDelta(t, 3.0, pts[3].Y(), 1e-12) // quarter turn

	// neighbours are equidistant
	d := planar.Distance(pts[0], pts[1])
	for k := range pts {
		assert.InDelta(t, d, planar.Distance(pts[k], pts[(k+1)%len(pts)]), 1e-12)
	}
}

func TestCircle_Errors(t *testing.T) {
	_, err := layout.Circle(0, 1)
	require.ErrorIs(t, err, layout.ErrTooFewItems)
	_, err = layout.Circle(3, 0)
	require.ErrorIs(t, err, layout.ErrBadRadius)
	_, err = layout.Circle(3, math.Inf(1))
	require.ErrorIs(t, err, layout.ErrBadRadius)
	_, err = layout.Circle(3, math.NaN())
	require.ErrorIs(t, err, layout.ErrBadRadius)
}

func TestAlongOrder(t *testing.T) {
	slots, err := layout.Circle(4, 2)
	require.NoError(t, err)

	pts, err := layout.AlongOrder([]int{2, 0, 3, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, slots[0], pts[2])
	assert.Equal(t, slots[1], pts[0])
	assert.Equal(t, slots[2], pts[3])
	assert.Equal(t, slots[3], pts[1])

	_, err = layout.AlongOrder([]int{0, 0, 1}, 2)
	require.ErrorIs(t, err, layout.ErrBadOrder)
	_, err = layout.AlongOrder([]int{0, 5}, 2)
	require.ErrorIs(t, err, layout.ErrBadOrder)
	_, err = layout.AlongOrder(nil, 2)
	require.ErrorIs(t, err, layout.ErrTooFewItems)
}
