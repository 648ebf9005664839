package ellipse

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymEigen2_Diagonal(t *testing.T) {
	first, second := symEigen2(1, 0, 3)
	assert.Equal(t, 3.0, first.value)
	assert.Equal(t, 1.0, second.value)
	assert.Equal(t, [2]float64{0, 1}, [2]float64{first.vx, first.vy})
}

func TestSymEigen2_Reconstructs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 500; k++ {
		a, b, c := rng.NormFloat64()*3, rng.NormFloat64()*3, rng.NormFloat64()*3
		first, second := symEigen2(a, b, c)
		require.GreaterOrEqual(t, first.value, second.value)

		for _, ep := range []eigenPair{first, second} {
			// unit length
			require.InDelta(t, 1.0, math.Hypot(ep.vx, ep.vy), 1e-12)
			// A·v = λ·v
			require.InDelta(t, ep.value*ep.vx, a*ep.vx+b*ep.vy, 1e-9)
			require.InDelta(t, ep.value*ep.vy, b*ep.vx+c*ep.vy, 1e-9)
		}
		// orthogonal
		require.InDelta(t, 0.0, first.vx*second.vx+first.vy*second.vy, 1e-12)
		// trace preserved
		require.InDelta(t, a+c, first.value+second.value, 1e-9)
	}
}

func TestSymEigen2_EqualDiagonal(t *testing.T) {
	// θ = 0 branch: [[2,1],[1,2]] → λ = 3 along (1,1)/√2.
	first, second := symEigen2(2, 1, 2)
	assert.InDelta(t, 3.0, first.value, 1e-12)
	assert.InDelta(t, 1.0, second.value, 1e-12)
	assert.InDelta(t, math.Abs(first.vx), math.Abs(first.vy), 1e-12)
	assert.InDelta(t, first.vx*first.vy, 0.5, 1e-12)
}

func TestAxisRatio_ZeroExtent(t *testing.T) {
	assert.Equal(t, 0.0, axisRatio(0, 0))
	assert.Equal(t, 0.5, axisRatio(1, 2))
}
