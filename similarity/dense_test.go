package similarity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringlink/similarity"
)

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]float64{
		{1, 0.5},
		{0.5, 1},
	}
	d, err := similarity.New(rows)
	require.NoError(t, err)
	require.Equal(t, 2, d.N())

	rows[0][1] = 0.9 // mutate source; matrix must not change
	v, err := d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"empty", nil, similarity.ErrBadShape},
		{"ragged", [][]float64{{1, 0.5}, {0.5}}, similarity.ErrNonSquare},
		{"nan", [][]float64{{1, math.NaN()}, {0.5, 1}}, similarity.ErrNaNInf},
		{"inf diagonal", [][]float64{{math.Inf(1), 0.5}, {0.5, 1}}, similarity.ErrNaNInf},
		{"zero", [][]float64{{1, 0}, {0, 1}}, similarity.ErrOutOfDomain},
		{"above one", [][]float64{{1, 1.2}, {1.2, 1}}, similarity.ErrOutOfDomain},
		{"asymmetric", [][]float64{{1, 0.5}, {0.6, 1}}, similarity.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := similarity.New(tc.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestNew_DiagonalUnrestricted(t *testing.T) {
	_, err := similarity.New([][]float64{{0, 0.3}, {0.3, 7}})
	require.NoError(t, err)
}

func TestNew_EpsilonTolerance(t *testing.T) {
	rows := [][]float64{{1, 0.5}, {0.5000001, 1}}
	_, err := similarity.New(rows)
	require.ErrorIs(t, err, similarity.ErrAsymmetry)

	_, err = similarity.New(rows, similarity.WithEpsilon(1e-3))
	require.NoError(t, err)
}

func TestAt_OutOfRange(t *testing.T) {
	d, err := similarity.New([][]float64{{1}})
	require.NoError(t, err)
	for _, ij := range [][2]int{{-1, 0}, {0, 1}, {1, 0}} {
		_, err = d.At(ij[0], ij[1])
		require.ErrorIs(t, err, similarity.ErrOutOfRange)
	}
}

func TestRandom_DeterministicAndValid(t *testing.T) {
	a, err := similarity.Random(12, similarity.WithSeed(20250717))
	require.NoError(t, err)
	b, err := similarity.Random(12, similarity.WithSeed(20250717))
	require.NoError(t, err)
	require.Equal(t, a.Rows(), b.Rows())

	// The generated matrix must pass New's own validation.
	_, err = similarity.New(a.Rows())
	require.NoError(t, err)

	for i := 0; i < a.N(); i++ {
		v, _ := a.At(i, i)
		assert.Equal(t, 1.0, v)
		for j := 0; j < a.N(); j++ {
			if i == j {
				continue
			}
			v, _ = a.At(i, j)
			assert.GreaterOrEqual(t, v, similarity.DefaultLow)
			assert.Less(t, v, similarity.DefaultHigh)
		}
	}
}

func TestRandom_SeedZeroUsesDefault(t *testing.T) {
	a, err := similarity.Random(5, similarity.WithSeed(0))
	require.NoError(t, err)
	b, err := similarity.Random(5)
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())
}

func TestRandom_Bounds(t *testing.T) {
	d, err := similarity.Random(6, similarity.WithBounds(0.4, 0.5), similarity.WithSeed(3))
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if i == j {
				continue
			}
			v, _ := d.At(i, j)
			assert.True(t, v >= 0.4 && v < 0.5, "S[%d,%d]=%v", i, j, v)
		}
	}

	_, err = similarity.Random(0)
	require.ErrorIs(t, err, similarity.ErrBadShape)

	assert.Panics(t, func() { similarity.WithBounds(0, 0.5) })
	assert.Panics(t, func() { similarity.WithBounds(0.6, 0.5) })
	assert.Panics(t, func() { similarity.WithEpsilon(-1) })
}
