// Package meshgen_test checks grid layout, indexing and option handling.
package meshgen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadmesh/meshgen"
)

func TestNewGrid_Layout(t *testing.T) {
	g, err := meshgen.NewGrid(2, 3)
	require.NoError(t, err)

	require.Len(t, g.X, 12)
	require.Len(t, g.Y, 12)
	require.Len(t, g.Quads, 6)
	require.Len(t, g.Colors, 6)

	// quad (1,2): corners v(1,2)=6, v(1,3)=7, v(2,3)=11, v(2,2)=10
	require.Equal(t, [4]int{6, 7, 11, 10}, g.Quads[g.Index(1, 2)])

	r, c := g.Cell(5)
	require.Equal(t, 1, r)
	require.Equal(t, 2, c)

	require.Equal(t, 3.0, g.X[11])
	require.Equal(t, 2.0, g.Y[11])
}

func TestNewGrid_Options(t *testing.T) {
	g, err := meshgen.NewGrid(1, 2,
		meshgen.WithOrigin(10, -5),
		meshgen.WithSpacing(0.5, 2),
		meshgen.WithColorFn(func(r, c int) int { return 10*r + c }),
	)
	require.NoError(t, err)

	require.Equal(t, []float64{10, 10.5, 11, 10, 10.5, 11}, g.X)
	require.Equal(t, []float64{-5, -5, -5, -3, -3, -3}, g.Y)
	require.Equal(t, []int{0, 1}, g.Colors)
}

func TestNewGrid_ColorRows(t *testing.T) {
	g, err := meshgen.NewGrid(2, 2, meshgen.WithColorRows([][]int{
		{1, 2},
		{3},
	}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 0}, g.Colors)
}

func TestNewGrid_TooSmall(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 4}} {
		_, err := meshgen.NewGrid(dims[0], dims[1])
		require.True(t, errors.Is(err, meshgen.ErrTooSmall), "dims %v: got %v", dims, err)
	}
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { meshgen.WithSpacing(0, 1) })
	require.Panics(t, func() { meshgen.WithSpacing(1, -1) })
	require.Panics(t, func() { meshgen.WithColorFn(nil) })
	require.Panics(t, func() { meshgen.WithColorRows(nil) })
}
