package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func unitSquare() Quad {
	return Quad{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestDistanceToEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		quad Quad
		p    mgl64.Vec2
		want [4]float64
	}{
		{"center", unitSquare(), mgl64.Vec2{0.5, 0.5}, [4]float64{0.5, 0.5, 0.5, 0.5}},
		{"on bottom edge", unitSquare(), mgl64.Vec2{0.25, 0}, [4]float64{0, 0.75, 1, 0.25}},
		{"on right edge", unitSquare(), mgl64.Vec2{1, 0.3}, [4]float64{0.3, 0, 0.7, 1}},
		{"outside", unitSquare(), mgl64.Vec2{3, -2}, [4]float64{2, 2, 3, 3}},
		{"corner", unitSquare(), mgl64.Vec2{0, 0}, [4]float64{0, 1, 1, 0}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceToEdges(tc.quad, tc.p)
			for k := range got {
				require.InDelta(t, tc.want[k], got[k], 1e-12, "edge %d", k)
			}
		})
	}
}

// TestDistanceToEdges_Slanted uses a rotated rectangle whose edge lines are
// diagonal: the point (1,0) lies on edge 0 and is sqrt(2) away from edge 2.
func TestDistanceToEdges_Slanted(t *testing.T) {
	q := Quad{{0, -1}, {2, 1}, {1, 2}, {-1, 0}}
	got := DistanceToEdges(q, mgl64.Vec2{1, 0})
	require.InDelta(t, 0, got[0], 1e-12)
	require.InDelta(t, math.Sqrt2, got[2], 1e-12)
}

func TestDistanceToEdges_ZeroLengthEdge(t *testing.T) {
	q := Quad{{0, 0}, {0, 0}, {1, 1}, {0, 1}}
	got := DistanceToEdges(q, mgl64.Vec2{0.5, 0.5})
	require.True(t, math.IsInf(got[0], 1))
	require.False(t, math.IsInf(got[1], 0))
}

func TestSignedArea(t *testing.T) {
	require.InDelta(t, 1.0, SignedArea(unitSquare()), 1e-12)

	cw := Quad{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	require.InDelta(t, -1.0, SignedArea(cw), 1e-12)
}

func TestIsStrictlyConvex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		quad Quad
		want bool
	}{
		{"ccw square", unitSquare(), true},
		{"cw square", Quad{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, true},
		{"trapezoid", Quad{{0, 0}, {4, 0}, {3, 1}, {1, 1}}, true},
		{"reflex corner", Quad{{0, 0}, {2, 0}, {0.5, 0.5}, {0, 2}}, false},
		{"bow tie", Quad{{0, 0}, {1, 1}, {1, 0}, {0, 1}}, false},
		{"collinear corner", Quad{{0, 0}, {1, 0}, {2, 0}, {0, 1}}, false},
		{"repeated vertex", Quad{{0, 0}, {0, 0}, {1, 1}, {0, 1}}, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsStrictlyConvex(tc.quad))
		})
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid(Quad{{0, 0}, {2, 0}, {2, 4}, {0, 4}})
	require.InDelta(t, 1.0, c.X(), 1e-12)
	require.InDelta(t, 2.0, c.Y(), 1e-12)
}
