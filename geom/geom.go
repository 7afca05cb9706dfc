package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quad is the ordered corner set (I00, I10, I11, I01) of a quadrilateral.
type Quad [4]mgl64.Vec2

// Edge returns the endpoints of edge k (0..3), from corner k to corner (k+1)%4.
func (q Quad) Edge(k int) (b, e mgl64.Vec2) {
	return q[k%4], q[(k+1)%4]
}

// DistanceToEdges returns the perpendicular distance from p to the infinite
// line through each of the 4 edges of quad, in edge order:
//
//	|(xe−xb)(yb−y) − (ye−yb)(xb−x)| / sqrt((xe−xb)² + (ye−yb)²)
//
// A zero-length edge has no supporting line; its slot is +Inf.
func DistanceToEdges(quad Quad, p mgl64.Vec2) [4]float64 {
	var out [4]float64
	for k := 0; k < 4; k++ {
		b, e := quad.Edge(k)
		d := e.Sub(b)
		length := d.Len()
		if length == 0 {
			out[k] = math.Inf(1)
			continue
		}
		num := d.X()*(b.Y()-p.Y()) - d.Y()*(b.X()-p.X())
		out[k] = math.Abs(num) / length
	}
	return out
}

// Cross returns the z component of (a−o)×(b−o). Positive means o→a→b turns left.
func Cross(o, a, b mgl64.Vec2) float64 {
	oa, ob := a.Sub(o), b.Sub(o)
	return oa.X()*ob.Y() - oa.Y()*ob.X()
}

// SignedArea is the shoelace area of quad; positive for counter-clockwise winding.
func SignedArea(quad Quad) float64 {
	var s float64
	for k := 0; k < 4; k++ {
		b, e := quad.Edge(k)
		s += b.X()*e.Y() - e.X()*b.Y()
	}
	return s / 2
}

// IsStrictlyConvex reports whether all 4 corners turn the same way with a
// non-zero turn, in either winding. Quads failing this test can produce an
// invalid triangle pair when split along the I00–I11 diagonal.
func IsStrictlyConvex(quad Quad) bool {
	var pos, neg int
	for k := 0; k < 4; k++ {
		c := Cross(quad[k], quad[(k+1)%4], quad[(k+2)%4])
		switch {
		case c > 0:
			pos++
		case c < 0:
			neg++
		default:
			return false
		}
	}
	return pos == 4 || neg == 4
}

// Centroid returns the vertex average of quad.
func Centroid(quad Quad) mgl64.Vec2 {
	var c mgl64.Vec2
	for _, v := range quad {
		c = c.Add(v)
	}
	return c.Mul(0.25)
}
