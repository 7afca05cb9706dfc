package quadmesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/quadmesh/geom"
)

// NoNeighbor marks a quad edge on the mesh boundary.
const NoNeighbor = -1

// Mesh is an immutable quad mesh with precomputed triangle split and
// 4-direction neighbour table.
type Mesh struct {
	x, y      []float64
	quads     [][4]int
	triangles [][3]int
	triNbrs   [][3]int
	neighbors [][4]int
}

// New validates the input, splits every quad along its I00–I11 diagonal and
// derives the quad neighbour table through the configured oracle.
// Inputs are copied; later changes to x, y or quads do not affect the Mesh.
func New(x, y []float64, quads [][4]int, opts ...Option) (*Mesh, error) {
	if quads == nil {
		return nil, fmt.Errorf("New: %w", ErrNoQuads)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("New: len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrCoordinateMismatch)
	}
	cfg := newConfig(opts...)

	m := &Mesh{
		x:     append([]float64(nil), x...),
		y:     append([]float64(nil), y...),
		quads: append([][4]int(nil), quads...),
	}
	n := len(m.x)
	for q, quad := range m.quads {
		for _, v := range quad {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("New: quad %d references vertex %d of %d: %w", q, v, n, ErrVertexIndex)
			}
		}
		if cfg.checkConvex && !geom.IsStrictlyConvex(m.corners(q)) {
			return nil, fmt.Errorf("New: quad %d %v: %w", q, quad, ErrDegenerateQuad)
		}
	}

	m.triangles = splitQuads(m.quads)
	nbrs, err := cfg.oracle.Neighbors(m.triangles)
	if err != nil {
		return nil, fmt.Errorf("New: %w: %w", ErrAdjacency, err)
	}
	if len(nbrs) != len(m.triangles) {
		return nil, fmt.Errorf("New: oracle returned %d rows for %d triangles: %w",
			len(nbrs), len(m.triangles), ErrAdjacency)
	}
	m.triNbrs = nbrs
	m.neighbors = m.quadNeighbors()

	return m, nil
}

// splitQuads returns T1=(I00,I10,I11), T2=(I00,I11,I01) per quad, in quad order.
func splitQuads(quads [][4]int) [][3]int {
	tris := make([][3]int, 0, 2*len(quads))
	for _, q := range quads {
		i00, i10, i11, i01 := q[0], q[1], q[2], q[3]
		tris = append(tris,
			[3]int{i00, i10, i11},
			[3]int{i00, i11, i01},
		)
	}
	return tris
}

// quadNeighbors reads T1 slots [0,1] and T2 slots [1,2] for each quad and maps
// each valid triangle to its owning quad.
func (m *Mesh) quadNeighbors() [][4]int {
	out := make([][4]int, len(m.quads))
	for q := range m.quads {
		t1, t2 := m.triNbrs[2*q], m.triNbrs[2*q+1]
		slots := [4]int{t1[0], t1[1], t2[1], t2[2]}
		for k, t := range slots {
			if t < 0 || t >= len(m.triangles) {
				out[q][k] = NoNeighbor
				continue
			}
			out[q][k] = m.Ancestor(t)
		}
	}
	return out
}

// NumQuads returns the number of quads.
func (m *Mesh) NumQuads() int { return len(m.quads) }

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.x) }

// NumTriangles returns 2·NumQuads.
func (m *Mesh) NumTriangles() int { return len(m.triangles) }

// Triangles returns a copy of the split triangle list: T1 then T2 per quad,
// quads in input order.
func (m *Mesh) Triangles() [][3]int {
	return append([][3]int(nil), m.triangles...)
}

// TriangleNeighbors returns a copy of the oracle's neighbour-by-edge table.
func (m *Mesh) TriangleNeighbors() [][3]int {
	return append([][3]int(nil), m.triNbrs...)
}

// Ancestor returns the quad owning triangle t, or -1 if t is out of range.
func (m *Mesh) Ancestor(t int) int {
	if t < 0 || t >= len(m.triangles) {
		return NoNeighbor
	}
	return t / 2
}

// Sons returns the two triangle indices split from quad q.
func (m *Mesh) Sons(q int) [2]int {
	return [2]int{2 * q, 2*q + 1}
}

// Neighbors returns the 4 neighbour slots of quad q in its edge order; each is a
// quad index or -1. An out-of-range q yields four -1 slots.
func (m *Mesh) Neighbors(q int) [4]int {
	if q < 0 || q >= len(m.neighbors) {
		return [4]int{NoNeighbor, NoNeighbor, NoNeighbor, NoNeighbor}
	}
	return m.neighbors[q]
}

// IsBoundary reports whether quad q has at least one edge on the mesh boundary.
func (m *Mesh) IsBoundary(q int) bool {
	for _, n := range m.Neighbors(q) {
		if n == NoNeighbor {
			return true
		}
	}
	return false
}

// Quad returns the vertex indices of quad q.
func (m *Mesh) Quad(q int) [4]int { return m.quads[q] }

// Quads returns a copy of the connectivity table.
func (m *Mesh) Quads() [][4]int { return append([][4]int(nil), m.quads...) }

// Vertex returns the position of vertex v.
func (m *Mesh) Vertex(v int) mgl64.Vec2 { return mgl64.Vec2{m.x[v], m.y[v]} }

// X returns a copy of the vertex x coordinates.
func (m *Mesh) X() []float64 { return append([]float64(nil), m.x...) }

// Y returns a copy of the vertex y coordinates.
func (m *Mesh) Y() []float64 { return append([]float64(nil), m.y...) }

// corners gathers the positions of quad q in winding order.
func (m *Mesh) corners(q int) geom.Quad {
	var c geom.Quad
	for k, v := range m.quads[q] {
		c[k] = m.Vertex(v)
	}
	return c
}

// Corners returns the 4 corner positions of quad q.
func (m *Mesh) Corners(q int) geom.Quad { return m.corners(q) }

// Centroid returns the vertex average of quad q.
func (m *Mesh) Centroid(q int) mgl64.Vec2 { return geom.Centroid(m.corners(q)) }

// DistanceToEdges returns the distance from (x,y) to the line through each
// edge of quad q, in edge order.
func (m *Mesh) DistanceToEdges(q int, x, y float64) [4]float64 {
	return geom.DistanceToEdges(m.corners(q), mgl64.Vec2{x, y})
}
