// Package coloring attaches externally assigned color labels to a quadmesh.Mesh
// and ranks the seed ("extremal") quads of every color. A *Map satisfies
// sticker.Coloring.
//
// Seed ranking for ExtremalElements(c), first key wins:
//
//  1. corner rank: 0 when the quad has exactly two same-colored neighbours on
//     consecutive slots (a patch corner), 1 otherwise;
//  2. smallest non-negative boundary index among its vertices, when boundary
//     indices were supplied (quads without one sort last);
//  3. smallest centroid x+y (the lower-left corner of the region);
//  4. smallest centroid y;
//  5. smallest quad index.
package coloring

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/quadmesh/quadmesh"
)

var (
	// ErrNilMesh indicates New was called without a mesh.
	ErrNilMesh = errors.New("coloring: mesh is nil")
	// ErrColorCount indicates the quad color slice does not match the quad count.
	ErrColorCount = errors.New("coloring: one color per quad required")
	// ErrVertexCount indicates a per-vertex slice does not match the vertex count.
	ErrVertexCount = errors.New("coloring: one value per vertex required")
)

// Map holds per-quad colors and optional per-vertex data for one mesh.
type Map struct {
	mesh          *quadmesh.Mesh
	quadColors    []int
	vertexColors  []int
	boundaryIndex []int
}

// Option customizes New.
type Option func(*Map)

// WithVertexColors stores one color per vertex.
func WithVertexColors(colors []int) Option {
	return func(m *Map) {
		m.vertexColors = append([]int(nil), colors...)
	}
}

// WithBoundaryIndex stores one boundary index per vertex; negative means the
// vertex is not on a numbered boundary. Used to rank seeds.
func WithBoundaryIndex(index []int) Option {
	return func(m *Map) {
		m.boundaryIndex = append([]int(nil), index...)
	}
}

// New checks the label counts against mesh and returns the Map.
func New(mesh *quadmesh.Mesh, quadColors []int, opts ...Option) (*Map, error) {
	if mesh == nil {
		return nil, ErrNilMesh
	}
	if len(quadColors) != mesh.NumQuads() {
		return nil, fmt.Errorf("New: %d colors for %d quads: %w", len(quadColors), mesh.NumQuads(), ErrColorCount)
	}
	m := &Map{mesh: mesh, quadColors: append([]int(nil), quadColors...)}
	for _, opt := range opts {
		opt(m)
	}
	if m.vertexColors != nil && len(m.vertexColors) != mesh.NumVertices() {
		return nil, fmt.Errorf("New: %d vertex colors for %d vertices: %w",
			len(m.vertexColors), mesh.NumVertices(), ErrVertexCount)
	}
	if m.boundaryIndex != nil && len(m.boundaryIndex) != mesh.NumVertices() {
		return nil, fmt.Errorf("New: %d boundary indices for %d vertices: %w",
			len(m.boundaryIndex), mesh.NumVertices(), ErrVertexCount)
	}
	return m, nil
}

// Color returns the color of quad q.
func (m *Map) Color(q int) int { return m.quadColors[q] }

// VertexColor returns the color of vertex v; ok is false when no vertex colors
// were supplied.
func (m *Map) VertexColor(v int) (color int, ok bool) {
	if m.vertexColors == nil {
		return 0, false
	}
	return m.vertexColors[v], true
}

// QuadsOfColor returns the quads labelled color, ascending.
func (m *Map) QuadsOfColor(color int) []int {
	var out []int
	for q, c := range m.quadColors {
		if c == color {
			out = append(out, q)
		}
	}
	return out
}

// seedKey is the sort key of one candidate seed.
type seedKey struct {
	quad     int
	rank     int
	boundary int
	sum, y   float64
}

// ExtremalElements returns every quad of color, best seed first.
func (m *Map) ExtremalElements(color int) []int {
	quads := m.QuadsOfColor(color)
	keys := make([]seedKey, 0, len(quads))
	for _, q := range quads {
		c := m.mesh.Centroid(q)
		keys = append(keys, seedKey{
			quad:     q,
			rank:     m.cornerRank(q),
			boundary: m.minBoundary(q),
			sum:      c.X() + c.Y(),
			y:        c.Y(),
		})
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		switch {
		case a.rank != b.rank:
			return a.rank < b.rank
		case a.boundary != b.boundary:
			return a.boundary < b.boundary
		case a.sum != b.sum:
			return a.sum < b.sum
		case a.y != b.y:
			return a.y < b.y
		}
		return a.quad < b.quad
	})
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = k.quad
	}
	return out
}

// cornerRank is 0 for a quad with exactly two same-colored neighbours on
// consecutive slots, 1 otherwise.
func (m *Map) cornerRank(q int) int {
	color := m.quadColors[q]
	nb := m.mesh.Neighbors(q)
	var same []int
	for k, v := range nb {
		if v != quadmesh.NoNeighbor && m.quadColors[v] == color {
			same = append(same, k)
		}
	}
	if len(same) == 2 && (same[1]-same[0] == 1 || same[1]-same[0] == 3) {
		return 0
	}
	return 1
}

// minBoundary is the smallest non-negative boundary index over q's vertices,
// or MaxInt when there is none.
func (m *Map) minBoundary(q int) int {
	best := math.MaxInt
	if m.boundaryIndex == nil {
		return best
	}
	for _, v := range m.mesh.Quad(q) {
		if b := m.boundaryIndex[v]; b >= 0 && b < best {
			best = b
		}
	}
	return best
}
