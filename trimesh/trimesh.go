package trimesh

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNegativeIndex indicates a triangle references a vertex index below zero.
	ErrNegativeIndex = errors.New("trimesh: negative vertex index")
	// ErrDegenerateTriangle indicates a triangle uses the same vertex twice.
	ErrDegenerateTriangle = errors.New("trimesh: degenerate triangle")
	// ErrNonManifoldEdge indicates an edge shared by more than two triangles.
	ErrNonManifoldEdge = errors.New("trimesh: edge shared by more than two triangles")
)

// Boundary marks a triangle edge with no neighbour.
const Boundary = -1

// Oracle turns a triangle list into a neighbour-by-edge table.
// Entry [i][j] is the triangle across edge (tris[i][j], tris[i][(j+1)%3]) or -1.
type Oracle interface {
	Neighbors(tris [][3]int) ([][3]int, error)
}

// EdgeOracle is the default Oracle, matching edges by canonical vertex pairs.
type EdgeOracle struct{}

// Neighbors implements Oracle.
func (EdgeOracle) Neighbors(tris [][3]int) ([][3]int, error) {
	return Neighbors(tris)
}

// halfEdge is one local edge of one triangle.
type halfEdge struct {
	lo, hi int // canonical key: lo < hi
	tri    int // owning triangle
	local  int // local edge number (0..2)
}

// Neighbors builds the symmetric neighbour table for tris.
func Neighbors(tris [][3]int) ([][3]int, error) {
	edges := make([]halfEdge, 0, 3*len(tris))
	for t, tri := range tris {
		for j := 0; j < 3; j++ {
			a, b := tri[j], tri[(j+1)%3]
			if a < 0 || b < 0 {
				return nil, fmt.Errorf("Neighbors: triangle %d: %w", t, ErrNegativeIndex)
			}
			if a == b {
				return nil, fmt.Errorf("Neighbors: triangle %d repeats vertex %d: %w", t, a, ErrDegenerateTriangle)
			}
			if a > b {
				a, b = b, a
			}
			edges = append(edges, halfEdge{lo: a, hi: b, tri: t, local: j})
		}
	}

	// Stable order keeps the matching independent of the sort implementation.
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].lo != edges[j].lo {
			return edges[i].lo < edges[j].lo
		}
		return edges[i].hi < edges[j].hi
	})

	out := make([][3]int, len(tris))
	for i := range out {
		out[i] = [3]int{Boundary, Boundary, Boundary}
	}

	for i := 0; i < len(edges); {
		j := i + 1
		for j < len(edges) && edges[j].lo == edges[i].lo && edges[j].hi == edges[i].hi {
			j++
		}
		switch j - i {
		case 1:
			// boundary edge, already -1
		case 2:
			a, b := edges[i], edges[i+1]
			out[a.tri][a.local] = b.tri
			out[b.tri][b.local] = a.tri
		default:
			return nil, fmt.Errorf("Neighbors: edge (%d,%d) shared by %d triangles: %w",
				edges[i].lo, edges[i].hi, j-i, ErrNonManifoldEdge)
		}
		i = j
	}

	return out, nil
}
