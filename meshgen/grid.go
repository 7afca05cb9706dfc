// SPDX-License-Identifier: MIT
// Package: quadmesh/meshgen
//
// grid.go: Grid(rows, cols) generator.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooSmall).
//   • Vertices in row-major order, (rows+1)*(cols+1) of them.
//   • Quads in row-major order, counter-clockwise winding for positive spacing.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time and space: O(rows*cols).

package meshgen

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates rows or cols below the minimum of 1.
var ErrTooSmall = errors.New("meshgen: grid dimension too small")

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid is a generated structured quad mesh.
type Grid struct {
	Rows, Cols int
	X, Y       []float64
	Quads      [][4]int
	Colors     []int // per quad, Colors[Index(r,c)]
}

// NewGrid generates a rows×cols grid of unit quads (see options for spacing,
// origin and colors).
func NewGrid(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooSmall)
	}
	cfg := newGridConfig(opts...)

	g := &Grid{Rows: rows, Cols: cols}

	nv := (rows + 1) * (cols + 1)
	g.X = make([]float64, 0, nv)
	g.Y = make([]float64, 0, nv)
	for i := 0; i <= rows; i++ {
		for j := 0; j <= cols; j++ {
			g.X = append(g.X, cfg.originX+float64(j)*cfg.dx)
			g.Y = append(g.Y, cfg.originY+float64(i)*cfg.dy)
		}
	}

	g.Quads = make([][4]int, 0, rows*cols)
	g.Colors = make([]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Quads = append(g.Quads, [4]int{
				g.vertex(r, c),
				g.vertex(r, c+1),
				g.vertex(r+1, c+1),
				g.vertex(r+1, c),
			})
			g.Colors = append(g.Colors, cfg.colorFn(r, c))
		}
	}

	return g, nil
}

// vertex maps grid node (i,j) to its row-major vertex index.
func (g *Grid) vertex(i, j int) int {
	return i*(g.Cols+1) + j
}

// Index maps quad (r,c) to its row-major quad index.
func (g *Grid) Index(r, c int) int {
	return r*g.Cols + c
}

// Cell converts a quad index back to (r,c).
func (g *Grid) Cell(q int) (r, c int) {
	return q / g.Cols, q % g.Cols
}
