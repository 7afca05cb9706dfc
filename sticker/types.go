package sticker

import (
	"errors"
	"fmt"
)

// Sentinel errors for patch extraction.
var (
	// ErrNilTopology is returned by New when no Topology is given.
	ErrNilTopology = errors.New("sticker: topology is nil")
	// ErrNilColoring is returned by New when no Coloring is given.
	ErrNilColoring = errors.New("sticker: coloring is nil")
	// ErrNoSeed indicates the coloring returned no extremal quad for a color.
	ErrNoSeed = errors.New("sticker: no extremal element for color")
	// ErrBadSeed indicates the seed is out of range or has another color.
	ErrBadSeed = errors.New("sticker: extremal element is not a quad of this color")
	// ErrSeedNotCorner indicates fewer than two usable walk directions at the seed.
	ErrSeedNotCorner = errors.New("sticker: seed has fewer than two same-colored neighbors")
	// ErrNotTensorProduct indicates stages of unequal length.
	ErrNotTensorProduct = errors.New("sticker: not a tensor-product structure")
)

// NoNeighbor marks a boundary slot in a Topology's neighbour table.
const NoNeighbor = -1

// Topology is the read-only quad adjacency an Extractor walks.
// *quadmesh.Mesh satisfies it.
type Topology interface {
	NumQuads() int
	// Neighbors returns the 4 neighbour slots of q, each a quad index or -1.
	Neighbors(q int) [4]int
}

// Coloring supplies the per-quad labels and the seeds of every color.
type Coloring interface {
	Color(q int) int
	// ExtremalElements returns candidate seeds for color; the first is used.
	ExtremalElements(color int) []int
}

// Patch is an ordered list of stages, each an ordered list of quad indices.
// All stages have the same length.
type Patch [][]int

// Dims returns the number of stages and the common stage length.
func (p Patch) Dims() (stages, elements int) {
	if len(p) == 0 {
		return 0, 0
	}
	return len(p), len(p[0])
}

// Quads returns all quad indices of p, stage by stage.
func (p Patch) Quads() []int {
	var out []int
	for _, stage := range p {
		out = append(out, stage...)
	}
	return out
}

// TopologyError reports why a color could not be extracted.
type TopologyError struct {
	Color int
	Seed  int // -1 when no seed was available
	Stage int // offending stage for ErrNotTensorProduct, else -1
	Err   error
}

func (e *TopologyError) Error() string {
	if e.Stage >= 0 {
		return fmt.Sprintf("color %d (seed %d, stage %d): %v", e.Color, e.Seed, e.Stage, e.Err)
	}
	return fmt.Sprintf("color %d (seed %d): %v", e.Color, e.Seed, e.Err)
}

func (e *TopologyError) Unwrap() error { return e.Err }
