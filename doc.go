// Package quadmesh is the module root of the quad-mesh topology and
// tensor-product patch toolkit.
//
// What is in the box?
//
//	• Topology: per-quad 4-direction neighbours derived from a diagonal
//	  triangle split and an edge-matching adjacency oracle
//	• Patch extraction: seeded directional walks ("sticking") that recover
//	  rectangular stage × element grids of same-colored quads
//	• Geometry: distances from a point to the 4 edge lines of a quad,
//	  convexity checks before splitting
//	• I/O and fixtures: node/element table parser, structured grid generator
//
// Packages, in dependency order:
//
//	geom/          stateless 2D helpers (mgl64 vectors)
//	trimesh/       triangle neighbour-by-edge table
//	quadmesh/      immutable Mesh: triangles, ancestors, sons, neighbours
//	sticker/       Extractor: FindElements, FindColor, Regions
//	coloring/      per-quad colors and extremal-seed ranking
//	meshio/        node/element table parsing
//	meshgen/       rows×cols quad grids
//	cmd/quadpatch  command-line front end
//
// Quick ASCII example, a 2×2 grid of one color:
//
//	2───3
//	│               │
//	0───1
//
// yields one patch with stages [0 1] and [2 3].
//
//	go get github.com/katalvlaran/quadmesh
package quadmesh
