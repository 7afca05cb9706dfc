// Package sticker discovers rectangular "tensor-product" patches of
// same-colored quads inside an otherwise unstructured quad mesh.
//
// What:
//
//   - Extractor works against two small capabilities: a Topology (quad count
//     and 4-slot neighbour table, e.g. *quadmesh.Mesh) and a Coloring (color per
//     quad and an ordered list of extremal seed quads per color).
//   - FindElements returns, per color, a Patch: stages (rows) of quad indices,
//     all of equal length, so patch[stage][element] is a structured sub-grid.
//   - Regions lists every 4-connected same-colored region of a color, which
//     shows when a color spans more than the one component FindElements extracts.
//
// How (per color c):
//
//  1. seed = ExtremalElements(c)[0].
//  2. Usable directions are the seed's slots whose neighbour exists and has
//     color c, ascending. At least two are required: the seed must be a corner.
//  3. Stage 0 walks from the seed along directions[0] while the next quad is
//     valid, colored c and unvisited.
//  4. The stage base then steps along directions[1] under the same rule; every
//     successful step starts a new stage walked along directions[0].
//  5. Every stage must have the length of stage 0, else the color fails with
//     ErrNotTensorProduct. No partial patch is returned.
//
// Visited markers live only for the duration of one color's extraction, so
// an Extractor can be reused, and shared between goroutines, without earlier
// calls leaking into later ones. Every walk is additionally bounded by the
// quad count.
//
// Complexity:
//
//   - FindColor: O(patch size). FindElements over all colors: O(Q).
//   - Regions: O(Q) time and memory.
//
// Errors:
//
//   - ErrNilTopology, ErrNilColoring: New called without a capability.
//   - *TopologyError wrapping ErrNoSeed, ErrBadSeed, ErrSeedNotCorner or
//     ErrNotTensorProduct; match with errors.Is / errors.As.
package sticker
