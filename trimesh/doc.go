// Package trimesh computes edge adjacency for a planar triangle list.
//
// What:
//
//   - Neighbors(tris) returns, for every triangle i and local edge j, the index
//     of the triangle sharing edge (tris[i][j], tris[i][(j+1)%3]), or -1 when
//     the edge lies on the mesh boundary.
//   - EdgeOracle is the default Oracle implementation; callers that own another
//     triangulation engine can satisfy Oracle themselves.
//
// How:
//
//   - Every local edge gets a canonical key (min vertex, max vertex).
//   - Edges are sorted by key; equal neighbouring keys are matched and both
//     sides of the match are written, so the table is symmetric by construction.
//
// Complexity:
//
//   - Neighbors: O(T log T) time, O(T) memory, T = number of triangles.
//
// Errors:
//
//   - ErrNegativeIndex: a triangle references a negative vertex index.
//   - ErrDegenerateTriangle: a triangle repeats a vertex.
//   - ErrNonManifoldEdge: more than two triangles share one edge.
package trimesh
