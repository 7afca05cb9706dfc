// Package quadmesh owns the vertex coordinates and quad connectivity of a 2D
// quadrilateral mesh and derives its 4-direction neighbour topology.
//
// What:
//
//   - Mesh is built once by New(x, y, quads) and is immutable afterwards; it is
//     safe to share between goroutines and between patch extractions.
//   - Each quad (I00, I10, I11, I01) is split along its I00–I11 diagonal into
//     T1=(I00,I10,I11) at triangle index 2i and T2=(I00,I11,I01) at 2i+1.
//   - The triangle list is handed to a trimesh.Oracle; the quad neighbour
//     table is read back from T1 slots [0,1] and T2 slots [1,2] and mapped to
//     owning quads through Ancestor. The diagonal (T1 slot 2 / T2 slot 0) is
//     always interior and never appears among the quad slots.
//
// Neighbour slot k of a quad is the edge from corner k to corner (k+1)%4:
//
//	I01 ──2── I11
//	 │         │
//	 3         1
//	 │         │
//	I00 ──0── I10
//
// Validation:
//
//   - quads == nil → ErrNoQuads (building quads from scattered points is not supported).
//   - len(x) != len(y) → ErrCoordinateMismatch.
//   - vertex index outside [0, len(x)) → ErrVertexIndex.
//   - non-convex or zero-area quad → ErrDegenerateQuad (skip with WithoutConvexityCheck).
//   - oracle failures (e.g. trimesh.ErrNonManifoldEdge) are wrapped and returned.
//
// Complexity:
//
//   - New: O(Q log Q) with the default oracle, O(Q) for the split and mapping.
//   - Neighbors, Ancestor, Sons: O(1).
package quadmesh
