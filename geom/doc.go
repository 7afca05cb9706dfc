// Package geom holds the small, stateless 2D helpers used around quad meshes:
// point-to-edge-line distances, signed areas and the convexity test applied
// before a quad is split along its I00–I11 diagonal.
//
// Points are mgl64.Vec2 values. A quad is the 4 ordered corners
// (I00, I10, I11, I01); edge k runs from corner k to corner (k+1)%4.
//
// Complexity: every function is O(1).
package geom
