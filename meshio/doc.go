// Package meshio reads node and element description tables into the arrays
// quadmesh.New and coloring.New consume.
//
// Node table, one record per line ('#' starts a comment):
//
//	id  x  y  ux  uy  boundaryType  boundaryIndex  color
//
// (ux, uy) is an auxiliary per-node vector carried through untouched.
// boundaryType and boundaryIndex are 0 / -1 for interior nodes by convention.
//
// Element table, one quad per line:
//
//	id  n1  n2  n3  n4  color
//
// n1..n4 are node ids in winding order (I00, I10, I11, I01). Ids are arbitrary
// integers; Load maps them to dense indices in file order.
//
// Errors carry the file name and line through github.com/pkg/errors wrapping
// and match the sentinels below with errors.Is.
package meshio
