// SPDX-License-Identifier: MIT
// Package: quadmesh/meshgen
//
// Package meshgen produces structured rows×cols quad grids: vertex coordinate
// arrays, quad connectivity and per-quad colors ready for quadmesh.New and
// coloring.New. It is used for fixtures, examples and the quadpatch CLI.
//
// Canonical model:
//   • Vertices are laid out row-major: vertex (i,j) has index i*(cols+1)+j and
//     position (ox + j*dx, oy + i*dy).
//   • Quad (r,c) has index r*cols+c and corners
//     (I00,I10,I11,I01) = (v(r,c), v(r,c+1), v(r+1,c+1), v(r+1,c)),
//     i.e. counter-clockwise when dx,dy > 0.
//   • Neighbour slots of quad (r,c) therefore point to (r-1,c), (r,c+1),
//     (r+1,c) and (r,c-1).
//
// Determinism:
//   • Same rows, cols and options ⇒ identical arrays.
//
// Errors:
//   • ErrTooSmall: rows or cols below 1.
//   • Option constructors panic on meaningless values (non-positive spacing,
//     nil color function); Grid itself never panics.
package meshgen
