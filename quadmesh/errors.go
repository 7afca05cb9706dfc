package quadmesh

import "errors"

var (
	// ErrNoQuads indicates New was called without quad connectivity.
	// Building quads automatically from scattered vertices is not supported.
	ErrNoQuads = errors.New("quadmesh: quads must be supplied")
	// ErrCoordinateMismatch indicates x and y have different lengths.
	ErrCoordinateMismatch = errors.New("quadmesh: x and y lengths differ")
	// ErrVertexIndex indicates a quad references a vertex outside [0, nVertices).
	ErrVertexIndex = errors.New("quadmesh: vertex index out of range")
	// ErrDegenerateQuad indicates a quad that is not strictly convex, so its
	// diagonal split would not yield two valid triangles.
	ErrDegenerateQuad = errors.New("quadmesh: quad is degenerate or not convex")
	// ErrAdjacency indicates the triangulation oracle failed or returned a
	// table of the wrong shape.
	ErrAdjacency = errors.New("quadmesh: triangle adjacency failed")
)
