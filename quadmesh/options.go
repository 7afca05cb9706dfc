package quadmesh

import "github.com/katalvlaran/quadmesh/trimesh"

// Option customizes New.
type Option func(*config)

type config struct {
	oracle      trimesh.Oracle
	checkConvex bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		oracle:      trimesh.EdgeOracle{},
		checkConvex: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOracle replaces the default edge-matching adjacency engine.
// Panics on nil.
func WithOracle(o trimesh.Oracle) Option {
	if o == nil {
		panic("quadmesh: WithOracle(nil)")
	}
	return func(c *config) {
		c.oracle = o
	}
}

// WithoutConvexityCheck accepts non-convex and degenerate quads as given.
// Their neighbour slots may then be wrong; use only for meshes known to be valid
// up to round-off.
func WithoutConvexityCheck() Option {
	return func(c *config) {
		c.checkConvex = false
	}
}
