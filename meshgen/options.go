// SPDX-License-Identifier: MIT
// Package: quadmesh/meshgen
//
// options.go: functional options for Grid.
//
// Contract:
//   • Options are functional (type Option func(*gridConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package meshgen

// Option customizes Grid by mutating a gridConfig before generation.
type Option func(*gridConfig)

// gridConfig aggregates all Grid knobs. Passed by value after resolution.
type gridConfig struct {
	originX, originY float64
	dx, dy           float64
	colorFn          func(r, c int) int
}

// Deterministic defaults.
const (
	defaultSpacing = 1.0
	defaultColor   = 0
)

// newGridConfig resolves defaults and applies opts in order.
func newGridConfig(opts ...Option) gridConfig {
	cfg := gridConfig{
		dx:      defaultSpacing,
		dy:      defaultSpacing,
		colorFn: func(int, int) int { return defaultColor },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOrigin places vertex (0,0) at (x,y).
func WithOrigin(x, y float64) Option {
	return func(c *gridConfig) {
		c.originX, c.originY = x, y
	}
}

// WithSpacing sets the column (dx) and row (dy) spacing.
// Panics unless both are > 0, since other values fold the grid.
func WithSpacing(dx, dy float64) Option {
	if dx <= 0 || dy <= 0 {
		panic("meshgen: WithSpacing(dx<=0 || dy<=0)")
	}
	return func(c *gridConfig) {
		c.dx, c.dy = dx, dy
	}
}

// WithColorFn assigns quad (r,c) the color fn(r,c). Panics on nil.
func WithColorFn(fn func(r, c int) int) Option {
	if fn == nil {
		panic("meshgen: WithColorFn(nil)")
	}
	return func(c *gridConfig) {
		c.colorFn = fn
	}
}

// WithColorRows assigns colors from a row-major table laid out bottom row
// first: rows[r][c] is the color of quad (r,c). Cells missing from the table
// keep the default color. Panics on an empty table.
func WithColorRows(rows [][]int) Option {
	if len(rows) == 0 {
		panic("meshgen: WithColorRows(empty)")
	}
	return WithColorFn(func(r, c int) int {
		if r < len(rows) && c < len(rows[r]) {
			return rows[r][c]
		}
		return defaultColor
	})
}
