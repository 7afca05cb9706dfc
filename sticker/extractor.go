package sticker

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Extractor finds tensor-product patches over a fixed Topology and Coloring.
// It holds no per-run state and may be used from several goroutines.
type Extractor struct {
	topo Topology
	col  Coloring
	cfg  config
}

// New binds an Extractor to topo and col.
// Returns ErrNilTopology or ErrNilColoring when either is missing.
func New(topo Topology, col Coloring, opts ...Option) (*Extractor, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	if col == nil {
		return nil, ErrNilColoring
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Extractor{topo: topo, col: col, cfg: cfg}, nil
}

// AvailableColors returns the distinct quad colors in ascending order.
func (ex *Extractor) AvailableColors() []int {
	set := treeset.NewWithIntComparator()
	for q := 0; q < ex.topo.NumQuads(); q++ {
		set.Add(ex.col.Color(q))
	}
	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}
	return out
}

// FindElements extracts one patch per requested color; with no colors given
// every available color is processed in ascending order. The first failing
// color aborts the call and its *TopologyError is returned with a nil map.
func (ex *Extractor) FindElements(colors ...int) (map[int]Patch, error) {
	if len(colors) == 0 {
		colors = ex.AvailableColors()
	}
	out := make(map[int]Patch, len(colors))
	for _, c := range colors {
		p, err := ex.FindColor(c)
		if err != nil {
			return nil, err
		}
		out[c] = p
	}
	return out, nil
}

// FindColor extracts the patch anchored at the first extremal quad of color.
func (ex *Extractor) FindColor(color int) (Patch, error) {
	seeds := ex.col.ExtremalElements(color)
	if len(seeds) == 0 {
		return nil, &TopologyError{Color: color, Seed: NoNeighbor, Stage: -1, Err: ErrNoSeed}
	}
	seed := seeds[0]
	r := ex.newRun(color)
	if seed < 0 || seed >= r.n || ex.col.Color(seed) != color {
		return nil, &TopologyError{Color: color, Seed: seed, Stage: -1, Err: ErrBadSeed}
	}

	dirs := r.directions(seed)
	if len(dirs) < 2 {
		return nil, &TopologyError{Color: color, Seed: seed, Stage: -1, Err: ErrSeedNotCorner}
	}
	along, across := dirs[0], dirs[1]

	patch := Patch{r.stage(seed, along, 0)}
	base := seed
	for steps := 0; steps < r.n; steps++ {
		next := r.step(base, across)
		if next == NoNeighbor {
			break
		}
		base = next
		patch = append(patch, r.stage(base, along, len(patch)))
	}

	want := len(patch[0])
	for s, stage := range patch {
		if len(stage) != want {
			return nil, &TopologyError{Color: color, Seed: seed, Stage: s, Err: ErrNotTensorProduct}
		}
	}
	return patch, nil
}

// run is the mutable state of one color's extraction.
type run struct {
	ex      *Extractor
	color   int
	n       int
	visited []bool
}

func (ex *Extractor) newRun(color int) *run {
	n := ex.topo.NumQuads()
	return &run{ex: ex, color: color, n: n, visited: make([]bool, n)}
}

// usable reports whether q is a valid, same-colored quad.
func (r *run) usable(q int) bool {
	return q >= 0 && q < r.n && r.ex.col.Color(q) == r.color
}

// directions lists the slots of q leading to a usable neighbour, ascending.
func (r *run) directions(q int) []int {
	var dirs []int
	for k, nb := range r.ex.topo.Neighbors(q) {
		if r.usable(nb) {
			dirs = append(dirs, k)
		}
	}
	return dirs
}

// step moves from q through slot dir and marks the target visited.
// Returns -1 when the target is missing, differently colored or already visited.
func (r *run) step(q, dir int) int {
	next := r.ex.topo.Neighbors(q)[dir]
	if !r.usable(next) || r.visited[next] {
		return NoNeighbor
	}
	r.visited[next] = true
	return next
}

// stage marks base and walks along dir; the walk stops at the first step
// that fails and never takes more than n steps.
func (r *run) stage(base, dir, index int) []int {
	r.visited[base] = true
	var out []int
	if r.ex.cfg.baseInStage {
		out = append(out, base)
		r.ex.cfg.onVisit(base, index)
	}
	cur := base
	for steps := 0; steps < r.n; steps++ {
		next := r.step(cur, dir)
		if next == NoNeighbor {
			break
		}
		out = append(out, next)
		r.ex.cfg.onVisit(next, index)
		cur = next
	}
	return out
}
