package sticker

// Regions returns every 4-connected region of quads with the given color.
// Regions are ordered by their smallest quad index; members are in BFS order
// from that quad.
//
// FindColor only extracts the region holding the chosen seed, so more than
// one region here means part of the color is left out of its patch.
//
// Time:   O(Q), Memory: O(Q) for the seen flags and output.
func (ex *Extractor) Regions(color int) [][]int {
	n := ex.topo.NumQuads()
	seen := make([]bool, n)
	var regions [][]int

	for q0 := 0; q0 < n; q0++ {
		if seen[q0] || ex.col.Color(q0) != color {
			continue
		}
		queue := []int{q0}
		seen[q0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range ex.topo.Neighbors(queue[qi]) {
				if v < 0 || v >= n || seen[v] || ex.col.Color(v) != color {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}
