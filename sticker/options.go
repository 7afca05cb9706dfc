package sticker

// Option configures an Extractor.
type Option func(*config)

type config struct {
	// onVisit is called for every quad placed into a stage.
	onVisit func(q, stage int)
	// baseInStage keeps the stage base quad at the head of its stage.
	baseInStage bool
}

func defaultConfig() config {
	return config{
		onVisit:     func(int, int) {},
		baseInStage: true,
	}
}

// WithOnVisit registers a callback run for every quad as it is placed into a
// stage, in discovery order. Panics on nil.
func WithOnVisit(fn func(q, stage int)) Option {
	if fn == nil {
		panic("sticker: WithOnVisit(nil)")
	}
	return func(c *config) {
		c.onVisit = fn
	}
}

// WithoutBaseInStage drops the base quad of every stage from the result, so
// each stage only holds the quads reached by its walk. The first column of
// the grid is then missing from the patch; stage lengths are still checked.
func WithoutBaseInStage() Option {
	return func(c *config) {
		c.baseInStage = false
	}
}
