package scoring

// Engine computes order desirability scores and preference rankings.
// All methods are pure functions of their inputs.
type Engine struct {
	cfg Config
}

// New creates a scoring engine. Zero-valued config fields fall back to
// the defaults so a partially configured engine stays well-behaved.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.MaxReward <= 0 {
		cfg.MaxReward = def.MaxReward
	}
	if cfg.HighThreshold <= 0 {
		cfg.HighThreshold = def.HighThreshold
	}
	if cfg.RecommendThreshold <= 0 {
		cfg.RecommendThreshold = def.RecommendThreshold
	}
	return &Engine{cfg: cfg}
}
