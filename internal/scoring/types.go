package scoring

// Tier is the recommendation band a score falls into.
type Tier string

const (
	TierHighlyRecommended Tier = "highly recommended"
	TierRecommended       Tier = "recommended"
	TierNotRecommended    Tier = "not recommended"
)

// Config holds the scoring constants. MaxReward is the assumed maximum
// reward of the current catalog scale; it is a fixed constant, not derived
// from live data, so tiers stay stable as entries come and go.
type Config struct {
	MaxReward          float64
	HighThreshold      float64
	RecommendThreshold float64
}

// DefaultConfig returns the scoring constants the catalog was tuned against.
func DefaultConfig() Config {
	return Config{
		MaxReward:          15,
		HighThreshold:      15,
		RecommendThreshold: 10,
	}
}
