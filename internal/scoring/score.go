package scoring

import (
	"math"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

const (
	rewardScale    = 10
	timeDivisor    = 5
	maxTimePenalty = 5
)

// Score computes the desirability score of an order:
// traffic weight + priority weight + normalized reward − capped time penalty,
// rounded to 2 decimal digits. Unrecognized enum values take the middle
// weight, so a malformed entry never errors.
func (e *Engine) Score(o model.Order) float64 {
	score := trafficWeight(o.Traffic) +
		priorityWeight(o.Priority) +
		o.Reward/e.cfg.MaxReward*rewardScale -
		timePenalty(o.TimeEstimateMin)

	return math.Round(score*100) / 100
}

// Tier maps a score onto its recommendation band.
func (e *Engine) Tier(score float64) Tier {
	switch {
	case score >= e.cfg.HighThreshold:
		return TierHighlyRecommended
	case score >= e.cfg.RecommendThreshold:
		return TierRecommended
	default:
		return TierNotRecommended
	}
}

func trafficWeight(t model.Traffic) float64 {
	switch t {
	case model.TrafficLight:
		return 3
	case model.TrafficModerate:
		return 2
	case model.TrafficHeavy:
		return 1
	default:
		return 2
	}
}

func priorityWeight(p model.Priority) float64 {
	switch p {
	case model.PriorityHigh:
		return 2
	case model.PriorityMedium:
		return 1
	case model.PriorityLow:
		return 0
	default:
		return 1
	}
}

func timePenalty(minutes int) float64 {
	penalty := float64(minutes) / timeDivisor
	if penalty > maxTimePenalty {
		return maxTimePenalty
	}
	return penalty
}
