package scoring

import (
	"testing"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

func TestScore(t *testing.T) {
	engine := New(DefaultConfig())

	tests := []struct {
		name  string
		order model.Order
		want  float64
	}{
		{
			name: "long heavy traffic order scores low despite max reward",
			order: model.Order{
				ID: 14, Reward: 15, TimeEstimateMin: 25,
				Traffic: model.TrafficHeavy, Priority: model.PriorityHigh,
			},
			want: 8.0,
		},
		{
			name: "short light traffic order scores well",
			order: model.Order{
				ID: 11, Reward: 13, TimeEstimateMin: 11,
				Traffic: model.TrafficLight, Priority: model.PriorityHigh,
			},
			want: 11.47,
		},
		{
			name: "unknown traffic and priority take middle weights",
			order: model.Order{
				ID: 1, Reward: 7.5, TimeEstimateMin: 10,
				Traffic: model.Traffic("gridlock"), Priority: model.Priority("urgent"),
			},
			// 2 + 1 + 5 - 2 = 6
			want: 6.0,
		},
		{
			name: "time penalty caps at five",
			order: model.Order{
				ID: 2, Reward: 15, TimeEstimateMin: 500,
				Traffic: model.TrafficLight, Priority: model.PriorityHigh,
			},
			// 3 + 2 + 10 - 5, not 3 + 2 + 10 - 100
			want: 10.0,
		},
		{
			name: "zero everything",
			order: model.Order{
				ID: 3, Reward: 0, TimeEstimateMin: 0,
				Traffic: model.TrafficHeavy, Priority: model.PriorityLow,
			},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Score(tt.order)
			if got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	engine := New(DefaultConfig())
	order := model.Order{ID: 11, Reward: 13, TimeEstimateMin: 11, Traffic: model.TrafficLight, Priority: model.PriorityHigh}

	first := engine.Score(order)
	for i := 0; i < 100; i++ {
		if got := engine.Score(order); got != first {
			t.Fatalf("Score() not deterministic: got %v then %v", first, got)
		}
	}
}

func TestTier(t *testing.T) {
	engine := New(DefaultConfig())

	tests := []struct {
		score float64
		want  Tier
	}{
		{16.2, TierHighlyRecommended},
		{15.0, TierHighlyRecommended},
		{14.99, TierRecommended},
		{10.0, TierRecommended},
		{9.99, TierNotRecommended},
		{8.0, TierNotRecommended},
		{-3.5, TierNotRecommended},
	}

	for _, tt := range tests {
		if got := engine.Tier(tt.score); got != tt.want {
			t.Errorf("Tier(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestNewBackfillsDefaults(t *testing.T) {
	engine := New(Config{})
	if engine.cfg != DefaultConfig() {
		t.Errorf("New(Config{}) cfg = %+v, want defaults %+v", engine.cfg, DefaultConfig())
	}

	custom := New(Config{MaxReward: 20})
	if custom.cfg.MaxReward != 20 {
		t.Errorf("MaxReward = %v, want 20", custom.cfg.MaxReward)
	}
	if custom.cfg.HighThreshold != DefaultConfig().HighThreshold {
		t.Errorf("HighThreshold = %v, want default", custom.cfg.HighThreshold)
	}
}
