package scoring

import (
	"testing"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

func orderIDs(orders []model.Order) []int {
	ids := make([]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}

func rideIDs(rides []model.Ride) []int {
	ids := make([]int, len(rides))
	for i, r := range rides {
		ids[i] = r.ID
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRankOrders(t *testing.T) {
	engine := New(DefaultConfig())

	orders := []model.Order{
		{ID: 1, Reward: 8, TimeEstimateMin: 20, Traffic: model.TrafficModerate, Priority: model.PriorityMedium},
		{ID: 2, Reward: 13, TimeEstimateMin: 11, Traffic: model.TrafficLight, Priority: model.PriorityHigh},
		{ID: 3, Reward: 15, TimeEstimateMin: 25, Traffic: model.TrafficHeavy, Priority: model.PriorityHigh},
		{ID: 4, Reward: 8, TimeEstimateMin: 15, Traffic: model.TrafficLight, Priority: model.PriorityLow},
	}

	tests := []struct {
		name string
		pref model.OrderPreference
		want []int
	}{
		{"reward descending", model.OrderPrefReward, []int{3, 2, 1, 4}},
		{"time ascending", model.OrderPrefTime, []int{2, 4, 1, 3}},
		{"traffic lightest first", model.OrderPrefTraffic, []int{2, 4, 1, 3}},
		// scores: 1 -> 4.33, 2 -> 11.47, 3 -> 8.0, 4 -> 5.33
		{"default composite score", model.OrderPrefDefault, []int{2, 3, 4, 1}},
		{"unknown preference ranks as default", model.OrderPreference("vibes"), []int{2, 3, 4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.RankOrders(orders, tt.pref)
			if !equalIDs(orderIDs(got), tt.want) {
				t.Errorf("RankOrders() ids = %v, want %v", orderIDs(got), tt.want)
			}
		})
	}

	t.Run("input slice is not mutated", func(t *testing.T) {
		engine.RankOrders(orders, model.OrderPrefReward)
		if !equalIDs(orderIDs(orders), []int{1, 2, 3, 4}) {
			t.Errorf("input mutated: %v", orderIDs(orders))
		}
	})

	t.Run("equal axis values keep catalog order", func(t *testing.T) {
		ties := []model.Order{
			{ID: 10, Reward: 9},
			{ID: 20, Reward: 9},
			{ID: 30, Reward: 9},
		}
		got := engine.RankOrders(ties, model.OrderPrefReward)
		if !equalIDs(orderIDs(got), []int{10, 20, 30}) {
			t.Errorf("tied orders reordered: %v", orderIDs(got))
		}
	})
}

func TestRankRides(t *testing.T) {
	engine := New(DefaultConfig())

	rides := []model.Ride{
		{ID: 101, EstimatedFare: 65, TimeEstimateMin: 45, PassengerRating: 4.8},
		{ID: 102, EstimatedFare: 18.5, TimeEstimateMin: 22, PassengerRating: 4.2},
		{ID: 103, EstimatedFare: 12, TimeEstimateMin: 10, PassengerRating: 5.0},
		{ID: 104, EstimatedFare: 18.5, TimeEstimateMin: 30, PassengerRating: 4.9},
	}

	tests := []struct {
		name string
		pref model.RidePreference
		want []int
	}{
		{"fare descending", model.RidePrefFare, []int{101, 102, 104, 103}},
		{"time ascending", model.RidePrefTime, []int{103, 102, 104, 101}},
		{"rating descending", model.RidePrefRating, []int{103, 104, 101, 102}},
		// equal fares fall back to rating: 104 (4.9) ahead of 102 (4.2)
		{"default fare then rating", model.RidePrefDefault, []int{101, 104, 102, 103}},
		{"unknown preference ranks as default", model.RidePreference("vibes"), []int{101, 104, 102, 103}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.RankRides(rides, tt.pref)
			if !equalIDs(rideIDs(got), tt.want) {
				t.Errorf("RankRides() ids = %v, want %v", rideIDs(got), tt.want)
			}
		})
	}
}
