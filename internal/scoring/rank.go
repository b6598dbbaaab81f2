package scoring

import (
	"sort"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

// RankOrders returns the orders sorted by the chosen preference axis.
// The sort is stable: entries equal on the axis keep catalog iteration
// order. An unknown preference ranks as default.
func (e *Engine) RankOrders(orders []model.Order, pref model.OrderPreference) []model.Order {
	ranked := make([]model.Order, len(orders))
	copy(ranked, orders)

	switch pref {
	case model.OrderPrefReward:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Reward > ranked[j].Reward
		})
	case model.OrderPrefTime:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].TimeEstimateMin < ranked[j].TimeEstimateMin
		})
	case model.OrderPrefTraffic:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Traffic.Rank() < ranked[j].Traffic.Rank()
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return e.Score(ranked[i]) > e.Score(ranked[j])
		})
	}
	return ranked
}

// RankRides returns the rides sorted by the chosen preference axis.
// Default ranks by the (fare, rating) descending tuple.
func (e *Engine) RankRides(rides []model.Ride, pref model.RidePreference) []model.Ride {
	ranked := make([]model.Ride, len(rides))
	copy(ranked, rides)

	switch pref {
	case model.RidePrefFare:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].EstimatedFare > ranked[j].EstimatedFare
		})
	case model.RidePrefTime:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].TimeEstimateMin < ranked[j].TimeEstimateMin
		})
	case model.RidePrefRating:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].PassengerRating > ranked[j].PassengerRating
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].EstimatedFare != ranked[j].EstimatedFare {
				return ranked[i].EstimatedFare > ranked[j].EstimatedFare
			}
			return ranked[i].PassengerRating > ranked[j].PassengerRating
		})
	}
	return ranked
}
