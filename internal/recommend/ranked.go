package recommend

import (
	"fmt"
	"strings"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

// Fixed responses for an empty catalog space.
const (
	NoOrdersMessage = "There are no orders available right now. Please check back in a few minutes."
	NoRidesMessage  = "There are no ride requests available right now. Please check back in a few minutes."
)

// RankedOrders renders the top-K orders under the given preference.
// The first entry carries the axis superlative; the second entry, and only
// the second, gets a one-line comparison against the first when it is
// strictly worse on the same axis.
func (f *Formatter) RankedOrders(orders []model.Order, pref model.OrderPreference) string {
	if len(orders) == 0 {
		return NoOrdersMessage
	}

	ranked := f.engine.RankOrders(orders, pref)
	if len(ranked) > f.topK {
		ranked = ranked[:f.topK]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the top orders by %s:\n", orderAxisName(pref))

	for i, o := range ranked {
		fmt.Fprintf(&b, "%d. Order %d — %s to %s, RM%.2f, %d minutes, %s traffic, %s priority",
			i+1, o.ID, o.PickupLocation, o.DeliverTo, o.Reward, o.TimeEstimateMin, o.Traffic, o.Priority)
		if i == 0 {
			fmt.Fprintf(&b, " (%s)", orderSuperlative(pref))
		}
		b.WriteString("\n")
		if i == 1 {
			if line := f.orderComparison(ranked[0], o, pref); line != "" {
				b.WriteString("   " + line + "\n")
			}
		}
	}

	b.WriteString("Say 'details for order <id>' to hear more, or 'accept order <id>' to take it.")
	return b.String()
}

// RankedRides renders the top-K rides under the given preference.
func (f *Formatter) RankedRides(rides []model.Ride, pref model.RidePreference) string {
	if len(rides) == 0 {
		return NoRidesMessage
	}

	ranked := f.engine.RankRides(rides, pref)
	if len(ranked) > f.topK {
		ranked = ranked[:f.topK]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the top rides by %s:\n", rideAxisName(pref))

	for i, r := range ranked {
		fmt.Fprintf(&b, "%d. Ride %d — %s to %s, RM%.2f, %d minutes, passenger rating %.1f",
			i+1, r.ID, r.PickupLocation, r.Destination, r.EstimatedFare, r.TimeEstimateMin, r.PassengerRating)
		if i == 0 {
			fmt.Fprintf(&b, " (%s)", rideSuperlative(pref))
		}
		b.WriteString("\n")
		if i == 1 {
			if line := f.rideComparison(ranked[0], r, pref); line != "" {
				b.WriteString("   " + line + "\n")
			}
		}
	}

	b.WriteString("Say 'details for ride <id>' to hear more, or 'accept ride <id>' to take it.")
	return b.String()
}

func orderAxisName(pref model.OrderPreference) string {
	switch pref {
	case model.OrderPrefReward:
		return "highest reward"
	case model.OrderPrefTime:
		return "shortest delivery time"
	case model.OrderPrefTraffic:
		return "lightest traffic"
	default:
		return "overall score"
	}
}

func orderSuperlative(pref model.OrderPreference) string {
	switch pref {
	case model.OrderPrefReward:
		return "highest reward"
	case model.OrderPrefTime:
		return "shortest time"
	case model.OrderPrefTraffic:
		return "lightest traffic"
	default:
		return "best overall score"
	}
}

func rideAxisName(pref model.RidePreference) string {
	switch pref {
	case model.RidePrefFare:
		return "highest fare"
	case model.RidePrefTime:
		return "shortest trip time"
	case model.RidePrefRating:
		return "passenger rating"
	default:
		return "overall value"
	}
}

func rideSuperlative(pref model.RidePreference) string {
	switch pref {
	case model.RidePrefFare:
		return "highest fare"
	case model.RidePrefTime:
		return "shortest time"
	case model.RidePrefRating:
		return "best-rated passenger"
	default:
		return "best overall value"
	}
}

// orderComparison describes how the runner-up falls short of the top
// order on the active axis. Empty when the runner-up is not strictly worse.
func (f *Formatter) orderComparison(top, second model.Order, pref model.OrderPreference) string {
	switch pref {
	case model.OrderPrefReward:
		if second.Reward < top.Reward {
			return fmt.Sprintf("RM%.2f less than the top order.", top.Reward-second.Reward)
		}
	case model.OrderPrefTime:
		if second.TimeEstimateMin > top.TimeEstimateMin {
			return fmt.Sprintf("%d minutes longer than the top order.", second.TimeEstimateMin-top.TimeEstimateMin)
		}
	case model.OrderPrefTraffic:
		if second.Traffic.Rank() > top.Traffic.Rank() {
			return "Heavier traffic than the top order."
		}
	default:
		topScore, secondScore := f.engine.Score(top), f.engine.Score(second)
		if secondScore < topScore {
			return fmt.Sprintf("Scores %.2f below the top order.", topScore-secondScore)
		}
	}
	return ""
}

func (f *Formatter) rideComparison(top, second model.Ride, pref model.RidePreference) string {
	switch pref {
	case model.RidePrefTime:
		if second.TimeEstimateMin > top.TimeEstimateMin {
			return fmt.Sprintf("%d minutes longer than the top ride.", second.TimeEstimateMin-top.TimeEstimateMin)
		}
	case model.RidePrefRating:
		if second.PassengerRating < top.PassengerRating {
			return fmt.Sprintf("Rated %.1f below the top ride.", top.PassengerRating-second.PassengerRating)
		}
	default:
		// fare and the default (fare, rating) tuple both compare on fare
		if second.EstimatedFare < top.EstimatedFare {
			return fmt.Sprintf("RM%.2f less than the top ride.", top.EstimatedFare-second.EstimatedFare)
		}
	}
	return ""
}
