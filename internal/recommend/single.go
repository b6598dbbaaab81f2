package recommend

import (
	"fmt"
	"strings"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

// Order renders the full detail block for a single order, closing with
// the recommendation tier sentence derived from its score.
func (f *Formatter) Order(o model.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order %d: pick up at %s, deliver to %s.\n", o.ID, o.PickupLocation, o.DeliverTo)
	fmt.Fprintf(&b, "Reward: RM%.2f. Estimated time: %d minutes. Traffic: %s. Priority: %s.\n",
		o.Reward, o.TimeEstimateMin, o.Traffic, o.Priority)

	score := f.engine.Score(o)
	fmt.Fprintf(&b, "This order is %s (score %.2f).", f.engine.Tier(score), score)

	return b.String()
}

// Ride renders the full detail block for a single ride.
func (f *Formatter) Ride(r model.Ride) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Ride %d: %s to %s.\n", r.ID, r.PickupLocation, r.Destination)
	fmt.Fprintf(&b, "Estimated fare: RM%.2f. Estimated time: %d minutes. Passenger rating: %.1f. Traffic: %s.",
		r.EstimatedFare, r.TimeEstimateMin, r.PassengerRating, r.Traffic)

	return b.String()
}

// BestOrder picks the top order under the composite score and renders it.
func (f *Formatter) BestOrder(orders []model.Order) string {
	if len(orders) == 0 {
		return NoOrdersMessage
	}
	ranked := f.engine.RankOrders(orders, model.OrderPrefDefault)
	return "Here's the best order right now.\n" + f.Order(ranked[0])
}

// BestRide picks the top ride under the default preference and renders it.
func (f *Formatter) BestRide(rides []model.Ride) string {
	if len(rides) == 0 {
		return NoRidesMessage
	}
	ranked := f.engine.RankRides(rides, model.RidePrefDefault)
	return "Here's the best ride right now.\n" + f.Ride(ranked[0])
}
