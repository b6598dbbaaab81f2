package router

import (
	"context"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/log"
)

// Router resolves a driver message to a deterministic intent, or signals
// that the message should be forwarded to the generative fallback.
type Router interface {
	Resolve(ctx context.Context, message string, driverType model.DriverType, history []model.ChatMessage) (Route, bool)
}

// RuleRouter is the keyword-rule implementation of Router. It holds no
// per-request state; the same instance serves concurrent requests.
type RuleRouter struct {
	l log.Logger

	rideRules     []namedRule
	deliveryRules []namedRule
}

var _ Router = (*RuleRouter)(nil)

// New creates a RuleRouter with the fixed per-driver-type rule order.
func New(l log.Logger) *RuleRouter {
	r := &RuleRouter{l: l}

	r.rideRules = []namedRule{
		{name: "best_ride", match: r.matchBestRide},
		{name: "accept_ride", match: r.matchAcceptRide},
		{name: "reject_ride", match: r.matchRejectRide},
		{name: "suggest_rides", match: r.matchSuggestRides},
		{name: "ride_details", match: r.matchRideDetails},
	}
	r.deliveryRules = []namedRule{
		{name: "accept_order", match: r.matchAcceptOrder},
		{name: "reject_order", match: r.matchRejectOrder},
		{name: "suggest_orders", match: r.matchSuggestOrders},
		{name: "order_details", match: r.matchOrderDetails},
	}

	return r
}
