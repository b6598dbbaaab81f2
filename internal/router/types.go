package router

import "github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"

// Intent is the deterministic handler a message resolves to.
type Intent string

const (
	IntentBestOrder     Intent = "BEST_ORDER"
	IntentBestRide      Intent = "BEST_RIDE"
	IntentAcceptOrder   Intent = "ACCEPT_ORDER"
	IntentAcceptRide    Intent = "ACCEPT_RIDE"
	IntentRejectOrder   Intent = "REJECT_ORDER"
	IntentRejectRide    Intent = "REJECT_RIDE"
	IntentSuggestOrders Intent = "SUGGEST_ORDERS"
	IntentSuggestRides  Intent = "SUGGEST_RIDES"
	IntentOrderDetails  Intent = "ORDER_DETAILS"
	IntentRideDetails   Intent = "RIDE_DETAILS"
	IntentFallback      Intent = "FALLBACK"
)

// Route is the resolved dispatch decision for one message.
type Route struct {
	Intent Intent

	// ID is the extracted order or ride identifier, when the intent carries one.
	ID int

	// Active ranking preference for suggestion intents.
	OrderPref model.OrderPreference
	RidePref  model.RidePreference

	// Rule is the name of the rule that matched, for logging.
	Rule string
}

// namedRule pairs a rule name with its predicate/extractor. Rules are
// evaluated strictly in slice order; the first satisfied rule wins, so
// the ordering is a behavioral contract, not an optimization.
type namedRule struct {
	name  string
	match func(msg string, history []model.ChatMessage) (Route, bool)
}
