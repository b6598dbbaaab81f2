package router

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

// Resolve evaluates the routing rules for one message. The returned bool
// is false when no deterministic rule applies and the caller should take
// the generative fallback path. Rules are tested in strict priority
// order; the pre-check for "best order" runs before any driver-type
// branch, so it applies to every driver type.
func (r *RuleRouter) Resolve(ctx context.Context, message string, driverType model.DriverType, history []model.ChatMessage) (Route, bool) {
	msg := strings.ToLower(message)

	if bestClassRe.MatchString(msg) && orderNounRe.MatchString(msg) {
		route := Route{Intent: IntentBestOrder, Rule: "best_order_precheck"}
		r.l.Infof(ctx, "%s: matched %s", LogPrefixResolve, route.Rule)
		return route, true
	}

	var rules []namedRule
	switch driverType {
	case model.DriverTypeRide:
		rules = r.rideRules
	case model.DriverTypeDelivery:
		rules = r.deliveryRules
	default:
		r.l.Debugf(ctx, "%s: driver type %q has no rules, falling back", LogPrefixResolve, driverType)
		return Route{Intent: IntentFallback}, false
	}

	for _, rule := range rules {
		if route, ok := rule.match(msg, history); ok {
			route.Rule = rule.name
			r.l.Infof(ctx, "%s: matched %s", LogPrefixResolve, rule.name)
			return route, true
		}
	}

	r.l.Debugf(ctx, "%s: no rule matched, falling back", LogPrefixResolve)
	return Route{Intent: IntentFallback}, false
}

// --- ride rules, in priority order ---

func (r *RuleRouter) matchBestRide(msg string, _ []model.ChatMessage) (Route, bool) {
	if bestClassRe.MatchString(msg) && rideNounRe.MatchString(msg) {
		return Route{Intent: IntentBestRide}, true
	}
	return Route{}, false
}

func (r *RuleRouter) matchAcceptRide(msg string, _ []model.ChatMessage) (Route, bool) {
	if id, ok := extractID(acceptRideRe, msg); ok {
		return Route{Intent: IntentAcceptRide, ID: id}, true
	}
	return Route{}, false
}

func (r *RuleRouter) matchRejectRide(msg string, _ []model.ChatMessage) (Route, bool) {
	if rejectRideRe.MatchString(msg) {
		return Route{Intent: IntentRejectRide}, true
	}
	return Route{}, false
}

func (r *RuleRouter) matchSuggestRides(msg string, history []model.ChatMessage) (Route, bool) {
	suggestion := rideNounRe.MatchString(msg) &&
		(suggestionRe.MatchString(msg) || questionRe.MatchString(msg) || checkRe.MatchString(msg))

	// Contextual follow-up: the previous turn was the assistant asking
	// what matters most for rides and the driver answered with a bare
	// preference keyword.
	followUp := assistantAskedPreference(history, rideNounRe) && hasRidePreference(msg)

	if !suggestion && !followUp {
		return Route{}, false
	}
	return Route{Intent: IntentSuggestRides, RidePref: extractRidePreference(msg)}, true
}

func (r *RuleRouter) matchRideDetails(msg string, _ []model.ChatMessage) (Route, bool) {
	if acceptRideRe.MatchString(msg) {
		return Route{}, false
	}
	if id, ok := extractID(rideDetailsRe, msg); ok {
		return Route{Intent: IntentRideDetails, ID: id}, true
	}
	return Route{}, false
}

// --- delivery rules, in priority order ---
// The best-order case is handled by the global pre-check in Resolve.

func (r *RuleRouter) matchAcceptOrder(msg string, _ []model.ChatMessage) (Route, bool) {
	if id, ok := extractID(acceptOrderRe, msg); ok {
		return Route{Intent: IntentAcceptOrder, ID: id}, true
	}
	return Route{}, false
}

func (r *RuleRouter) matchRejectOrder(msg string, _ []model.ChatMessage) (Route, bool) {
	if rejectOrderRe.MatchString(msg) {
		return Route{Intent: IntentRejectOrder}, true
	}
	return Route{}, false
}

func (r *RuleRouter) matchSuggestOrders(msg string, history []model.ChatMessage) (Route, bool) {
	suggestion := orderNounRe.MatchString(msg) &&
		(suggestionRe.MatchString(msg) || questionRe.MatchString(msg) || checkRe.MatchString(msg))

	followUp := assistantAskedPreference(history, orderNounRe) && hasOrderPreference(msg)

	if !suggestion && !followUp {
		return Route{}, false
	}
	return Route{Intent: IntentSuggestOrders, OrderPref: extractOrderPreference(msg)}, true
}

func (r *RuleRouter) matchOrderDetails(msg string, _ []model.ChatMessage) (Route, bool) {
	if acceptOrderRe.MatchString(msg) {
		return Route{}, false
	}
	if id, ok := extractID(orderDetailsRe, msg); ok {
		return Route{Intent: IntentOrderDetails, ID: id}, true
	}
	return Route{}, false
}

// --- helpers ---

// extractID pulls the first captured integer out of msg. A message with
// no numeric id simply fails the match and falls through to later rules.
func extractID(re *regexp.Regexp, msg string) (int, bool) {
	m := re.FindStringSubmatch(msg)
	if len(m) < 2 {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// assistantAskedPreference reports whether the immediately preceding turn
// was the assistant asking the "what's most important" question for the
// given catalog space. Only the final turn is inspected.
func assistantAskedPreference(history []model.ChatMessage, nounRe *regexp.Regexp) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	if last.Sender != model.SenderAssistant {
		return false
	}
	text := strings.ToLower(last.Text)
	return preferenceQuestionRe.MatchString(text) && nounRe.MatchString(text)
}

func extractRidePreference(msg string) model.RidePreference {
	switch {
	case ridePrefFareRe.MatchString(msg):
		return model.RidePrefFare
	case ridePrefTimeRe.MatchString(msg):
		return model.RidePrefTime
	case ridePrefRatingRe.MatchString(msg):
		return model.RidePrefRating
	default:
		return model.RidePrefDefault
	}
}

func hasRidePreference(msg string) bool {
	return extractRidePreference(msg) != model.RidePrefDefault
}

func extractOrderPreference(msg string) model.OrderPreference {
	switch {
	case orderPrefRewardRe.MatchString(msg):
		return model.OrderPrefReward
	case orderPrefTimeRe.MatchString(msg):
		return model.OrderPrefTime
	case orderPrefTrafficRe.MatchString(msg):
		return model.OrderPrefTraffic
	default:
		return model.OrderPrefDefault
	}
}

func hasOrderPreference(msg string) bool {
	return extractOrderPreference(msg) != model.OrderPrefDefault
}
