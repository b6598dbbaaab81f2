package router

import "regexp"

// Log prefixes
const (
	LogPrefixResolve = "internal.router.Resolve"
)

// Keyword classes. All matching is case-insensitive over the whole
// message; the router lowercases input before testing, so the patterns
// stay lowercase.
var (
	bestClassRe  = regexp.MustCompile(`\b(?:best|top)\b`)
	orderNounRe  = regexp.MustCompile(`\b(?:orders?|deliver(?:y|ies)|parcels?|packages?)\b`)
	rideNounRe   = regexp.MustCompile(`\b(?:rides?|trips?|passengers?)\b`)
	suggestionRe = regexp.MustCompile(`\b(?:suggest|recommend|show|find|give|any|got)\b`)
	questionRe   = regexp.MustCompile(`\b(?:what|which|where|how)\b`)
	checkRe      = regexp.MustCompile(`\bcheck\b`)

	acceptRideRe  = regexp.MustCompile(`\b(?:accept|take|confirm)\b.*\b(?:rides?|trips?)\b\D*(\d+)`)
	acceptOrderRe = regexp.MustCompile(`\b(?:accept|take|confirm)\b.*\b(?:orders?|deliver(?:y|ies))\b\D*(\d+)`)
	rejectRideRe  = regexp.MustCompile(`\b(?:reject|decline|skip|pass(?: on)?|cancel)\b.*\b(?:rides?|trips?)\b`)
	rejectOrderRe = regexp.MustCompile(`\b(?:reject|decline|skip|pass(?: on)?|cancel)\b.*\b(?:orders?|deliver(?:y|ies))\b`)

	rideDetailsRe  = regexp.MustCompile(`\b(?:ride|details for|info on)\b\D*(\d+)`)
	orderDetailsRe = regexp.MustCompile(`\b(?:order|details for|info on)\b\D*(\d+)`)

	// Preference keyword families, tested in declaration order.
	ridePrefFareRe   = regexp.MustCompile(`\b(?:fares?|price|pay|money|earn(?:ings)?)\b`)
	ridePrefTimeRe   = regexp.MustCompile(`\b(?:time|fast(?:est)?|quick(?:est)?|shortest?|soon)\b`)
	ridePrefRatingRe = regexp.MustCompile(`\b(?:ratings?|rated|reviews?|stars?)\b`)

	orderPrefRewardRe  = regexp.MustCompile(`\b(?:rewards?|price|pay|money|earn(?:ings)?|income)\b`)
	orderPrefTimeRe    = regexp.MustCompile(`\b(?:time|fast(?:est)?|quick(?:est)?|shortest?|soon)\b`)
	orderPrefTrafficRe = regexp.MustCompile(`\b(?:traffic|jam|congestion|roads?)\b`)

	// The assistant's preference follow-up question, matched against the
	// immediately preceding assistant turn.
	preferenceQuestionRe = regexp.MustCompile(`most important`)
)
