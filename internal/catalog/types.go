package catalog

import "github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"

// Knowledge base category names accepted by Update.
const (
	CategoryGeneralInfo = "general_info"
	CategoryFAQs        = "faqs"
	CategoryGuidelines  = "conversation_guidelines"
)

// Guideline keys the service depends on at runtime.
const (
	GuidelineGreeting        = "greeting"
	GuidelineClarification   = "clarification"
	GuidelineError           = "error"
	GuidelineOrderNotFound   = "order_not_found"
	GuidelineRideNotFound    = "ride_not_found"
	GuidelineAcceptOrder     = "accept_order"
	GuidelineAcceptRide      = "accept_ride"
	GuidelineRejectOrder     = "reject_order"
	GuidelineRejectRide      = "reject_ride"
	GuidelineOrderPreference = "order_preference_question"
	GuidelineRidePreference  = "ride_preference_question"
)

// Data is the full knowledge base content loaded at startup.
type Data struct {
	GeneralInfo map[string]any    `mapstructure:"general_info"`
	FAQs        map[string]string `mapstructure:"faqs"`
	Guidelines  map[string]string `mapstructure:"conversation_guidelines"`
	Orders      []model.Order     `mapstructure:"orders"`
	Rides       []model.Ride      `mapstructure:"rides"`
}
