package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/catalog"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/chat"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/router"
)

// ProcessMessage routes the message and executes the matched handler.
// Every path terminates in a response string; collaborator failures are
// recovered locally into guideline text.
func (uc *implUseCase) ProcessMessage(ctx context.Context, input chat.ProcessInput) (chat.ProcessOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ProcessOutput{}, chat.ErrEmptyMessage
	}

	history := input.History
	if input.SessionID != "" {
		history = append(uc.sessions.History(input.SessionID), input.History...)
	}

	var reply string
	if route, ok := uc.router.Resolve(ctx, input.Message, input.DriverType, history); ok {
		reply = uc.dispatch(ctx, route)
	} else {
		reply = uc.fallback(ctx, input.Message, input.DriverType, history)
	}

	if input.SessionID != "" {
		uc.sessions.Append(input.SessionID,
			model.ChatMessage{Sender: model.SenderDriver, Text: input.Message},
			model.ChatMessage{Sender: model.SenderAssistant, Text: reply},
		)
	}

	return chat.ProcessOutput{Reply: reply}, nil
}

// dispatch executes a resolved route against the catalog, scoring and
// formatting components. A missing identifier yields the polite
// not-found guideline, never an error.
func (uc *implUseCase) dispatch(ctx context.Context, route router.Route) string {
	switch route.Intent {
	case router.IntentBestOrder:
		return uc.fmtr.BestOrder(uc.store.Orders())

	case router.IntentBestRide:
		return uc.fmtr.BestRide(uc.store.Rides())

	case router.IntentAcceptOrder:
		if _, err := uc.store.Order(route.ID); err != nil {
			return uc.orderNotFound(route.ID)
		}
		return uc.store.RenderGuideline(catalog.GuidelineAcceptOrder,
			map[string]string{"order_id": strconv.Itoa(route.ID)})

	case router.IntentAcceptRide:
		if _, err := uc.store.Ride(route.ID); err != nil {
			return uc.rideNotFound(route.ID)
		}
		return uc.store.RenderGuideline(catalog.GuidelineAcceptRide,
			map[string]string{"ride_id": strconv.Itoa(route.ID)})

	case router.IntentRejectOrder:
		return uc.store.Guideline(catalog.GuidelineRejectOrder)

	case router.IntentRejectRide:
		return uc.store.Guideline(catalog.GuidelineRejectRide)

	case router.IntentSuggestOrders:
		return uc.fmtr.RankedOrders(uc.store.Orders(), route.OrderPref)

	case router.IntentSuggestRides:
		return uc.fmtr.RankedRides(uc.store.Rides(), route.RidePref)

	case router.IntentOrderDetails:
		o, err := uc.store.Order(route.ID)
		if err != nil {
			return uc.orderNotFound(route.ID)
		}
		return uc.fmtr.Order(o)

	case router.IntentRideDetails:
		r, err := uc.store.Ride(route.ID)
		if err != nil {
			return uc.rideNotFound(route.ID)
		}
		return uc.fmtr.Ride(r)

	default:
		// An intent the dispatcher does not know is a routing bug;
		// degrade to the clarification guideline rather than fail.
		uc.l.Warnf(ctx, "dispatch: unhandled intent %s", route.Intent)
		return uc.store.Guideline(catalog.GuidelineClarification)
	}
}

func (uc *implUseCase) orderNotFound(id int) string {
	return uc.store.RenderGuideline(catalog.GuidelineOrderNotFound,
		map[string]string{"order_id": strconv.Itoa(id)})
}

func (uc *implUseCase) rideNotFound(id int) string {
	return uc.store.RenderGuideline(catalog.GuidelineRideNotFound,
		map[string]string{"ride_id": strconv.Itoa(id)})
}
