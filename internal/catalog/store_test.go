package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

func newTestStore() *Store {
	return New(Data{
		GeneralInfo: map[string]any{
			"app_name":     "Grab Voice AI Chat",
			"capabilities": []any{"Voice transcription", "Order and ride recommendations"},
		},
		FAQs: map[string]string{
			"how_to_use": "Just speak into your device.",
		},
		Guidelines: map[string]string{
			GuidelineGreeting:      "Hello! How can I assist you today?",
			GuidelineOrderNotFound: "Sorry, I couldn't find order {order_id}.",
			GuidelineAcceptRide:    "Great! Ride {ride_id} is yours.",
		},
		Orders: []model.Order{
			{ID: 11, PickupLocation: "Sunway Pyramid", DeliverTo: "SS15 Subang Jaya", Reward: 13, TimeEstimateMin: 11, Traffic: model.TrafficLight, Priority: model.PriorityHigh},
			{ID: 14, PickupLocation: "IOI City Mall", DeliverTo: "Cyberjaya", Reward: 15, TimeEstimateMin: 25, Traffic: model.TrafficHeavy, Priority: model.PriorityHigh},
		},
		Rides: []model.Ride{
			{ID: 101, PickupLocation: "KL Sentral", Destination: "KLIA Terminal 1", EstimatedFare: 65, TimeEstimateMin: 45, PassengerRating: 4.8, Traffic: model.TrafficModerate},
		},
	})
}

func TestStoreLookups(t *testing.T) {
	s := newTestStore()

	t.Run("order by id", func(t *testing.T) {
		o, err := s.Order(11)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.PickupLocation != "Sunway Pyramid" {
			t.Errorf("wrong order: %+v", o)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := s.Order(999)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Errorf("err = %v, want ErrOrderNotFound", err)
		}
	})

	t.Run("ride by id", func(t *testing.T) {
		r, err := s.Ride(101)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Destination != "KLIA Terminal 1" {
			t.Errorf("wrong ride: %+v", r)
		}
	})

	t.Run("missing ride", func(t *testing.T) {
		_, err := s.Ride(999)
		if !errors.Is(err, ErrRideNotFound) {
			t.Errorf("err = %v, want ErrRideNotFound", err)
		}
	})

	t.Run("orders returns a copy", func(t *testing.T) {
		orders := s.Orders()
		orders[0].ID = 9999
		if _, err := s.Order(11); err != nil {
			t.Error("mutating the returned slice leaked into the store")
		}
	})
}

func TestGuidelines(t *testing.T) {
	s := newTestStore()

	t.Run("raw lookup", func(t *testing.T) {
		if got := s.Guideline(GuidelineGreeting); got != "Hello! How can I assist you today?" {
			t.Errorf("Guideline() = %q", got)
		}
		if got := s.Guideline("nope"); got != "" {
			t.Errorf("missing key = %q, want empty", got)
		}
	})

	t.Run("render substitutes placeholders", func(t *testing.T) {
		got := s.RenderGuideline(GuidelineOrderNotFound, map[string]string{"order_id": "999"})
		if got != "Sorry, I couldn't find order 999." {
			t.Errorf("RenderGuideline() = %q", got)
		}
	})

	t.Run("unresolved placeholder panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for unresolved placeholder")
			}
		}()
		s.RenderGuideline(GuidelineAcceptRide, nil)
	})
}

func TestUpdate(t *testing.T) {
	s := newTestStore()

	t.Run("existing mapping categories accept writes", func(t *testing.T) {
		if err := s.Update(CategoryFAQs, "payment", "Earnings are paid out weekly."); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(s.Context(model.DriverTypeDelivery), "Earnings are paid out weekly.") {
			t.Error("updated FAQ missing from context")
		}
	})

	t.Run("guideline updates are visible immediately", func(t *testing.T) {
		if err := s.Update(CategoryGuidelines, GuidelineGreeting, "Hi there!"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.Guideline(GuidelineGreeting); got != "Hi there!" {
			t.Errorf("Guideline() = %q after update", got)
		}
	})

	t.Run("list categories reject writes", func(t *testing.T) {
		for _, category := range []string{"orders", "rides"} {
			if err := s.Update(category, "11", "x"); !errors.Is(err, ErrCategoryNotMapping) {
				t.Errorf("Update(%q) err = %v, want ErrCategoryNotMapping", category, err)
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		if err := s.Update("promotions", "k", "v"); !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("err = %v, want ErrUnknownCategory", err)
		}
	})
}

func TestContext(t *testing.T) {
	s := newTestStore()

	t.Run("ride space lists rides only", func(t *testing.T) {
		got := s.Context(model.DriverTypeRide)

		if !strings.HasPrefix(got, "Knowledge Base Information:\n\n") {
			t.Errorf("missing header: %q", got)
		}
		if !strings.Contains(got, "app_name: Grab Voice AI Chat\n") {
			t.Errorf("missing general info: %q", got)
		}
		if !strings.Contains(got, "capabilities: Voice transcription, Order and ride recommendations\n") {
			t.Errorf("list values not joined: %q", got)
		}
		if !strings.Contains(got, "Q: how_to_use\nA: Just speak into your device.\n") {
			t.Errorf("missing FAQ: %q", got)
		}
		if !strings.Contains(got, "Available rides:\nRide 101: KL Sentral to KLIA Terminal 1, fare RM65.00, 45 minutes, passenger rating 4.8, moderate traffic\n") {
			t.Errorf("missing ride line: %q", got)
		}
		if strings.Contains(got, "Available orders:") {
			t.Errorf("ride context leaked orders: %q", got)
		}
	})

	t.Run("delivery space lists orders only", func(t *testing.T) {
		got := s.Context(model.DriverTypeDelivery)
		if !strings.Contains(got, "Available orders:\nOrder 11: pick up at Sunway Pyramid, deliver to SS15 Subang Jaya, reward RM13.00, 11 minutes, light traffic, high priority\n") {
			t.Errorf("missing order line: %q", got)
		}
		if strings.Contains(got, "Available rides:") {
			t.Errorf("delivery context leaked rides: %q", got)
		}
	})

	t.Run("unknown space lists neither", func(t *testing.T) {
		got := s.Context(model.DriverTypeUnknown)
		if strings.Contains(got, "Available") {
			t.Errorf("unknown context leaked catalog entries: %q", got)
		}
	})
}
