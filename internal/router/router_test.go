package router

import (
	"context"
	"testing"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestResolveBestOrderPrecheck(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	// "best" + order noun resolves to BEST_ORDER no matter the driver type.
	for _, dt := range []model.DriverType{model.DriverTypeDelivery, model.DriverTypeRide, model.DriverType("scooter")} {
		route, ok := r.Resolve(ctx, "What's the best order right now?", dt, nil)
		if !ok || route.Intent != IntentBestOrder {
			t.Errorf("driver type %q: got (%v, %v), want BEST_ORDER", dt, route.Intent, ok)
		}
	}

	// Noun synonyms count too.
	route, ok := r.Resolve(ctx, "give me the top delivery", model.DriverTypeRide, nil)
	if !ok || route.Intent != IntentBestOrder {
		t.Errorf("top delivery: got (%v, %v), want BEST_ORDER", route.Intent, ok)
	}
}

func TestResolveRideRules(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		want    Intent
		wantID  int
		wantOK  bool
	}{
		{"best ride", "Which is the best ride for me?", IntentBestRide, 0, true},
		{"accept with id", "accept ride id: 101", IntentAcceptRide, 101, true},
		{"take synonym", "I'll take trip 103", IntentAcceptRide, 103, true},
		{"accept without id falls through to fallback", "accept the ride", IntentFallback, 0, false},
		{"reject", "skip this ride please", IntentRejectRide, 0, true},
		{"suggest", "can you suggest some rides", IntentSuggestRides, 0, true},
		{"question counts as suggestion", "what rides are available?", IntentSuggestRides, 0, true},
		{"details", "details for ride 102", IntentRideDetails, 102, true},
		{"bare noun plus number reads as details", "ride 102", IntentRideDetails, 102, true},
		{"no rule", "I'm hungry", IntentFallback, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, ok := r.Resolve(ctx, tt.message, model.DriverTypeRide, nil)
			if ok != tt.wantOK || route.Intent != tt.want || route.ID != tt.wantID {
				t.Errorf("Resolve(%q) = (%v, id=%d, %v), want (%v, id=%d, %v)",
					tt.message, route.Intent, route.ID, ok, tt.want, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestResolveDeliveryRules(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		want    Intent
		wantID  int
		wantOK  bool
	}{
		{"accept with id", "Accept order 11", IntentAcceptOrder, 11, true},
		{"confirm synonym", "confirm delivery 14 for me", IntentAcceptOrder, 14, true},
		{"reject", "I want to decline this order", IntentRejectOrder, 0, true},
		{"suggest", "show me some orders", IntentSuggestOrders, 0, true},
		{"check counts as suggestion", "check orders for me", IntentSuggestOrders, 0, true},
		{"details", "info on order 12", IntentOrderDetails, 12, true},
		{"no rule", "when do I get paid out", IntentFallback, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, ok := r.Resolve(ctx, tt.message, model.DriverTypeDelivery, nil)
			if ok != tt.wantOK || route.Intent != tt.want || route.ID != tt.wantID {
				t.Errorf("Resolve(%q) = (%v, id=%d, %v), want (%v, id=%d, %v)",
					tt.message, route.Intent, route.ID, ok, tt.want, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestResolveRulePriority(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	t.Run("accept beats details for the same message", func(t *testing.T) {
		// "accept ride 101" also matches the details pattern on the
		// bare "ride <id>", but accept is tested first.
		route, ok := r.Resolve(ctx, "accept ride 101", model.DriverTypeRide, nil)
		if !ok || route.Intent != IntentAcceptRide {
			t.Errorf("got (%v, %v), want ACCEPT_RIDE", route.Intent, ok)
		}
	})

	t.Run("best ride beats suggestion keywords", func(t *testing.T) {
		route, ok := r.Resolve(ctx, "show me the best ride", model.DriverTypeRide, nil)
		if !ok || route.Intent != IntentBestRide {
			t.Errorf("got (%v, %v), want BEST_RIDE", route.Intent, ok)
		}
	})

	t.Run("best order precheck beats ride rules", func(t *testing.T) {
		route, ok := r.Resolve(ctx, "best order or best ride?", model.DriverTypeRide, nil)
		if !ok || route.Intent != IntentBestOrder {
			t.Errorf("got (%v, %v), want BEST_ORDER", route.Intent, ok)
		}
	})
}

func TestResolvePreferenceExtraction(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	t.Run("ride fare preference", func(t *testing.T) {
		route, _ := r.Resolve(ctx, "suggest rides with good pay", model.DriverTypeRide, nil)
		if route.RidePref != model.RidePrefFare {
			t.Errorf("RidePref = %q, want fare", route.RidePref)
		}
	})

	t.Run("order traffic preference", func(t *testing.T) {
		route, _ := r.Resolve(ctx, "any orders without traffic jams?", model.DriverTypeDelivery, nil)
		if route.Intent != IntentSuggestOrders || route.OrderPref != model.OrderPrefTraffic {
			t.Errorf("got (%v, pref=%q), want SUGGEST_ORDERS/traffic", route.Intent, route.OrderPref)
		}
	})

	t.Run("no preference keyword keeps default", func(t *testing.T) {
		route, _ := r.Resolve(ctx, "suggest some rides", model.DriverTypeRide, nil)
		if route.RidePref != model.RidePrefDefault {
			t.Errorf("RidePref = %q, want default", route.RidePref)
		}
	})
}

func TestResolvePreferenceFollowUp(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	askedRides := []model.ChatMessage{
		{Sender: model.SenderDriver, Text: "suggest some rides"},
		{Sender: model.SenderAssistant, Text: "What's most important to you for your next ride - fare, time, or passenger rating?"},
	}

	t.Run("bare preference answer routes to suggestion", func(t *testing.T) {
		route, ok := r.Resolve(ctx, "the fare", model.DriverTypeRide, askedRides)
		if !ok || route.Intent != IntentSuggestRides || route.RidePref != model.RidePrefFare {
			t.Errorf("got (%v, pref=%q, %v), want SUGGEST_RIDES/fare", route.Intent, route.RidePref, ok)
		}
	})

	t.Run("answer without preference keyword falls back", func(t *testing.T) {
		route, ok := r.Resolve(ctx, "hmm not sure", model.DriverTypeRide, askedRides)
		if ok || route.Intent != IntentFallback {
			t.Errorf("got (%v, %v), want fallback", route.Intent, ok)
		}
	})

	t.Run("question from the wrong space does not trigger", func(t *testing.T) {
		askedOrders := []model.ChatMessage{
			{Sender: model.SenderAssistant, Text: "What's most important to you for your next order - reward, time, or traffic?"},
		}
		_, ok := r.Resolve(ctx, "the fare", model.DriverTypeRide, askedOrders)
		if ok {
			t.Error("ride follow-up triggered off an order question")
		}
	})

	t.Run("driver turn last does not trigger", func(t *testing.T) {
		history := append(append([]model.ChatMessage{}, askedRides...),
			model.ChatMessage{Sender: model.SenderDriver, Text: "ok"})
		_, ok := r.Resolve(ctx, "the fare", model.DriverTypeRide, history)
		if ok {
			t.Error("follow-up triggered when the last turn was not the assistant's")
		}
	})
}

func TestResolveUnknownDriverType(t *testing.T) {
	r := New(&mockLogger{})
	ctx := context.Background()

	route, ok := r.Resolve(ctx, "accept ride 101", model.DriverTypeUnknown, nil)
	if ok || route.Intent != IntentFallback {
		t.Errorf("got (%v, %v), want fallback for unknown driver type", route.Intent, ok)
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		msg    string
		wantID int
		wantOK bool
	}{
		{"accept ride 101", 101, true},
		{"accept ride id: 7", 7, true},
		{"accept ride zero 0", 0, false},
		{"accept ride", 0, false},
	}

	for _, tt := range tests {
		id, ok := extractID(acceptRideRe, tt.msg)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("extractID(%q) = (%d, %v), want (%d, %v)", tt.msg, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
