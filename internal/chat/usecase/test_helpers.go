package usecase

import (
	"context"
	"time"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/catalog"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/recommend"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/router"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/scoring"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/session"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/gemini"
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

// Mock Gemini client for testing
type mockGeminiClient struct {
	response *gemini.GenerateResponse
	err      error

	lastPrompt string
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
		m.lastPrompt = req.Contents[0].Parts[0].Text
	}
	return m.response, m.err
}

func (m *mockGeminiClient) Model() string {
	return "gemini-test"
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

// Mock transcriber for testing
type mockTranscriber struct {
	text string
	err  error
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audio []byte, languageHint string) (string, error) {
	return m.text, m.err
}

func testCatalogData() catalog.Data {
	return catalog.Data{
		GeneralInfo: map[string]any{"app_name": "Grab Voice AI Chat"},
		FAQs:        map[string]string{"how_to_use": "Just speak into your device."},
		Guidelines: map[string]string{
			catalog.GuidelineGreeting:        "Hello! How can I assist you today?",
			catalog.GuidelineClarification:   "Could you please provide more details about that?",
			catalog.GuidelineError:           "I apologize, but I'm having trouble understanding. Could you rephrase that?",
			catalog.GuidelineOrderNotFound:   "Sorry, I couldn't find order {order_id}. It may have been taken already.",
			catalog.GuidelineRideNotFound:    "Sorry, I couldn't find ride {ride_id}. It may have been taken already.",
			catalog.GuidelineAcceptOrder:     "Great! Order {order_id} is yours. Head to the pickup point and drive safe.",
			catalog.GuidelineAcceptRide:      "Great! Ride {ride_id} is yours. Head to the pickup point and drive safe.",
			catalog.GuidelineRejectOrder:     "No problem, I've skipped that order.",
			catalog.GuidelineRejectRide:      "No problem, I've skipped that ride.",
			catalog.GuidelineOrderPreference: "What's most important to you for your next order - reward, time, or traffic?",
			catalog.GuidelineRidePreference:  "What's most important to you for your next ride - fare, time, or passenger rating?",
		},
		Orders: []model.Order{
			{ID: 11, PickupLocation: "Sunway Pyramid", DeliverTo: "SS15 Subang Jaya", Reward: 13, TimeEstimateMin: 11, Traffic: model.TrafficLight, Priority: model.PriorityHigh},
			{ID: 14, PickupLocation: "IOI City Mall", DeliverTo: "Cyberjaya", Reward: 15, TimeEstimateMin: 25, Traffic: model.TrafficHeavy, Priority: model.PriorityHigh},
		},
		Rides: []model.Ride{
			{ID: 101, PickupLocation: "KL Sentral", Destination: "KLIA Terminal 1", EstimatedFare: 65, TimeEstimateMin: 45, PassengerRating: 4.8, Traffic: model.TrafficModerate},
			{ID: 103, PickupLocation: "Bangsar Village", Destination: "Damansara Heights", EstimatedFare: 12, TimeEstimateMin: 10, PassengerRating: 5.0, Traffic: model.TrafficLight},
		},
	}
}

// newTestUseCase wires a full use case on mocks and the in-memory catalog.
func newTestUseCase(llm gemini.IGemini, transcriber *mockTranscriber) (*implUseCase, *catalog.Store) {
	logger := &mockLogger{}
	store := catalog.New(testCatalogData())
	engine := scoring.New(scoring.DefaultConfig())
	fmtr := recommend.New(engine, recommend.DefaultTopK)
	rt := router.New(logger)
	sessions := session.New(16, time.Minute)

	// A typed nil would make the transcriber interface non-nil.
	if transcriber == nil {
		return New(logger, llm, nil, store, fmtr, rt, sessions, time.Second), store
	}
	return New(logger, llm, transcriber, store, fmtr, rt, sessions, time.Second), store
}
