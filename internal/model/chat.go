package model

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderDriver    Sender = "driver"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is a single conversation turn. History is ordered
// most-recent-last; only the final turn is inspected for follow-ups.
type ChatMessage struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}
