package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/catalog"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/gemini"
)

// fallback relays the message to the generative collaborator. A single
// attempt is made, bounded by the configured timeout; any transport
// failure or malformed payload degrades to the error guideline text.
func (uc *implUseCase) fallback(ctx context.Context, message string, driverType model.DriverType, history []model.ChatMessage) string {
	prompt := uc.buildPrompt(message, driverType, history)

	ctx, cancel := context.WithTimeout(ctx, uc.fallbackTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "fallback: LLM call failed: %v", err)
		return uc.store.Guideline(catalog.GuidelineError)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		uc.l.Warnf(ctx, "fallback: empty LLM response")
		return uc.store.Guideline(catalog.GuidelineError)
	}

	reply := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if reply == "" {
		return uc.store.Guideline(catalog.GuidelineError)
	}
	return reply
}

// buildPrompt assembles the contextual prompt: role preamble, knowledge
// base excerpt scoped to the driver type, the transcript oldest-first,
// the current message, and the fixed instruction suffix.
func (uc *implUseCase) buildPrompt(message string, driverType model.DriverType, history []model.ChatMessage) string {
	var b strings.Builder

	switch driverType {
	case model.DriverTypeRide:
		b.WriteString(PromptPreambleRide)
	case model.DriverTypeDelivery:
		b.WriteString(PromptPreambleDelivery)
	default:
		b.WriteString(PromptPreambleGeneric)
	}
	b.WriteString("\n\n")

	b.WriteString(uc.store.Context(driverType))
	b.WriteString("\n")

	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", senderLabel(turn.Sender), turn.Text)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Driver's current message: %s\n\n", message)
	b.WriteString(PromptInstructionSuffix)

	return b.String()
}

func senderLabel(s model.Sender) string {
	if s == model.SenderAssistant {
		return "Assistant"
	}
	return "Driver"
}
