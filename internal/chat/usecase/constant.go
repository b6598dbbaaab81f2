package usecase

import "time"

// DefaultFallbackTimeout bounds the single generative completion attempt.
const DefaultFallbackTimeout = 15 * time.Second

// Role preambles for the generative fallback prompt, keyed by driver type.
const (
	PromptPreambleRide = `You are a voice assistant for Grab ride-hailing drivers. The driver is on the road, so keep answers short, concrete and easy to hear.`

	PromptPreambleDelivery = `You are a voice assistant for Grab delivery drivers. The driver is on the road, so keep answers short, concrete and easy to hear.`

	PromptPreambleGeneric = `You are a voice assistant for Grab drivers. Keep answers short, concrete and easy to hear.`
)

// PromptInstructionSuffix closes every fallback prompt.
const PromptInstructionSuffix = `Answer the driver's current message in one or two spoken sentences. Only mention orders or rides that appear in the knowledge base above; never invent new ones.`
