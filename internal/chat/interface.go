package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// ProcessMessage routes a driver message to a deterministic handler or
	// the generative fallback and returns the reply text.
	ProcessMessage(ctx context.Context, input ProcessInput) (ProcessOutput, error)

	// Transcribe converts uploaded audio into text via the transcription collaborator.
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)

	// UpdateKnowledge applies an administrative knowledge base mutation.
	UpdateKnowledge(ctx context.Context, input UpdateKnowledgeInput) error
}
