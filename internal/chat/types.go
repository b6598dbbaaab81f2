package chat

import "github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"

// ProcessInput carries one conversational turn into the core.
type ProcessInput struct {
	Message    string
	DriverType model.DriverType
	History    []model.ChatMessage

	// SessionID, when set, prepends server-side session history and
	// records the exchange afterwards.
	SessionID string
}

// ProcessOutput is the single response string every request terminates in.
type ProcessOutput struct {
	Reply string
}

// TranscribeInput carries raw audio for the transcription collaborator.
type TranscribeInput struct {
	Audio        []byte
	LanguageHint string
}

// TranscribeOutput is the transcription result.
type TranscribeOutput struct {
	Transcription string
}

// UpdateKnowledgeInput is the administrative knowledge base mutation.
type UpdateKnowledgeInput struct {
	Category string
	Key      string
	Value    string
}
