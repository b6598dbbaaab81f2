package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage  = errors.New("message text is empty")
	ErrEmptyAudio    = errors.New("audio payload is empty")
	ErrAudioTooLarge = errors.New("audio payload exceeds the size limit")
	ErrTranscription = errors.New("transcription failed")

	// ErrTranscriptionDisabled means the server was started without
	// speech credentials.
	ErrTranscriptionDisabled = errors.New("transcription is not configured")
)
