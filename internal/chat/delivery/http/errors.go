package http

import (
	"errors"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/catalog"
	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/chat"
)

// mapError translates domain/use-case errors into caller-facing errors.
// Anything unknown passes through unchanged; the response helpers hide
// the raw text behind the default message for 500s.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errors.New("message must not be empty")
	case errors.Is(err, chat.ErrEmptyAudio):
		return errors.New("audio upload must not be empty")
	case errors.Is(err, chat.ErrAudioTooLarge):
		return errors.New("audio upload is too large")
	case errors.Is(err, chat.ErrTranscription):
		return errors.New("could not transcribe the recording")
	case errors.Is(err, chat.ErrTranscriptionDisabled):
		return errors.New("transcription is not available on this server")
	case errors.Is(err, catalog.ErrUnknownCategory):
		return errors.New("unknown knowledge base category")
	case errors.Is(err, catalog.ErrCategoryNotMapping):
		return errors.New("knowledge base category does not accept key/value entries")
	default:
		return err
	}
}
