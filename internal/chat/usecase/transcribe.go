package usecase

import (
	"context"
	"fmt"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/chat"
)

// Transcribe relays raw audio to the transcription collaborator.
func (uc *implUseCase) Transcribe(ctx context.Context, input chat.TranscribeInput) (chat.TranscribeOutput, error) {
	if len(input.Audio) == 0 {
		return chat.TranscribeOutput{}, chat.ErrEmptyAudio
	}
	if uc.transcriber == nil {
		return chat.TranscribeOutput{}, chat.ErrTranscriptionDisabled
	}

	text, err := uc.transcriber.Transcribe(ctx, input.Audio, input.LanguageHint)
	if err != nil {
		uc.l.Errorf(ctx, "transcribe: %v", err)
		return chat.TranscribeOutput{}, fmt.Errorf("%w: %v", chat.ErrTranscription, err)
	}

	return chat.TranscribeOutput{Transcription: text}, nil
}

// UpdateKnowledge applies an administrative knowledge base mutation.
// It shares the store's writer lock and must never run on the chat path.
func (uc *implUseCase) UpdateKnowledge(ctx context.Context, input chat.UpdateKnowledgeInput) error {
	if err := uc.store.Update(input.Category, input.Key, input.Value); err != nil {
		return err
	}
	uc.l.Infof(ctx, "knowledge base updated: %s/%s", input.Category, input.Key)
	return nil
}
